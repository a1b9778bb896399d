package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vskvj3/linkedlist/internal/datastructures"
	"github.com/vskvj3/linkedlist/internal/utils"
)

func TestParseRequest(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  Request
	}
	tests := []testCase{
		{"append", "append 10", Request{Command: CmdAppend, Value: 10}},
		{"negative value", "PREPEND -3", Request{Command: CmdPrepend, Value: -3}},
		{"insert at", "insert_at 2 25", Request{Command: CmdInsertAt, Position: 2, Value: 25}},
		{"delete at", "DELETE_AT   1", Request{Command: CmdDeleteAt, Position: 1}},
		{"get nth", "GET_NTH -1", Request{Command: CmdGetNth, Position: -1}},
		{"show", "  show  ", Request{Command: CmdShow}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequest(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRequestErrors(t *testing.T) {
	type testCase struct {
		name  string
		input string
		want  error
	}
	tests := []testCase{
		{"empty", "", ErrInvalidArgs},
		{"unknown", "POP", ErrUnknownCommand},
		{"missing value", "APPEND", ErrInvalidArgs},
		{"extra argument", "SHOW 1", ErrInvalidArgs},
		{"insert needs two", "INSERT_AT 1", ErrInvalidArgs},
		{"not a number", "SEARCH ten", ErrInvalidArgs},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRequestStringRoundTrip(t *testing.T) {
	for _, line := range DefaultScenario {
		request, err := ParseRequest(line)
		require.NoError(t, err)
		assert.Equal(t, line, request.String())
	}
}

func TestHandleCommandErrors(t *testing.T) {
	h := NewCommandHandler(datastructures.NewSinglyLinkedList[int]())

	_, err := h.HandleCommand(Request{Command: CmdDelete, Value: 1})
	assert.ErrorIs(t, err, datastructures.ErrEmptyList)

	_, err = h.HandleCommand(Request{Command: CmdInsertAt, Position: -1, Value: 1})
	assert.ErrorIs(t, err, datastructures.ErrInvalidPosition)

	_, err = h.HandleCommand(Request{Command: CmdGetNth, Position: 0})
	assert.ErrorIs(t, err, datastructures.ErrOutOfRange)

	_, err = h.HandleCommand(Request{Command: "PUSH"})
	assert.ErrorIs(t, err, ErrUnknownCommand)

	resp, err := h.HandleCommand(Request{Command: CmdIsEmpty})
	require.NoError(t, err)
	assert.True(t, resp.Flag)
}

func TestDefaultScenario(t *testing.T) {
	want := []string{
		"OK",
		"OK",
		"OK",
		"10 %[1]s 20 %[1]s 30 %[1]s %[2]s",
		"OK",
		"5 %[1]s 10 %[1]s 20 %[1]s 30 %[1]s %[2]s",
		"OK",
		"5 %[1]s 10 %[1]s 30 %[1]s %[2]s",
		"search 10: true",
		"search 40: false",
		"length: 3",
		"OK",
		"30 %[1]s 10 %[1]s 5 %[1]s %[2]s",
		"OK",
		"30 %[1]s 10 %[1]s 25 %[1]s 5 %[1]s %[2]s",
		"OK",
		"30 %[1]s 10 %[1]s 5 %[1]s %[2]s",
		"middle node: 10",
		"node 2: 5",
	}
	decor := map[datastructures.Kind][2]string{
		datastructures.Singly:         {"->", "nil"},
		datastructures.Doubly:         {"<->", "nil"},
		datastructures.CircularSingly: {"->", "(head)"},
		datastructures.CircularDoubly: {"<->", "(head)"},
	}

	for _, kind := range datastructures.Kinds {
		t.Run(string(kind), func(t *testing.T) {
			list, err := datastructures.NewList[int](kind)
			require.NoError(t, err)
			h := NewCommandHandler(list)

			steps := h.RunScenario(DefaultScenario, utils.NewMessages("en"))
			require.Len(t, steps, len(want))
			for i, step := range steps {
				require.NoError(t, step.Err, DefaultScenario[i])
				expected := want[i]
				if step.Request.Command == CmdShow {
					expected = fmt.Sprintf(expected, decor[kind][0], decor[kind][1])
				}
				assert.Equal(t, expected, step.Status, DefaultScenario[i])
			}
			assert.Equal(t, []int{30, 10, 5}, list.Values())
		})
	}
}

func TestRunScenarioContinuesAfterFailure(t *testing.T) {
	h := NewCommandHandler(datastructures.NewDoublyLinkedList[int]())
	lines := []string{"DELETE 1", "BOGUS", "APPEND 1", "DELETE_AT 5", "SHOW"}

	steps := h.RunScenario(lines, utils.NewMessages("ko"))
	require.Len(t, steps, len(lines))

	assert.ErrorIs(t, steps[0].Err, datastructures.ErrEmptyList)
	assert.Equal(t, "DELETE 실패: 리스트가 비어 있습니다.", steps[0].Status)
	assert.ErrorIs(t, steps[1].Err, ErrUnknownCommand)
	assert.NoError(t, steps[2].Err)
	assert.Equal(t, "완료", steps[2].Status)
	assert.ErrorIs(t, steps[3].Err, datastructures.ErrOutOfRange)
	assert.Equal(t, "1 <-> nil", steps[4].Status)
}

func TestRenderEmptyShow(t *testing.T) {
	h := NewCommandHandler(datastructures.NewCircularSinglyLinkedList[int]())
	steps := h.RunScenario([]string{"SHOW"}, utils.NewMessages("ko"))
	require.Len(t, steps, 1)
	assert.Equal(t, "리스트가 비어 있습니다.", steps[0].Status)
}
