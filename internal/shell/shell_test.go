package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vskvj3/linkedlist/internal/core"
	"github.com/vskvj3/linkedlist/internal/datastructures"
	"github.com/vskvj3/linkedlist/internal/utils"
)

func TestHistory(t *testing.T) {
	h := NewHistory[string](3)
	_, err := h.Last()
	assert.Error(t, err)

	for _, cmd := range []string{"a", "b", "c", "d"} {
		h.Record(cmd)
	}
	assert.Equal(t, 3, h.Size())
	assert.Equal(t, []string{"b", "c", "d"}, h.Entries())

	last, err := h.Last()
	require.NoError(t, err)
	assert.Equal(t, "d", last)

	h.Record("e")
	h.Record("f")
	assert.Equal(t, []string{"d", "e", "f"}, h.Entries())
}

func TestHistoryCapacity(t *testing.T) {
	assert.Panics(t, func() { NewHistory[int](0) })
}

func newShell(list datastructures.List[int], lang string) *Shell {
	return New(core.NewCommandHandler(list), utils.NewMessages(lang), utils.New(io.Discard, false), 2)
}

func TestRun(t *testing.T) {
	list := datastructures.NewDoublyLinkedList[int]()
	s := newShell(list, "en")

	input := strings.Join([]string{
		"append 1",
		"append 2",
		"",
		"search 2",
		"delete_at 9",
		"frobnicate",
		"show",
		"history",
		"exit",
		"append 3",
	}, "\n")
	var out bytes.Buffer
	require.NoError(t, s.Run(strings.NewReader(input), &out))

	text := out.String()
	assert.Contains(t, text, "search 2: true")
	assert.Contains(t, text, "DELETE_AT failed: position out of range")
	assert.Contains(t, text, "Error: unknown command: FROBNICATE")
	assert.Contains(t, text, "1 <-> 2 <-> nil")
	assert.Contains(t, text, "1  DELETE_AT 9\n2  SHOW\n")
	assert.Equal(t, []int{1, 2}, list.Values(), "commands after EXIT must not run")
}

func TestRunStopsAtEOF(t *testing.T) {
	list := datastructures.NewSinglyLinkedList[int]()
	s := newShell(list, "ko")

	var out bytes.Buffer
	require.NoError(t, s.Run(strings.NewReader("prepend 4\nlength"), &out))
	assert.Contains(t, out.String(), "리스트 길이: 1")
	assert.Equal(t, []int{4}, list.Values())
}
