package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vskvj3/linkedlist/internal/datastructures"
	"github.com/vskvj3/linkedlist/internal/utils"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidArgs    = errors.New("invalid arguments")
)

// Commands understood by the handler.
const (
	CmdAppend     = "APPEND"
	CmdPrepend    = "PREPEND"
	CmdDelete     = "DELETE"
	CmdSearch     = "SEARCH"
	CmdShow       = "SHOW"
	CmdReverse    = "REVERSE"
	CmdLength     = "LENGTH"
	CmdInsertAt   = "INSERT_AT"
	CmdDeleteAt   = "DELETE_AT"
	CmdFindMiddle = "FIND_MIDDLE"
	CmdGetNth     = "GET_NTH"
	CmdIsEmpty    = "IS_EMPTY"
	CmdClear      = "CLEAR"
)

// Request is one parsed command line.
type Request struct {
	Command  string
	Value    int
	Position int
}

func (r Request) String() string {
	switch r.Command {
	case CmdAppend, CmdPrepend, CmdDelete, CmdSearch:
		return fmt.Sprintf("%s %d", r.Command, r.Value)
	case CmdInsertAt:
		return fmt.Sprintf("%s %d %d", r.Command, r.Position, r.Value)
	case CmdDeleteAt, CmdGetNth:
		return fmt.Sprintf("%s %d", r.Command, r.Position)
	default:
		return r.Command
	}
}

// ParseRequest parses and validates the command and its arguments
func ParseRequest(input string) (Request, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return Request{}, fmt.Errorf("%w: no command entered", ErrInvalidArgs)
	}

	request := Request{Command: strings.ToUpper(parts[0])}
	args := parts[1:]

	var want int
	switch request.Command {
	case CmdShow, CmdReverse, CmdLength, CmdFindMiddle, CmdIsEmpty, CmdClear:
		want = 0
	case CmdAppend, CmdPrepend, CmdDelete, CmdSearch, CmdDeleteAt, CmdGetNth:
		want = 1
	case CmdInsertAt:
		want = 2
	default:
		return Request{}, fmt.Errorf("%w: %s", ErrUnknownCommand, request.Command)
	}
	if len(args) != want {
		return Request{}, fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrInvalidArgs, request.Command, want, len(args))
	}

	ints := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return Request{}, fmt.Errorf("%w: %s expects integers, got %q", ErrInvalidArgs, request.Command, arg)
		}
		ints[i] = n
	}

	switch request.Command {
	case CmdAppend, CmdPrepend, CmdDelete, CmdSearch:
		request.Value = ints[0]
	case CmdDeleteAt, CmdGetNth:
		request.Position = ints[0]
	case CmdInsertAt:
		request.Position, request.Value = ints[0], ints[1]
	}
	return request, nil
}

// Response is the outcome of a successful command.
type Response struct {
	Command string
	Text    string
	Flag    bool
	Value   int
}

// Render formats the response as a status line.
func (r Response) Render(m *utils.Messages, request Request) string {
	switch r.Command {
	case CmdShow:
		if r.Flag {
			return m.Sprintf(utils.MsgListEmpty)
		}
		return r.Text
	case CmdSearch:
		return m.Sprintf(utils.MsgSearch, request.Value, r.Flag)
	case CmdIsEmpty:
		return m.Sprintf(utils.MsgIsEmpty, r.Flag)
	case CmdLength:
		return m.Sprintf(utils.MsgLength, r.Value)
	case CmdFindMiddle:
		return m.Sprintf(utils.MsgMiddle, r.Value)
	case CmdGetNth:
		return m.Sprintf(utils.MsgNth, request.Position, r.Value)
	default:
		return m.Sprintf(utils.MsgOK)
	}
}

type CommandHandler struct {
	List datastructures.List[int]
}

// Create a new CommandHandler instance
func NewCommandHandler(list datastructures.List[int]) *CommandHandler {
	return &CommandHandler{List: list}
}

// HandleCommand applies request to the handler's list. List errors are returned as is.
func (h *CommandHandler) HandleCommand(request Request) (Response, error) {
	response := Response{Command: request.Command}
	var err error

	switch request.Command {
	case CmdAppend:
		h.List.Append(request.Value)
	case CmdPrepend:
		h.List.Prepend(request.Value)
	case CmdDelete:
		err = h.List.Delete(request.Value)
	case CmdSearch:
		response.Flag = h.List.Search(request.Value)
	case CmdShow:
		response.Text = h.List.Show()
		response.Flag = h.List.IsEmpty()
	case CmdReverse:
		h.List.Reverse()
	case CmdLength:
		response.Value = h.List.Length()
	case CmdInsertAt:
		err = h.List.InsertAt(request.Position, request.Value)
	case CmdDeleteAt:
		err = h.List.DeleteAt(request.Position)
	case CmdFindMiddle:
		response.Value, err = h.List.FindMiddle()
	case CmdGetNth:
		response.Value, err = h.List.GetNth(request.Position)
	case CmdIsEmpty:
		response.Flag = h.List.IsEmpty()
	case CmdClear:
		h.List.Clear()
	default:
		return Response{}, fmt.Errorf("%w: %s", ErrUnknownCommand, request.Command)
	}

	if err != nil {
		return Response{}, err
	}
	return response, nil
}
