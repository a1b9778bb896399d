package core

import (
	"github.com/vskvj3/linkedlist/internal/utils"
)

// DefaultScenario exercises every list operation in order.
var DefaultScenario = []string{
	"APPEND 10",
	"APPEND 20",
	"APPEND 30",
	"SHOW",
	"PREPEND 5",
	"SHOW",
	"DELETE 20",
	"SHOW",
	"SEARCH 10",
	"SEARCH 40",
	"LENGTH",
	"REVERSE",
	"SHOW",
	"INSERT_AT 2 25",
	"SHOW",
	"DELETE_AT 2",
	"SHOW",
	"FIND_MIDDLE",
	"GET_NTH 2",
}

// Step is the result of one scenario line.
type Step struct {
	Request  Request
	Response Response
	Status   string
	Err      error
}

// RunScenario parses and applies each line in turn. A failing line is
// recorded and the run continues, so one bad step does not hide the rest.
func (h *CommandHandler) RunScenario(lines []string, messages *utils.Messages) []Step {
	steps := make([]Step, 0, len(lines))
	for _, line := range lines {
		request, err := ParseRequest(line)
		if err != nil {
			steps = append(steps, Step{Status: err.Error(), Err: err})
			continue
		}
		response, err := h.HandleCommand(request)
		step := Step{Request: request, Response: response, Err: err}
		if err != nil {
			step.Status = messages.Sprintf(utils.MsgCommandFail, request.Command, messages.Describe(err))
		} else {
			step.Status = response.Render(messages, request)
		}
		steps = append(steps, step)
	}
	return steps
}
