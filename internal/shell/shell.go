package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vskvj3/linkedlist/internal/core"
	"github.com/vskvj3/linkedlist/internal/utils"
)

const (
	cmdHistory = "HISTORY"
	cmdExit    = "EXIT"
)

// Shell reads command lines and applies them to a single list.
type Shell struct {
	handler  *core.CommandHandler
	messages *utils.Messages
	history  *History[string]
	logger   *utils.Logger
}

func New(handler *core.CommandHandler, messages *utils.Messages, logger *utils.Logger, historySize int) *Shell {
	return &Shell{
		handler:  handler,
		messages: messages,
		history:  NewHistory[string](historySize),
		logger:   logger,
	}
}

// Run serves commands from in until EXIT or end of input.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, ">> ")
		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		line := strings.TrimSpace(input)
		if line != "" {
			if !s.Execute(line, out) {
				return nil
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
	}
}

// Execute handles one line and reports whether the shell should keep going.
func (s *Shell) Execute(line string, out io.Writer) bool {
	switch strings.ToUpper(line) {
	case cmdExit:
		return false
	case cmdHistory:
		for i, entry := range s.history.Entries() {
			fmt.Fprintf(out, "%d  %s\n", i+1, entry)
		}
		return true
	}

	request, err := core.ParseRequest(line)
	if err != nil {
		fmt.Fprintln(out, "Error:", err)
		return true
	}
	s.history.Record(request.String())
	s.logger.Debug("Executing " + request.String())

	response, err := s.handler.HandleCommand(request)
	if err != nil {
		s.logger.Warn(request.String() + ": " + err.Error())
		fmt.Fprintln(out, s.messages.Sprintf(utils.MsgCommandFail, request.Command, s.messages.Describe(err)))
		return true
	}
	fmt.Fprintln(out, response.Render(s.messages, request))
	return true
}
