// Package agenda owns the boundary to the external calendar-agenda tool:
// building the query window, running the tool, and reducing its raw output
// to the single line worth parsing.
package agenda

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// ProcessError means the agenda tool could not be located, started, or ran
// in a way that prevented capturing its output.
type ProcessError struct {
	Command string
	Err     error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("failed to run %s: %v", e.Command, e.Err)
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Invoker runs the external agenda tool and returns its whole stdout.
type Invoker interface {
	Agenda(ctx context.Context, args []string) (string, error)
}

// ExecInvoker shells out to a configured command. Base arguments come from
// the configured command string; query arguments are appended per call.
type ExecInvoker struct {
	command  string
	baseArgs []string
}

func NewExecInvoker(command string, baseArgs []string) *ExecInvoker {
	return &ExecInvoker{command: command, baseArgs: baseArgs}
}

// Agenda executes the tool synchronously with no stdin and captures its
// standard output. The tool's stderr is captured separately and included
// in the error when the run fails.
func (i *ExecInvoker) Agenda(ctx context.Context, args []string) (string, error) {
	argv := make([]string, 0, len(i.baseArgs)+len(args))
	argv = append(argv, i.baseArgs...)
	argv = append(argv, args...)

	cmd := exec.CommandContext(ctx, i.command, argv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			err = fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return "", &ProcessError{Command: i.command, Err: err}
	}

	return stdout.String(), nil
}
