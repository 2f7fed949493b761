package agenda

import (
	"context"
)

// StubInvoker replays a canned tool run and records the arguments it was
// called with.
type StubInvoker struct {
	Output string
	Err    error
	Calls  [][]string
}

func (s *StubInvoker) Agenda(ctx context.Context, args []string) (string, error) {
	s.Calls = append(s.Calls, args)
	if s.Err != nil {
		return "", s.Err
	}
	return s.Output, nil
}
