package event

import (
	"fmt"
	"strings"
	"time"
)

// timeTokenLayout matches the upstream agenda line after the year repair:
// the four-digit year is glued directly onto the abbreviated weekday.
// time.Parse checks the weekday for syntax but ignores it when computing
// the date, which matches the upstream tool's loose output.
const timeTokenLayout = "2006Mon Jan 02 15:04"

// timeTokenFields is how many whitespace tokens the time part spans.
const timeTokenFields = 4

// ParseError reports a line whose time token did not match the agenda
// layout. It carries the offending token so the failure can be shown
// verbatim.
type ParseError struct {
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse agenda time %q", e.Token)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse turns a normalized (year-prefixed) agenda line into an Event. The
// first four whitespace tokens form the time token, everything after them
// is the description; with fewer than four tokens the whole line is the
// time token and the description is empty. The parsed wall-clock time is
// interpreted in loc, so StartTime comes out as an absolute instant.
func Parse(loc *time.Location, line string) (Event, error) {
	fields := strings.Fields(line)
	token := strings.Join(fields, " ")
	description := ""
	if len(fields) > timeTokenFields {
		token = strings.Join(fields[:timeTokenFields], " ")
		description = strings.Join(fields[timeTokenFields:], " ")
	}

	startTime, err := time.ParseInLocation(timeTokenLayout, token, loc)
	if err != nil {
		return Event{}, &ParseError{Token: token, Err: err}
	}

	return Event{StartTime: startTime, Description: description}, nil
}
