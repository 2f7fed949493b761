package agenda

import (
	"strings"
	"time"
)

// CandidateLine reduces raw tool output to the one line worth parsing: the
// first non-empty line, with the current four-digit year prepended.
//
// The upstream tool renders event dates without a year; repairing that
// here, as a plain string prepend, keeps the workaround in a single place
// so it can be dropped without touching the parser layout if the tool ever
// grows a year field. Only completely empty lines are skipped, interior
// whitespace is preserved as-is. When no line survives, the candidate is
// the empty string, which the parser rejects downstream.
func CandidateLine(now time.Time, raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if line == "" {
			continue
		}
		return now.Format("2006") + line
	}
	return ""
}
