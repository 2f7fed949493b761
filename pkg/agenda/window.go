package agenda

import (
	"time"
)

const (
	queryMode   = "agenda"
	boundLayout = "2006-01-02 15:04:05"

	// eveningCutoff closes the query window at the end of the working day;
	// events past it are tomorrow's problem.
	eveningCutoff = "22:00:00"
)

// QueryArgs builds the default agenda query arguments: from now until
// today's late-evening cutoff, both in the zone now carries. Caller
// arguments are appended after these by the entry point.
func QueryArgs(now time.Time) []string {
	from := now.Format(boundLayout)
	to := now.Format("2006-01-02") + " " + eveningCutoff
	return []string{queryMode, from, to}
}
