package render

import (
	"time"

	"github.com/barcal/barcal/pkg/event"
)

// Renderer formats the next event as one status-bar line, using the
// <fc=...></fc> inline-color markup the bar understands.
type Renderer struct {
	color string
}

func New(color string) *Renderer {
	return &Renderer{color: color}
}

// Render prints the event's start time as local 24-hour HH:MM followed by
// the description, wrapped in color markup when the event is imminent.
// Local time is taken from the zone now carries, so classification and
// display always agree on the same captured instant.
func (r *Renderer) Render(now time.Time, e event.Event) string {
	line := e.StartTime.In(now.Location()).Format("15:04") + " " + e.Description
	if e.IsImminent(now) {
		return "<fc=" + r.color + ">" + line + "</fc>"
	}
	return line
}
