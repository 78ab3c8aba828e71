// track.go defines the built schedule's output types.
package schedule

import "github.com/confsched-dev/confsched/internal/session"

// Track is one full conference day: a 1-based day number plus the morning
// and afternoon item sequences. Scheduling order is chronological order.
// Tracks are fully populated in one pass and read-only afterwards.
type Track struct {
	Number    int
	Morning   []*session.Item
	Afternoon []*session.Item
}

// Sessions returns the whole day's items in chronological order.
func (t *Track) Sessions() []*session.Item {
	out := make([]*session.Item, 0, len(t.Morning)+len(t.Afternoon))
	out = append(out, t.Morning...)
	out = append(out, t.Afternoon...)
	return out
}
