// morning.go packs the fixed-boundary morning block.
package schedule

import (
	"github.com/confsched-dev/confsched/internal/config"
	"github.com/confsched-dev/confsched/internal/log"
	"github.com/confsched-dev/confsched/internal/session"
)

// packMorning fills the window from MorningStart to the fixed LunchStart
// boundary, then appends the lunch filler at the final cursor. Lunch is
// not clamped to the boundary: the budget check already guarantees the
// cursor cannot overshoot it.
func packMorning(pool *Pool, venue config.Venue, logger *log.Logger, track int) []*session.Item {
	cursor := venue.MorningStart
	var items []*session.Item

	for venue.LunchStart-cursor > 0 {
		i := pool.NextFit(int(venue.LunchStart - cursor))
		if i < 0 {
			break
		}
		it := pool.Place(i, cursor)
		items = append(items, it)
		logPlacement(logger, log.EventItemPlaced, track, it)
		cursor = cursor.Add(it.Duration)
	}

	lunch := session.NewLunch(cursor, venue.LunchMinutes)
	items = append(items, lunch)
	logPlacement(logger, log.EventLunchPlaced, track, lunch)
	return items
}

// logPlacement appends a placement event. Logging is optional; a nil
// logger disables it.
func logPlacement(logger *log.Logger, event string, track int, it *session.Item) {
	if logger == nil {
		return
	}
	_ = logger.Append(log.LogEvent{
		Event:    event,
		Track:    track,
		Title:    it.Description,
		Kind:     it.Kind.String(),
		Start:    it.Start.String(),
		Duration: it.Duration,
	})
}
