// ics.go exports a finished schedule as an iCalendar feed, one VEVENT per
// session item with tracks mapped onto consecutive days.
package render

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/confsched-dev/confsched/internal/schedule"
)

// WriteICS serializes the tracks as an iCalendar document. firstDay is the
// calendar date of track 1; track N lands on firstDay + (N-1) days, in
// firstDay's location.
func WriteICS(w io.Writer, tracks []*schedule.Track, firstDay time.Time) error {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)

	now := time.Now()
	for _, track := range tracks {
		day := firstDay.AddDate(0, 0, track.Number-1)
		for i, it := range track.Sessions() {
			uid := fmt.Sprintf("track%d-item%d@confsched", track.Number, i+1)
			ev := cal.AddEvent(uid)
			ev.SetDtStampTime(now)
			ev.SetStartAt(atMinute(day, int(it.Start)))
			ev.SetEndAt(atMinute(day, int(it.End())))
			ev.SetSummary(it.Description)
			ev.SetDescription(fmt.Sprintf("Track %d %s (%d min)", track.Number, it.Kind, it.Duration))
		}
	}

	if err := cal.SerializeTo(w); err != nil {
		return fmt.Errorf("serializing calendar: %w", err)
	}
	return nil
}

// atMinute anchors a minute-of-day on the given calendar date.
func atMinute(day time.Time, minutes int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, minutes, 0, 0, day.Location())
}
