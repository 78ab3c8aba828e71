// Package render turns a finished track list into human-readable output:
// plain text, styled terminal text, and iCalendar export.
package render

import (
	"fmt"
	"io"

	"github.com/confsched-dev/confsched/internal/schedule"
)

// TrackRenderer receives a finished ordered list of tracks and emits them
// to w. The engine hands over structured data only; all formatting lives
// behind this interface.
type TrackRenderer interface {
	Render(w io.Writer, tracks []*schedule.Track) error
}

// Text renders each track as a "Track N" header followed by one
// "HH:MM AM/PM => description" line per session item.
type Text struct{}

// Render writes the plain-text schedule.
func (Text) Render(w io.Writer, tracks []*schedule.Track) error {
	for n, track := range tracks {
		if n > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Track %d\n", track.Number); err != nil {
			return err
		}
		for _, it := range track.Sessions() {
			if _, err := fmt.Fprintf(w, "%s => %s\n", it.Start.Clock12(), it.Description); err != nil {
				return err
			}
		}
	}
	return nil
}
