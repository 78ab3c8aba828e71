// scheduler.go implements the top-level track-building loop.
package schedule

import (
	"errors"
	"fmt"

	"github.com/confsched-dev/confsched/internal/config"
	"github.com/confsched-dev/confsched/internal/log"
)

// ErrNoForwardProgress is returned when a full track-build iteration
// places zero proposals while unscheduled proposals remain: some proposal
// cannot fit any block, and looping would never terminate.
var ErrNoForwardProgress = errors.New("no remaining proposal fits any slot")

// Build repeatedly creates tracks against the shared pool until no
// unscheduled proposals remain. Morning and afternoon blocks of a track
// run in order against the same pool, so the afternoon sees the morning's
// removals and later tracks see earlier tracks' removals. The pass is
// single-threaded and deterministic: identical input order yields an
// identical layout.
func Build(pool *Pool, venue config.Venue, logger *log.Logger) ([]*Track, error) {
	var tracks []*Track

	for pool.Unscheduled() > 0 {
		before := pool.Unscheduled()
		track := &Track{Number: len(tracks) + 1}

		if logger != nil {
			_ = logger.Append(log.LogEvent{
				Event:     log.EventTrackStarted,
				Track:     track.Number,
				Proposals: before,
			})
		}

		track.Morning = packMorning(pool, venue, logger, track.Number)

		afternoon, err := packAfternoon(pool, venue, logger, track.Number)
		if err != nil {
			return nil, fmt.Errorf("track %d: %w", track.Number, err)
		}
		track.Afternoon = afternoon

		if pool.Unscheduled() == before {
			return nil, fmt.Errorf("track %d placed none of the %d remaining proposals: %w",
				track.Number, before, ErrNoForwardProgress)
		}

		tracks = append(tracks, track)
	}

	return tracks, nil
}
