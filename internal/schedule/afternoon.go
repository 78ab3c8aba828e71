// afternoon.go packs the dual-boundary afternoon block.
package schedule

import (
	"fmt"

	"github.com/confsched-dev/confsched/internal/config"
	"github.com/confsched-dev/confsched/internal/log"
	"github.com/confsched-dev/confsched/internal/session"
)

// WindowViolationError reports a talk whose computed start or end time
// falls outside the afternoon window. The packing loop never offers
// out-of-window candidates, so this is a defensive invariant guard, not a
// normal runtime error.
type WindowViolationError struct {
	Title string
	Start string
	End   string
}

func (e *WindowViolationError) Error() string {
	return fmt.Sprintf("talk %q at %s-%s falls outside the afternoon window", e.Title, e.Start, e.End)
}

// packAfternoon fills the window from AfternoonStart using two candidate
// boundaries: each iteration first offers the budget up to
// NetworkingEarliest; only when nothing fits there does it retry with the
// budget up to NetworkingLatest. A talk can therefore end inside the
// networking window only when no smaller talk fits before it, and nothing
// is ever scheduled past the latest boundary. The single networking
// filler is appended at the final cursor, snapped forward to the earliest
// boundary when packing left the afternoon short.
func packAfternoon(pool *Pool, venue config.Venue, logger *log.Logger, track int) ([]*session.Item, error) {
	cursor := venue.AfternoonStart
	var items []*session.Item

	for {
		i := pool.NextFit(int(venue.NetworkingEarliest - cursor))
		if i < 0 {
			i = pool.NextFit(int(venue.NetworkingLatest - cursor))
		}
		if i < 0 {
			break
		}

		end := cursor.Add(pool.Items()[i].Duration)
		if cursor < venue.AfternoonStart || end > venue.NetworkingLatest {
			return nil, &WindowViolationError{
				Title: pool.Items()[i].Description,
				Start: cursor.String(),
				End:   end.String(),
			}
		}

		it := pool.Place(i, cursor)
		items = append(items, it)
		logPlacement(logger, log.EventItemPlaced, track, it)
		cursor = end
	}

	start := cursor
	if start < venue.NetworkingEarliest {
		start = venue.NetworkingEarliest
	}
	networking := session.NewNetworking(start)
	items = append(items, networking)
	logPlacement(logger, log.EventNetworkingPlaced, track, networking)
	return items, nil
}
