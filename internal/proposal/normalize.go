// normalize.go converts raw proposals into validated, duration-sorted
// unscheduled session items.
package proposal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/confsched-dev/confsched/internal/session"
)

// lightningSpec is the duration spec marking a lightning talk.
const lightningSpec = "lightning"

// Limits are the venue's duration rules, handed in explicitly so tests can
// vary them.
type Limits struct {
	// MinMinutes is an exclusive lower bound: a talk must be strictly
	// longer than this. The default of 1 rejects one-minute talks.
	MinMinutes int
	// MaxMinutes is an inclusive upper bound.
	MaxMinutes int
	// LightningMinutes is the fixed length of a lightning talk,
	// regardless of anything the proposal declared.
	LightningMinutes int
}

// InvalidDurationError reports a proposal whose resolved duration falls
// outside the venue limits. Normalization fails fast on the first one.
type InvalidDurationError struct {
	Title   string
	Minutes int
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("proposal %q: invalid duration %d minutes", e.Title, e.Minutes)
}

// Normalize converts raw proposals into unscheduled session items and
// sorts them descending by duration (stable, so ties keep input order).
// Offering the largest items first makes the pool's first-fit scan behave
// like best-fit without an explicit max search.
func Normalize(raws []Raw, lim Limits) ([]*session.Item, error) {
	items := make([]*session.Item, 0, len(raws))
	for _, raw := range raws {
		minutes, lightning, err := resolveDuration(raw, lim)
		if err != nil {
			return nil, err
		}
		if minutes <= lim.MinMinutes || minutes > lim.MaxMinutes {
			return nil, &InvalidDurationError{Title: raw.Title, Minutes: minutes}
		}
		items = append(items, session.NewProposal(raw.Title, minutes, lightning))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Duration > items[j].Duration
	})
	return items, nil
}

func resolveDuration(raw Raw, lim Limits) (minutes int, lightning bool, err error) {
	spec := strings.ToLower(strings.TrimSpace(raw.DurationSpec))
	if spec == lightningSpec {
		return lim.LightningMinutes, true, nil
	}
	spec = strings.TrimSuffix(spec, "min")
	minutes, convErr := strconv.Atoi(spec)
	if convErr != nil {
		return 0, false, fmt.Errorf("proposal %q: unrecognized duration spec %q", raw.Title, raw.DurationSpec)
	}
	return minutes, false, nil
}
