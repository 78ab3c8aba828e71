// Package schedule implements the greedy first-fit packing engine that
// assigns normalized proposals to conference tracks.
package schedule

import (
	"fmt"

	"github.com/confsched-dev/confsched/internal/clock"
	"github.com/confsched-dev/confsched/internal/session"
)

// Pool is the shared collection of normalized proposals. Membership is
// explicit: an item is either still unscheduled or has been placed into a
// block, never both. Scanning and mutation are separate operations
// (NextFit looks, Place moves) so blocks never reclassify entries while
// iterating.
type Pool struct {
	items     []*session.Item
	placed    []bool
	remaining int
}

// NewPool wraps a normalized, duration-sorted item list.
func NewPool(items []*session.Item) *Pool {
	return &Pool{
		items:     items,
		placed:    make([]bool, len(items)),
		remaining: len(items),
	}
}

// NextFit returns the index of the first unscheduled item whose duration
// fits within budget minutes, or -1 if none does. Because the pool is
// sorted descending by duration, the first admissible item is also the
// largest admissible one. Pure lookup, no side effects.
func (p *Pool) NextFit(budget int) int {
	for i, it := range p.items {
		if p.placed[i] {
			continue
		}
		if it.Duration <= budget {
			return i
		}
	}
	return -1
}

// Place moves the item at index i out of the unscheduled membership,
// reclassifies it, and stamps the start time. Placing the same index
// twice is a programming error.
func (p *Pool) Place(i int, start clock.Minutes) *session.Item {
	if i < 0 || i >= len(p.items) {
		panic(fmt.Sprintf("schedule: place index %d out of range", i))
	}
	if p.placed[i] {
		panic(fmt.Sprintf("schedule: item %d already placed", i))
	}
	it := p.items[i]
	it.Place(start)
	p.placed[i] = true
	p.remaining--
	return it
}

// Unscheduled returns how many items have not been placed yet.
func (p *Pool) Unscheduled() int { return p.remaining }

// Len returns the total pool size.
func (p *Pool) Len() int { return len(p.items) }

// Items exposes the underlying item list in pool order.
func (p *Pool) Items() []*session.Item { return p.items }
