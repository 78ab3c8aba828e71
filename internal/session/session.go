// Package session defines the session item, the unit that circulates
// through scheduling: a normalized proposal before placement, a talk or
// lightning talk after placement, and the lunch and networking fillers.
package session

import (
	"fmt"

	"github.com/confsched-dev/confsched/internal/clock"
)

// Kind classifies a session item and determines its placement rules.
type Kind int

const (
	KindUnscheduled Kind = iota
	KindTalk
	KindLightning
	KindLunch
	KindNetworking
)

// String returns the display label for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnscheduled:
		return "unscheduled"
	case KindTalk:
		return "talk"
	case KindLightning:
		return "lightning"
	case KindLunch:
		return "lunch"
	case KindNetworking:
		return "networking"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// networkingMinutes is the nominal length of the networking placeholder.
// It only matters for calendar export; the engine treats networking as the
// end of the day.
const networkingMinutes = 60

// Item is the mutable scheduling unit. A proposal starts as
// KindUnscheduled with Start unset; placement reclassifies it in place to
// KindTalk or KindLightning and stamps the start time. Fillers are created
// already placed.
type Item struct {
	Description string
	Start       clock.Minutes
	Duration    int // minutes
	Kind        Kind

	// becomes records which kind an unscheduled proposal turns into when
	// placed. Zero for fillers.
	becomes Kind
}

// NewProposal creates an unscheduled session item for a normalized
// proposal. lightning selects the kind the item becomes when placed.
func NewProposal(description string, duration int, lightning bool) *Item {
	becomes := KindTalk
	if lightning {
		becomes = KindLightning
	}
	return &Item{
		Description: description,
		Start:       clock.Unset,
		Duration:    duration,
		Kind:        KindUnscheduled,
		becomes:     becomes,
	}
}

// NewLunch creates the placed lunch filler for a morning block.
func NewLunch(start clock.Minutes, duration int) *Item {
	return &Item{
		Description: "Lunch",
		Start:       start,
		Duration:    duration,
		Kind:        KindLunch,
	}
}

// NewNetworking creates the placed networking filler for an afternoon block.
func NewNetworking(start clock.Minutes) *Item {
	return &Item{
		Description: "Networking Event",
		Start:       start,
		Duration:    networkingMinutes,
		Kind:        KindNetworking,
	}
}

// Becomes reports the kind an unscheduled item turns into when placed.
func (it *Item) Becomes() Kind { return it.becomes }

// Placed reports whether the item has been assigned a start time.
func (it *Item) Placed() bool { return it.Start != clock.Unset }

// End returns the time of day at which the item finishes.
func (it *Item) End() clock.Minutes {
	return it.Start.Add(it.Duration)
}

// Place reclassifies an unscheduled item to its final kind and stamps the
// start time. Placing anything other than an unscheduled item is a
// programming error: placement is at-most-once by construction.
func (it *Item) Place(start clock.Minutes) {
	if it.Kind != KindUnscheduled {
		panic(fmt.Sprintf("session: placing %s item %q twice", it.Kind, it.Description))
	}
	it.Kind = it.becomes
	it.Start = start
}
