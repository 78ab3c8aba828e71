package proposal

import (
	"errors"
	"testing"

	"github.com/confsched-dev/confsched/internal/session"
)

func defaultLimits() Limits {
	return Limits{MinMinutes: 1, MaxMinutes: 60, LightningMinutes: 5}
}

func TestNormalizeParsesSpecs(t *testing.T) {
	raws := []Raw{
		{Title: "Rails Magic", DurationSpec: "60min"},
		{Title: "Bare Minutes", DurationSpec: "45"},
		{Title: "Rails for Python Developers", DurationSpec: "lightning"},
	}

	items, err := Normalize(raws, defaultLimits())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("item count: got %d, want 3", len(items))
	}

	// Sorted descending: 60, 45, 5.
	if items[0].Duration != 60 || items[1].Duration != 45 || items[2].Duration != 5 {
		t.Errorf("durations: got %d, %d, %d, want 60, 45, 5",
			items[0].Duration, items[1].Duration, items[2].Duration)
	}
	if items[2].Becomes() != session.KindLightning {
		t.Errorf("lightning item becomes: got %v", items[2].Becomes())
	}
	for _, it := range items {
		if it.Kind != session.KindUnscheduled {
			t.Errorf("item %q kind: got %v, want unscheduled", it.Description, it.Kind)
		}
	}
}

func TestNormalizeSortIsStableOnTies(t *testing.T) {
	raws := []Raw{
		{Title: "First", DurationSpec: "30min"},
		{Title: "Second", DurationSpec: "30min"},
		{Title: "Third", DurationSpec: "30min"},
	}
	items, err := Normalize(raws, defaultLimits())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if items[i].Description != want {
			t.Errorf("item %d: got %q, want %q", i, items[i].Description, want)
		}
	}
}

func TestNormalizePoolIsDescending(t *testing.T) {
	raws := []Raw{
		{Title: "A", DurationSpec: "30min"},
		{Title: "B", DurationSpec: "60min"},
		{Title: "C", DurationSpec: "lightning"},
		{Title: "D", DurationSpec: "45min"},
	}
	items, err := Normalize(raws, defaultLimits())
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Duration < items[i].Duration {
			t.Errorf("pool not descending at %d: %d before %d", i, items[i-1].Duration, items[i].Duration)
		}
	}
}

func TestNormalizeRejectsOutOfRangeDurations(t *testing.T) {
	// The lower bound is exclusive: a 1-minute talk is rejected too.
	for _, spec := range []string{"0min", "1min", "61min"} {
		_, err := Normalize([]Raw{{Title: "Edge", DurationSpec: spec}}, defaultLimits())
		if err == nil {
			t.Errorf("spec %q: expected InvalidDurationError, got nil", spec)
			continue
		}
		var invalid *InvalidDurationError
		if !errors.As(err, &invalid) {
			t.Errorf("spec %q: got %v, want InvalidDurationError", spec, err)
		}
	}

	if _, err := Normalize([]Raw{{Title: "OK", DurationSpec: "2min"}}, defaultLimits()); err != nil {
		t.Errorf("2min should be valid, got %v", err)
	}
}

func TestNormalizeFailsFastOnFirstBadProposal(t *testing.T) {
	raws := []Raw{
		{Title: "Fine", DurationSpec: "30min"},
		{Title: "Broken", DurationSpec: "0min"},
		{Title: "Never Reached", DurationSpec: "45min"},
	}
	items, err := Normalize(raws, defaultLimits())
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if items != nil {
		t.Errorf("expected no items on failure, got %d", len(items))
	}
	var invalid *InvalidDurationError
	if !errors.As(err, &invalid) {
		t.Fatalf("got %v, want InvalidDurationError", err)
	}
	if invalid.Title != "Broken" || invalid.Minutes != 0 {
		t.Errorf("error details: got %+v", invalid)
	}
}

func TestNormalizeRejectsUnrecognizedSpec(t *testing.T) {
	if _, err := Normalize([]Raw{{Title: "Huh", DurationSpec: "soonish"}}, defaultLimits()); err == nil {
		t.Error("expected error for unrecognized duration spec")
	}
}
