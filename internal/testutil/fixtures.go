// Package testutil provides test helper utilities for confsched tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/confsched-dev/confsched/internal/proposal"
)

// TempProposals writes the given proposal lines to a temp file and returns
// its path. The file is automatically cleaned up when the test finishes.
func TempProposals(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "proposals.txt")
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing proposals file: %v", err)
	}
	return path
}

// SampleProposals returns a full conference's worth of raw proposals that
// packs into two tracks under the default venue.
func SampleProposals() []proposal.Raw {
	return []proposal.Raw{
		{Title: "Writing Fast Tests Against Enterprise Rails", DurationSpec: "60min"},
		{Title: "Overdoing it in Python", DurationSpec: "45min"},
		{Title: "Lua for the Masses", DurationSpec: "30min"},
		{Title: "Ruby Errors from Mismatched Gem Versions", DurationSpec: "45min"},
		{Title: "Common Ruby Errors", DurationSpec: "45min"},
		{Title: "Rails for Python Developers", DurationSpec: "lightning"},
		{Title: "Communicating Over Distance", DurationSpec: "60min"},
		{Title: "Accounting-Driven Development", DurationSpec: "45min"},
		{Title: "Woah", DurationSpec: "30min"},
		{Title: "Sit Down and Write", DurationSpec: "30min"},
		{Title: "Pair Programming vs Noise", DurationSpec: "45min"},
		{Title: "Rails Magic", DurationSpec: "60min"},
		{Title: "Ruby on Rails: Why We Should Move On", DurationSpec: "60min"},
		{Title: "Clojure Ate Scala (on my project)", DurationSpec: "45min"},
		{Title: "Programming in the Boondocks of Seattle", DurationSpec: "30min"},
		{Title: "Ruby vs. Clojure for Back-End Development", DurationSpec: "30min"},
		{Title: "Ruby on Rails Legacy App Maintenance", DurationSpec: "60min"},
		{Title: "A World Without HackerNews", DurationSpec: "30min"},
		{Title: "User Interface CSS in Rails Apps", DurationSpec: "30min"},
	}
}
