package cli

import (
	"testing"

	"github.com/confsched-dev/confsched/internal/session"
	"github.com/confsched-dev/confsched/internal/testutil"
)

func TestBuildTracksFromFile(t *testing.T) {
	path := testutil.TempProposals(t,
		"Writing Fast Tests Against Enterprise Rails 60min",
		"Overdoing it in Python 45min",
		"Rails for Python Developers lightning",
	)

	tracks, err := buildTracks(path, false)
	if err != nil {
		t.Fatalf("buildTracks failed: %v", err)
	}
	if len(tracks) != 1 {
		t.Fatalf("track count: got %d, want 1", len(tracks))
	}

	talks := 0
	for _, it := range tracks[0].Sessions() {
		if it.Kind == session.KindTalk || it.Kind == session.KindLightning {
			talks++
		}
	}
	if talks != 3 {
		t.Errorf("placed proposals: got %d, want 3", talks)
	}
}

func TestBuildTracksRejectsBadDuration(t *testing.T) {
	path := testutil.TempProposals(t, "Instant Talk 0min")

	if _, err := buildTracks(path, false); err == nil {
		t.Error("expected error for zero-minute proposal")
	}
}

func TestBuildTracksRejectsEmptyFile(t *testing.T) {
	path := testutil.TempProposals(t, "# only a comment")

	if _, err := buildTracks(path, false); err == nil {
		t.Error("expected error for file without proposals")
	}
}
