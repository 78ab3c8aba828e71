package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/confsched-dev/confsched/internal/clock"
)

func TestConfigYAMLRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Venue.NetworkingEarliest = clock.Minutes(15*60 + 30)
	cfg.Venue.MaxTalkMinutes = 50

	if err := WriteConfig(tmpDir, cfg); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}

	loaded, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}

	if loaded.Venue.NetworkingEarliest != clock.Minutes(15*60+30) {
		t.Errorf("NetworkingEarliest: got %v, want 15:30", loaded.Venue.NetworkingEarliest)
	}
	if loaded.Venue.MaxTalkMinutes != 50 {
		t.Errorf("MaxTalkMinutes: got %d, want 50", loaded.Venue.MaxTalkMinutes)
	}
	if loaded.Venue.MorningStart != cfg.Venue.MorningStart {
		t.Errorf("MorningStart: got %v, want %v", loaded.Venue.MorningStart, cfg.Venue.MorningStart)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Venue.Validate(); err != nil {
		t.Errorf("default venue should validate: %v", err)
	}

	if cfg.Venue.MorningStart != 9*60 {
		t.Errorf("MorningStart: got %v, want 09:00", cfg.Venue.MorningStart)
	}
	if cfg.Venue.LunchStart != 12*60 {
		t.Errorf("LunchStart: got %v, want 12:00", cfg.Venue.LunchStart)
	}
	if cfg.Venue.NetworkingLatest != 17*60 {
		t.Errorf("NetworkingLatest: got %v, want 17:00", cfg.Venue.NetworkingLatest)
	}
}

func TestValidateRejectsDisorderedWindows(t *testing.T) {
	v := DefaultConfig().Venue
	v.MorningStart = v.LunchStart
	if err := v.Validate(); err == nil {
		t.Error("morning starting at lunch should fail validation")
	}

	v = DefaultConfig().Venue
	v.NetworkingEarliest = v.NetworkingLatest
	if err := v.Validate(); err == nil {
		t.Error("empty networking window should fail validation")
	}

	v = DefaultConfig().Venue
	v.MaxTalkMinutes = v.MinTalkMinutes
	if err := v.Validate(); err == nil {
		t.Error("empty talk duration range should fail validation")
	}
}

func TestLimits(t *testing.T) {
	lim := DefaultConfig().Venue.Limits()
	if lim.MinMinutes != 1 || lim.MaxMinutes != 60 || lim.LightningMinutes != 5 {
		t.Errorf("limits: got %+v", lim)
	}
}

func TestReadConfigHumanEditedTimes(t *testing.T) {
	// Times in the file are plain "HH:MM" strings.
	tmpDir := t.TempDir()
	raw := `version: 1
venue:
  morning_start: "09:00"
  lunch_start: "12:00"
  lunch_minutes: 60
  afternoon_start: "13:00"
  networking_earliest: "16:00"
  networking_latest: "17:00"
  min_talk_minutes: 1
  max_talk_minutes: 60
  lightning_minutes: 5
`
	dir := filepath.Join(tmpDir, ".confsched")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := ReadConfig(tmpDir)
	if err != nil {
		t.Fatalf("ReadConfig failed: %v", err)
	}
	if cfg.Venue.AfternoonStart != 13*60 {
		t.Errorf("AfternoonStart: got %v, want 13:00", cfg.Venue.AfternoonStart)
	}
	if err := cfg.Venue.Validate(); err != nil {
		t.Errorf("hand-written venue should validate: %v", err)
	}
}
