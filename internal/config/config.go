// Package config handles reading and writing .confsched/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/confsched-dev/confsched/internal/clock"
	"github.com/confsched-dev/confsched/internal/proposal"
)

// Config is the top-level structure for .confsched/config.yaml.
type Config struct {
	Version int   `yaml:"version"`
	Venue   Venue `yaml:"venue"`
}

// Venue holds the time windows and duration rules the engine schedules
// against. It is passed into the engine as an immutable value rather than
// read from package-level state, so tests can vary venue parameters.
type Venue struct {
	MorningStart clock.Minutes `yaml:"morning_start"`
	LunchStart   clock.Minutes `yaml:"lunch_start"` // fixed morning end boundary
	LunchMinutes int           `yaml:"lunch_minutes"`

	AfternoonStart clock.Minutes `yaml:"afternoon_start"`
	// NetworkingEarliest and NetworkingLatest bound the networking slot:
	// packing first fills up to the earliest boundary, then lets a final
	// talk spill into the window, never past the latest boundary.
	NetworkingEarliest clock.Minutes `yaml:"networking_earliest"`
	NetworkingLatest   clock.Minutes `yaml:"networking_latest"`

	MinTalkMinutes   int `yaml:"min_talk_minutes"` // exclusive lower bound
	MaxTalkMinutes   int `yaml:"max_talk_minutes"`
	LightningMinutes int `yaml:"lightning_minutes"`
}

const configDir = ".confsched"
const configFile = "config.yaml"

// ReadConfig reads .confsched/config.yaml from the given project directory.
// dir is the project root (not .confsched/ itself).
// Returns an error if the file is not found or YAML is malformed.
func ReadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, configDir, configFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// WriteConfig writes cfg to .confsched/config.yaml in the given project
// directory. Creates the .confsched/ directory if it does not exist.
func WriteConfig(dir string, cfg *Config) error {
	dirPath := filepath.Join(dir, configDir)
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	path := filepath.Join(dirPath, configFile)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// DefaultConfig returns a Config populated with the standard conference
// day: talks from 09:00, lunch at noon, afternoon from 13:00, networking
// between 16:00 and 17:00.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Venue: Venue{
			MorningStart:       clock.Minutes(9 * 60),
			LunchStart:         clock.Minutes(12 * 60),
			LunchMinutes:       60,
			AfternoonStart:     clock.Minutes(13 * 60),
			NetworkingEarliest: clock.Minutes(16 * 60),
			NetworkingLatest:   clock.Minutes(17 * 60),
			MinTalkMinutes:     1,
			MaxTalkMinutes:     60,
			LightningMinutes:   5,
		},
	}
}

// Validate checks that the venue windows are ordered sanely.
func (v Venue) Validate() error {
	if v.MorningStart >= v.LunchStart {
		return fmt.Errorf("morning_start %s is not before lunch_start %s", v.MorningStart, v.LunchStart)
	}
	if v.LunchMinutes <= 0 {
		return fmt.Errorf("lunch_minutes must be positive, got %d", v.LunchMinutes)
	}
	if v.LunchStart.Add(v.LunchMinutes) > v.AfternoonStart {
		return fmt.Errorf("lunch ending %s overlaps afternoon_start %s", v.LunchStart.Add(v.LunchMinutes), v.AfternoonStart)
	}
	if v.AfternoonStart >= v.NetworkingEarliest {
		return fmt.Errorf("afternoon_start %s is not before networking_earliest %s", v.AfternoonStart, v.NetworkingEarliest)
	}
	if v.NetworkingEarliest >= v.NetworkingLatest {
		return fmt.Errorf("networking_earliest %s is not before networking_latest %s", v.NetworkingEarliest, v.NetworkingLatest)
	}
	if v.MinTalkMinutes < 0 || v.MaxTalkMinutes <= v.MinTalkMinutes {
		return fmt.Errorf("talk duration bounds (%d, %d] are empty", v.MinTalkMinutes, v.MaxTalkMinutes)
	}
	if v.LightningMinutes <= v.MinTalkMinutes || v.LightningMinutes > v.MaxTalkMinutes {
		return fmt.Errorf("lightning_minutes %d falls outside talk bounds (%d, %d]", v.LightningMinutes, v.MinTalkMinutes, v.MaxTalkMinutes)
	}
	return nil
}

// Limits returns the venue's duration rules in the normalizer's shape.
func (v Venue) Limits() proposal.Limits {
	return proposal.Limits{
		MinMinutes:       v.MinTalkMinutes,
		MaxMinutes:       v.MaxTalkMinutes,
		LightningMinutes: v.LightningMinutes,
	}
}
