// Package clock provides the minute-of-day time representation shared by
// the venue configuration, the scheduling engine, and the renderers.
package clock

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Minutes is a time of day expressed as minutes since midnight.
type Minutes int

// Unset marks a session item that has not been placed yet.
const Unset Minutes = -1

// Parse converts an "HH:MM" string (24-hour) into Minutes.
func Parse(s string) (Minutes, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	min, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return Minutes(hour*60 + min), nil
}

// Hour returns the 24-hour component.
func (m Minutes) Hour() int { return int(m) / 60 }

// Minute returns the minute-within-hour component.
func (m Minutes) Minute() int { return int(m) % 60 }

// Add advances the time of day by d minutes.
func (m Minutes) Add(d int) Minutes { return m + Minutes(d) }

// String renders the 24-hour "HH:MM" form used in config files and logs.
func (m Minutes) String() string {
	if m == Unset {
		return "unset"
	}
	return fmt.Sprintf("%02d:%02d", m.Hour(), m.Minute())
}

// Clock12 renders the 12-hour "HH:MM AM/PM" display form.
func (m Minutes) Clock12() string {
	hour := m.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	suffix := "AM"
	if m.Hour() >= 12 {
		suffix = "PM"
	}
	return fmt.Sprintf("%02d:%02d %s", hour, m.Minute(), suffix)
}

// UnmarshalYAML parses "HH:MM" values so venue config files stay
// human-editable.
func (m *Minutes) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// MarshalYAML writes the "HH:MM" form back out.
func (m Minutes) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}
