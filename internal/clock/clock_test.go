package clock

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Minutes
	}{
		{"09:00", 540},
		{"9:30", 570},
		{"00:00", 0},
		{"23:59", 1439},
		{" 12:00 ", 720},
	}
	for _, c := range cases {
		got, err := Parse(c.in)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q): got %d, want %d", c.in, got, c.want)
		}
	}
}

func TestParseRejectsMalformedTimes(t *testing.T) {
	for _, in := range []string{"", "0900", "25:00", "12:60", "12:-1", "noon"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error, got none", in)
		}
	}
}

func TestClock12(t *testing.T) {
	cases := []struct {
		in   Minutes
		want string
	}{
		{0, "12:00 AM"},
		{540, "09:00 AM"},
		{665, "11:05 AM"},
		{720, "12:00 PM"},
		{780, "01:00 PM"},
		{1020, "05:00 PM"},
	}
	for _, c := range cases {
		if got := c.in.Clock12(); got != c.want {
			t.Errorf("Clock12(%d): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	type doc struct {
		Start Minutes `yaml:"start"`
	}

	var parsed doc
	if err := yaml.Unmarshal([]byte(`start: "16:45"`), &parsed); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if parsed.Start != 16*60+45 {
		t.Errorf("unmarshalled start: got %d, want %d", parsed.Start, 16*60+45)
	}

	out, err := yaml.Marshal(doc{Start: 540})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var back doc
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("re-unmarshal failed: %v", err)
	}
	if back.Start != 540 {
		t.Errorf("round trip: got %d, want 540", back.Start)
	}
}
