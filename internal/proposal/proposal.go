// Package proposal collects raw talk proposals and normalizes them into
// unscheduled session items ready for packing.
package proposal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Raw is a transient (title, duration spec) input pair. The duration spec
// is either "<n>min" (a bare "<n>" is also accepted) or "lightning".
type Raw struct {
	Title        string
	DurationSpec string
}

// Source supplies an ordered sequence of raw proposals. The engine does
// not care how they were gathered.
type Source interface {
	Proposals() ([]Raw, error)
}

// FileSource reads proposals from a text file, one per line. The last
// whitespace-separated field of each line is the duration spec; the rest
// is the title. Blank lines and lines starting with '#' are skipped.
type FileSource struct {
	Path string
}

// Proposals reads and parses the file.
func (s FileSource) Proposals() ([]Raw, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening proposals file: %w", err)
	}
	defer f.Close()

	raws, err := readProposals(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.Path, err)
	}
	return raws, nil
}

// SliceSource serves an in-memory proposal list.
type SliceSource []Raw

// Proposals returns the slice as-is.
func (s SliceSource) Proposals() ([]Raw, error) { return []Raw(s), nil }

func readProposals(r io.Reader) ([]Raw, error) {
	var raws []Raw
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		raw, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		raws = append(raws, raw)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return raws, nil
}

// ParseLine splits one proposal line into title and duration spec.
func ParseLine(line string) (Raw, error) {
	idx := strings.LastIndexFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t'
	})
	if idx < 0 {
		return Raw{}, fmt.Errorf("proposal %q has no duration", line)
	}
	title := strings.TrimSpace(line[:idx])
	spec := strings.TrimSpace(line[idx+1:])
	if title == "" {
		return Raw{}, fmt.Errorf("proposal %q has no title", line)
	}
	return Raw{Title: title, DurationSpec: spec}, nil
}
