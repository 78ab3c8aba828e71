// styled.go renders tracks with lipgloss styling for interactive terminals.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/confsched-dev/confsched/internal/schedule"
	"github.com/confsched-dev/confsched/internal/session"
)

// Color constants shared with the TUI.
const (
	primaryColor = "#7C3AED" // Purple
	accentColor  = "#10B981" // Green
	dimColor     = "#6B7280" // Gray
)

// Style variables for consistent schedule rendering.
var (
	// headerStyle renders the "Track N" header.
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(primaryColor)).
			Bold(true)

	// timeStyle renders the start-time column.
	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(accentColor))

	// fillerStyle renders lunch and networking lines dimmed.
	fillerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor))

	// lightningStyle marks lightning talks.
	lightningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(dimColor)).
			Italic(true)
)

// Styled renders each track like Text but with colored headers, times,
// and fillers.
type Styled struct{}

// Render writes the styled schedule.
func (Styled) Render(w io.Writer, tracks []*schedule.Track) error {
	for n, track := range tracks {
		if n > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Track %d", track.Number))); err != nil {
			return err
		}
		for _, it := range track.Sessions() {
			if _, err := fmt.Fprintln(w, StyledLine(it)); err != nil {
				return err
			}
		}
	}
	return nil
}

// StyledLine formats one session item as a styled schedule line. Shared
// with the TUI viewer.
func StyledLine(it *session.Item) string {
	line := timeStyle.Render(it.Start.Clock12()) + " => "
	switch it.Kind {
	case session.KindLunch, session.KindNetworking:
		return line + fillerStyle.Render(it.Description)
	case session.KindLightning:
		return line + it.Description + " " + lightningStyle.Render("(lightning)")
	default:
		return line + it.Description
	}
}
