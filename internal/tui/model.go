package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/confsched-dev/confsched/internal/render"
	"github.com/confsched-dev/confsched/internal/schedule"
)

// Model is the viewer state: the finished track list, the selected track,
// and a viewport over its rendered timetable.
type Model struct {
	tracks   []*schedule.Track
	active   int
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewModel creates a viewer over the given tracks.
func NewModel(tracks []*schedule.Track) *Model {
	return &Model{
		tracks: tracks,
		// Default dimensions (updated on the first WindowSizeMsg).
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key presses and window resizes.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 6 // title, tabs, status bar, frame
		if contentHeight < 3 {
			contentHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(m.width-4, contentHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width - 4
			m.viewport.Height = contentHeight
		}
		m.viewport.SetContent(m.trackContent())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case KeyCtrlC, KeyQuit:
			return m, tea.Quit
		case KeyLeft, KeyH:
			if m.active > 0 {
				m.active--
				m.viewport.SetContent(m.trackContent())
				m.viewport.GotoTop()
			}
			return m, nil
		case KeyRight, KeyL:
			if m.active < len(m.tracks)-1 {
				m.active++
				m.viewport.SetContent(m.trackContent())
				m.viewport.GotoTop()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the title, track tabs, schedule viewport, and key hints.
func (m *Model) View() string {
	if !m.ready {
		return "Loading schedule..."
	}

	title := TitleStyle.Render("Conference Schedule")

	tabs := make([]string, len(m.tracks))
	for i, t := range m.tracks {
		label := fmt.Sprintf("Track %d", t.Number)
		if i == m.active {
			tabs[i] = ActiveTabStyle.Render(label)
		} else {
			tabs[i] = InactiveTabStyle.Render(label)
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	status := StatusBarStyle.Render("left/right: switch track  up/down: scroll  q: quit")

	return strings.Join([]string{
		title,
		tabBar,
		BoxStyle.Render(m.viewport.View()),
		status,
	}, "\n")
}

// trackContent renders the active track's timetable for the viewport.
func (m *Model) trackContent() string {
	if len(m.tracks) == 0 {
		return "No tracks."
	}
	var b strings.Builder
	for _, it := range m.tracks[m.active].Sessions() {
		b.WriteString(render.StyledLine(it))
		b.WriteByte('\n')
	}
	return b.String()
}
