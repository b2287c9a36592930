// Package tui provides the interactive hint view and its SSH transport.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/hint"
	"github.com/toddATavail/tumblesolve/internal/solver"
)

// Minimum terminal size below which a resize notice replaces the board.
const (
	minViewWidth  = 24
	minViewHeight = 8
)

// HintModel is the Bubble Tea model replaying one solution.
type HintModel struct {
	session    *hint.Session
	boardName  string
	stats      solver.Stats
	keys       KeyMap
	help       help.Model
	theme      Theme
	showCoords bool
	width      int
	height     int
	lastStep   *hint.Step
	quitting   bool
	err        error
}

// NewHintModel creates a hint model over a prepared session.
func NewHintModel(boardName string, session *hint.Session, stats solver.Stats, showCoords bool) HintModel {
	h := help.New()
	h.ShowAll = false
	return HintModel{
		session:    session,
		boardName:  boardName,
		stats:      stats,
		keys:       DefaultKeyMap(),
		help:       h,
		theme:      DefaultTheme(),
		showCoords: showCoords,
	}
}

// Init initializes the model.
func (m HintModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m HintModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Advance):
			if m.session.Done() {
				return m, nil
			}
			step, err := m.session.Advance()
			if err != nil {
				// A replay divergence is a defect; abort the program.
				m.err = err
				m.quitting = true
				return m, tea.Quit
			}
			m.lastStep = &step
			return m, nil

		case key.Matches(msg, m.keys.Restart):
			m.session.Restart()
			m.lastStep = nil
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}
	return m, nil
}

// View renders the hint screen.
func (m HintModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width > 0 && (m.width < minViewWidth || m.height < minViewHeight) {
		return m.theme.Notice.Render("Terminal too small - please resize.")
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("tumblesolve - " + m.boardName))
	b.WriteString("\n\n")

	highlight := m.nextHighlight()
	b.WriteString(RenderBoard(m.session.State(), highlight, m.theme, m.showCoords))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")

	if m.session.Done() {
		banner := fmt.Sprintf("Board cleared in %d moves (%d nodes searched).",
			m.session.Total(), m.stats.Nodes)
		b.WriteString(m.theme.Banner.Render(banner))
		b.WriteString("\n")
	} else if m.lastStep != nil {
		b.WriteString(m.theme.StatusDim.Render(describeStep(*m.lastStep)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))
	return b.String()
}

// nextHighlight returns the cells the upcoming hint will remove.
func (m HintModel) nextHighlight() map[board.Coord]bool {
	rem, err := m.session.Peek()
	if err != nil {
		return nil
	}
	return HighlightSet(rem)
}

// statusLine summarizes the replay position.
func (m HintModel) statusLine() string {
	s := m.session.State()
	return m.theme.Status.Render(fmt.Sprintf("turn %d", s.Turn)) +
		m.theme.StatusDim.Render(" | ") +
		m.theme.Status.Render(fmt.Sprintf("move %d/%d", m.session.Cursor(), m.session.Total())) +
		m.theme.StatusDim.Render(" | ") +
		m.theme.Status.Render(fmt.Sprintf("%d stones left", s.Board.StoneCount()))
}

// describeStep renders the one-line summary of an applied move.
func describeStep(step hint.Step) string {
	return fmt.Sprintf("move %d: %s removed %d cells as %s",
		step.Index+1, step.Move, len(step.Removal.Cells), step.Removal.Color)
}

// Err returns the defect that aborted the session, if any.
func (m HintModel) Err() error {
	return m.err
}

// Run drives the hint model in the local terminal.
func Run(model HintModel) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(HintModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
