package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/boardfile"
	"github.com/toddATavail/tumblesolve/internal/hint"
	"github.com/toddATavail/tumblesolve/internal/rules"
	"github.com/toddATavail/tumblesolve/internal/solver"
)

func testModel(t *testing.T) HintModel {
	t.Helper()
	props, b, err := boardfile.Parse(strings.NewReader(`
width: 2
---
r r
g g
`))
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	s := board.NewGameState(props, b)
	res, err := solver.Solve(context.Background(), s, solver.Options{})
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	return NewHintModel("test", hint.New(s, res.Moves), res.Stats, false)
}

func press(m HintModel, key tea.KeyMsg) HintModel {
	next, _ := m.Update(key)
	return next.(HintModel)
}

var enter = tea.KeyMsg{Type: tea.KeyEnter}

func TestModelAdvancesThroughSolution(t *testing.T) {
	m := testModel(t)

	m = press(m, enter)
	if m.session.Cursor() != 1 {
		t.Errorf("cursor after one advance = %d, want 1", m.session.Cursor())
	}

	m = press(m, enter)
	if !m.session.Done() {
		t.Error("session not done after replaying both moves")
	}
	if !strings.Contains(m.View(), "Board cleared") {
		t.Error("completed view does not show the completion banner")
	}

	// Advancing past the end is a no-op, not a failure.
	m = press(m, enter)
	if m.Err() != nil {
		t.Errorf("advance past end set error: %v", m.Err())
	}
}

func TestModelRestart(t *testing.T) {
	m := testModel(t)
	m = press(m, enter)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.session.Cursor() != 0 {
		t.Errorf("cursor after restart = %d, want 0", m.session.Cursor())
	}
	if m.lastStep != nil {
		t.Error("restart kept the previous step summary")
	}
}

func TestModelQuit(t *testing.T) {
	m := testModel(t)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key produced no command")
	}
	if !next.(HintModel).quitting {
		t.Error("quit key did not mark the model quitting")
	}
}

func TestModelSmallWindowNotice(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 10, Height: 4})
	if view := next.(HintModel).View(); !strings.Contains(view, "resize") {
		t.Errorf("small-window view = %q, want resize notice", view)
	}
}

func TestRenderBoardMarksToggleByTurn(t *testing.T) {
	props, b, err := boardfile.Parse(strings.NewReader(`
width: 2
---
r r
/ _
`))
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	s := board.NewGameState(props, b)
	theme := DefaultTheme()

	if view := RenderBoard(s, nil, theme, false); !strings.Contains(view, "O") {
		t.Errorf("open toggle not rendered as O on turn 0:\n%s", view)
	}
	odd := s.Clone()
	odd.Turn = 1
	if view := RenderBoard(odd, nil, theme, false); !strings.Contains(view, "X") {
		t.Errorf("closed toggle not rendered as X on turn 1:\n%s", view)
	}
}

func TestHighlightSet(t *testing.T) {
	rem := rules.Removal{Cells: []board.Coord{board.C(0, 0), board.C(1, 0)}}
	set := HighlightSet(rem)
	if len(set) != 2 || !set[board.C(0, 0)] || !set[board.C(1, 0)] {
		t.Errorf("HighlightSet = %v", set)
	}
}
