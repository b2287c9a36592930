package rules_test

import (
	"strings"
	"testing"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/boardfile"
	"github.com/toddATavail/tumblesolve/internal/rules"
)

// mustState parses a board description into a turn-zero state.
func mustState(t *testing.T, src string) *board.GameState {
	t.Helper()
	props, b, err := boardfile.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse board: %v", err)
	}
	return board.NewGameState(props, b)
}

func coordsEqual(a, b []board.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExposedBottomFrontier(t *testing.T) {
	// Column 0: the lower stone shadows the upper one. Column 1: empty
	// cells below a stone are transparent. Column 2: fully empty.
	s := mustState(t, `
width: 3
---
r g _
r _ _
_ g _
`)
	want := []board.Coord{board.C(0, 1), board.C(1, 2)}
	if got := rules.Exposed(s); !coordsEqual(got, want) {
		t.Errorf("Exposed() = %v, want %v", got, want)
	}
	if rules.IsExposed(s, board.C(0, 0)) {
		t.Error("shadowed stone reported exposed")
	}
}

func TestSurvivorBlocksColumn(t *testing.T) {
	// The survivor shares its row with g, so the cascade leaves it alone.
	s := mustState(t, `
width: 2
---
r _
# g
`)
	if rules.IsExposed(s, board.C(0, 0)) {
		t.Error("stone above a survivor reported exposed")
	}
	if rules.IsExposed(s, board.C(0, 1)) {
		t.Error("survivor itself reported exposed")
	}
	if !rules.IsExposed(s, board.C(1, 1)) {
		t.Error("bottom-row stone not exposed")
	}
}

func TestToggleParity(t *testing.T) {
	tests := []struct {
		kind board.Kind
		turn int
		want bool
	}{
		{board.KindToggleOpen, 0, true},
		{board.KindToggleOpen, 1, false},
		{board.KindToggleClosed, 0, false},
		{board.KindToggleClosed, 1, true},
	}
	for _, tt := range tests {
		if got := rules.TogglePassable(tt.kind, tt.turn); got != tt.want {
			t.Errorf("TogglePassable(%v, %d) = %v, want %v", tt.kind, tt.turn, got, tt.want)
		}
	}
	// Period 2 in the turn counter.
	for turn := 0; turn < 6; turn++ {
		if rules.TogglePassable(board.KindToggleOpen, turn) != rules.TogglePassable(board.KindToggleOpen, turn+2) {
			t.Fatalf("passability not periodic at turn %d", turn)
		}
	}
}

func TestToggleGatesColumnByTurn(t *testing.T) {
	s := mustState(t, `
width: 2
---
r r
/ _
`)
	// Turn 0: the open toggle is passable, stone above is reachable.
	if !rules.IsExposed(s, board.C(0, 0)) {
		t.Error("stone above a passable toggle not exposed on turn 0")
	}

	// Turn 1: same toggle flips shut and blocks the column.
	odd := s.Clone()
	odd.Turn = 1
	if rules.IsExposed(odd, board.C(0, 0)) {
		t.Error("stone above an impassable toggle exposed on turn 1")
	}
	if rules.IsExposed(odd, board.C(0, 1)) {
		t.Error("toggle cell itself reported exposed")
	}
}

func TestExposedOnePerColumn(t *testing.T) {
	s := mustState(t, `
width: 4
---
r r g g
r r g g
`)
	exposed := rules.Exposed(s)
	if len(exposed) != 4 {
		t.Fatalf("Exposed() returned %d cells, want 4", len(exposed))
	}
	seen := make(map[int]bool)
	for _, c := range exposed {
		if seen[c.X] {
			t.Errorf("column %d exposed twice", c.X)
		}
		seen[c.X] = true
		if c.Y != 1 {
			t.Errorf("exposed cell %v is not the bottom stone of its column", c)
		}
	}
}
