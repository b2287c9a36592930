package rules_test

import (
	"errors"
	"testing"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/rules"
)

func TestResolveIllegalTargets(t *testing.T) {
	s := mustState(t, `
width: 3
---
r g _
r _ _
_ g #
`)
	tests := []struct {
		name   string
		target board.Coord
	}{
		{"out of bounds", board.C(5, 5)},
		{"empty cell", board.C(2, 0)},
		{"survivor cell", board.C(2, 2)},
		{"shadowed stone", board.C(0, 0)},
		{"isolated stone", board.C(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rules.Resolve(s, tt.target)
			if !errors.Is(err, rules.ErrIllegalMove) {
				t.Errorf("Resolve(%v) error = %v, want ErrIllegalMove", tt.target, err)
			}
		})
	}
}

func TestResolveRowMatchGrowsBothWays(t *testing.T) {
	s := mustState(t, `
width: 5
---
_ r r r _
_ _ _ _ _
`)
	rem, err := rules.Resolve(s, board.C(2, 0))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	want := []board.Coord{board.C(1, 0), board.C(2, 0), board.C(3, 0)}
	if !coordsEqual(rem.Cells, want) {
		t.Errorf("removal cells = %v, want %v", rem.Cells, want)
	}
	if rem.Color != 'r' {
		t.Errorf("removal color = %v, want r", rem.Color)
	}
}

func TestResolveMatchMembersNeedNotBeExposed(t *testing.T) {
	// (1,0) sits above g and is not itself exposed, but it still joins
	// the match anchored at the exposed (0,0).
	s := mustState(t, `
width: 2
---
r r
_ g
`)
	rem, err := rules.Resolve(s, board.C(0, 0))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if len(rem.Cells) != 2 {
		t.Errorf("removal removed %d cells, want 2", len(rem.Cells))
	}
}

func TestResolveWildPrefersLargestMatch(t *testing.T) {
	s := mustState(t, `
width: 5
wild_colors: [g, r]
---
g * r r _
`)
	rem, err := rules.Resolve(s, board.C(1, 0))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if rem.Color != 'r' || len(rem.Cells) != 3 {
		t.Errorf("wild resolved as %v over %d cells, want r over 3", rem.Color, len(rem.Cells))
	}
}

func TestResolveWildTieBreaksOnSmallestRune(t *testing.T) {
	s := mustState(t, `
width: 3
wild_colors: [r, g]
---
g * r
`)
	rem, err := rules.Resolve(s, board.C(1, 0))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if rem.Color != 'g' {
		t.Errorf("wild tie resolved as %v, want g", rem.Color)
	}
}

func TestResolveRejectsLockedColor(t *testing.T) {
	s := mustState(t, `
width: 2
color_lock: true
---
r r
`)
	s.SetLocked([]board.Color{'r'})
	if _, err := rules.Resolve(s, board.C(0, 0)); !errors.Is(err, rules.ErrIllegalMove) {
		t.Errorf("Resolve on locked color error = %v, want ErrIllegalMove", err)
	}
}

func TestResolveWildSkipsLockedColors(t *testing.T) {
	s := mustState(t, `
width: 5
wild_colors: [g, r]
color_lock: true
---
g * r r _
`)
	s.SetLocked([]board.Color{'r'})
	rem, err := rules.Resolve(s, board.C(1, 0))
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if rem.Color != 'g' {
		t.Errorf("wild resolved as %v with r locked, want g", rem.Color)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	s := mustState(t, `
width: 2
---
r r
`)
	before := s.Key()
	next, rem, err := rules.Apply(s, board.C(0, 0))
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if s.Key() != before {
		t.Error("Apply mutated the input state")
	}
	if next.Turn != s.Turn+1 {
		t.Errorf("successor turn = %d, want %d", next.Turn, s.Turn+1)
	}
	if len(rem.Cells) != 2 || !next.IsCleared() {
		t.Errorf("removal = %v, successor:\n%s", rem.Cells, next.Render())
	}
}

func TestApplyCascadesSurvivorRow(t *testing.T) {
	s := mustState(t, `
width: 3
---
# r r
`)
	next, _, err := rules.Apply(s, board.C(1, 0))
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !next.IsCleared() {
		t.Errorf("survivor row not cascaded:\n%s", next.Render())
	}
}

func TestApplyStrictlyShrinksBoard(t *testing.T) {
	s := mustState(t, `
width: 4
wild_colors: [g, r]
---
r r g g
g g * r
`)
	for _, target := range rules.Exposed(s) {
		next, rem, err := rules.Apply(s, target)
		if err != nil {
			t.Fatalf("Apply(%v) returned error: %v", target, err)
		}
		if next.Board.StoneCount() >= s.Board.StoneCount() {
			t.Errorf("move at %v (removing %v) did not shrink the board", target, rem.Cells)
		}
	}
}

func TestColorLockAfterExhaustion(t *testing.T) {
	s := mustState(t, `
width: 5
wild_colors: [g, r]
color_lock: true
---
r r _ * *
`)
	// Removing the last r stones locks r; the wild pair must then
	// resolve as g.
	next, _, err := rules.Apply(s, board.C(0, 0))
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !next.ColorLocked('r') {
		t.Error("exhausted color r is not locked")
	}

	rem, err := rules.Resolve(next, board.C(3, 0))
	if err != nil {
		t.Fatalf("Resolve on wild pair returned error: %v", err)
	}
	if rem.Color != 'g' {
		t.Errorf("wild resolved as %v, want g", rem.Color)
	}

	// A later move of another color releases the lock on r.
	last, _, err := rules.Apply(next, board.C(3, 0))
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if last.ColorLocked('r') {
		t.Error("lock on r survived a move of a different color")
	}
}

func TestColorLockKeepsAtMostOneColor(t *testing.T) {
	s := mustState(t, `
width: 4
color_lock: true
---
r r g g
`)
	next, _, err := rules.Apply(s, board.C(0, 0))
	if err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if !next.ColorLocked('r') || next.ColorLocked('g') {
		t.Errorf("locked set = %v, want exactly [r]", next.Locked)
	}
}
