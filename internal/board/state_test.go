package board_test

import (
	"testing"

	"github.com/toddATavail/tumblesolve/internal/board"
)

func mustBoard(t *testing.T, width int, rows [][]board.Cell) *board.Board {
	t.Helper()
	b, err := board.NewBoard(width, rows)
	if err != nil {
		t.Fatalf("NewBoard returned error: %v", err)
	}
	return b
}

func TestNewGameStateNormalizes(t *testing.T) {
	// A board holding only toggles and survivors is trivially clear;
	// the initial state must already reflect that.
	b := mustBoard(t, 2, [][]board.Cell{
		{board.ToggleClosedCell(), board.SurvivorCell()},
	})
	s := board.NewGameState(board.Properties{Width: 2}, b)
	if !s.IsCleared() {
		t.Errorf("initial state not cleared:\n%s", s.Render())
	}
	if b.IsCleared() {
		t.Error("NewGameState cascaded the caller's board in place")
	}
}

func TestKeyEncodesTurnParityAndLocks(t *testing.T) {
	b := mustBoard(t, 2, [][]board.Cell{
		{board.ColoredCell('r'), board.ToggleOpenCell()},
	})
	s := board.NewGameState(board.Properties{Width: 2}, b)

	even := s.Key()
	odd := s.Clone()
	odd.Turn = 1
	if even == odd.Key() {
		t.Error("states differing in turn parity share a key")
	}
	wrapped := s.Clone()
	wrapped.Turn = 2
	if even != wrapped.Key() {
		t.Error("turn 0 and turn 2 should share a key (same toggle phase)")
	}

	locked := s.Clone()
	locked.SetLocked([]board.Color{'r'})
	if even == locked.Key() {
		t.Error("locked set is not part of the key")
	}
}

func TestKeyDistinguishesReservedGlyphs(t *testing.T) {
	// The key is an exact encoding: a wild stone and a colored stone can
	// never alias, because color runes exclude the reserved glyphs.
	a := board.NewGameState(board.Properties{Width: 2}, mustBoard(t, 2, [][]board.Cell{
		{board.WildCell(), board.ColoredCell('r')},
	}))
	b := board.NewGameState(board.Properties{Width: 2}, mustBoard(t, 2, [][]board.Cell{
		{board.ColoredCell('x'), board.ColoredCell('r')},
	}))
	if a.Key() == b.Key() {
		t.Error("distinct boards share a key")
	}
}

func TestFingerprintIgnoresTurnAndLocks(t *testing.T) {
	b := mustBoard(t, 2, [][]board.Cell{
		{board.ColoredCell('r'), board.ColoredCell('r')},
	})
	s := board.NewGameState(board.Properties{Width: 2}, b)

	moved := s.Clone()
	moved.Turn = 5
	moved.SetLocked([]board.Color{'r'})
	if s.Fingerprint() != moved.Fingerprint() {
		t.Error("fingerprint should depend on board contents only")
	}

	other := board.NewGameState(board.Properties{Width: 2}, mustBoard(t, 2, [][]board.Cell{
		{board.ColoredCell('g'), board.ColoredCell('g')},
	}))
	if s.Fingerprint() == other.Fingerprint() {
		t.Error("different boards produced the same fingerprint")
	}
}

func TestCloneStateIsIndependent(t *testing.T) {
	b := mustBoard(t, 2, [][]board.Cell{
		{board.ColoredCell('r'), board.ColoredCell('g')},
	})
	s := board.NewGameState(board.Properties{Width: 2, ColorLock: true}, b)
	s.SetLocked([]board.Color{'g'})

	clone := s.Clone()
	clone.Board.SetEmpty(board.C(0, 0))
	clone.SetLocked(nil)
	clone.Turn = 7

	if s.Board.Get(board.C(0, 0)).IsEmpty() {
		t.Error("clone shares the board with the original")
	}
	if !s.ColorLocked('g') {
		t.Error("clone shares the locked set with the original")
	}
	if s.Turn != 0 {
		t.Error("clone shares the turn counter with the original")
	}
}
