package board

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// GameState bundles a board with the turn counter and the set of locked
// colors. States are value-like: every transition clones, nothing is
// shared mutably between owners.
type GameState struct {
	Board  *Board
	Props  Properties
	Turn   int
	Locked []Color // Sorted; empty unless Props.ColorLock
}

// NewGameState creates the turn-zero state for a validated board.
// The board is cloned and cascaded so that boards that are trivially
// clear under the cascade rules start cleared.
func NewGameState(props Properties, b *Board) *GameState {
	board := b.Clone()
	board.Cascade()
	return &GameState{Board: board, Props: props}
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	locked := make([]Color, len(s.Locked))
	copy(locked, s.Locked)
	return &GameState{
		Board:  s.Board.Clone(),
		Props:  s.Props,
		Turn:   s.Turn,
		Locked: locked,
	}
}

// IsCleared returns true if the board holds no stones.
func (s *GameState) IsCleared() bool {
	return s.Board.IsCleared()
}

// ColorLocked reports whether c is currently locked.
func (s *GameState) ColorLocked(c Color) bool {
	for _, l := range s.Locked {
		if l == c {
			return true
		}
	}
	return false
}

// SetLocked replaces the locked set, kept sorted.
func (s *GameState) SetLocked(colors []Color) {
	locked := make([]Color, len(colors))
	copy(locked, colors)
	sort.Slice(locked, func(i, j int) bool { return locked[i] < locked[j] })
	s.Locked = locked
}

// Key returns the canonical encoding of the state, used as the visited
// cache key. Two states with the same key behave identically from here
// on: same cells, same turn parity (toggle phase), same locked set.
// The encoding is exact, not a hash; the reserved cell glyphs cannot
// collide with color runes.
func (s *GameState) Key() string {
	var sb strings.Builder
	sb.Grow(len(s.Board.Cells) + len(s.Locked) + 4)
	for _, cell := range s.Board.Cells {
		sb.WriteRune(cell.Glyph())
	}
	sb.WriteByte(';')
	sb.WriteByte(byte('0' + s.Turn%2))
	for _, c := range s.Locked {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}

// Fingerprint returns a 64-bit hash of the board contents and dimensions,
// independent of turn and lock state. It identifies an initial board in
// the solve-history store, where a collision is harmless.
func (s *GameState) Fingerprint() uint64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%dx%d:", s.Board.W, s.Board.H)
	for _, cell := range s.Board.Cells {
		fmt.Fprintf(h, "%c", cell.Glyph())
	}
	return h.Sum64()
}

// Render returns a plain-text picture of the board, one row per line,
// using the board-file glyphs. Used for debugging and test output.
func (s *GameState) Render() string {
	var sb strings.Builder
	for y := 0; y < s.Board.H; y++ {
		for x := 0; x < s.Board.W; x++ {
			sb.WriteRune(s.Board.Get(C(x, y)).Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
