// Package rules implements the move mechanics: which cells are exposed,
// what a move removes, and how the state transitions. All functions are
// pure; the input state is never mutated.
package rules

import "github.com/toddATavail/tumblesolve/internal/board"

// The rules below that admit more than one defensible reading are kept
// in this file as single, swappable policy functions.

// MinMatchSize is the smallest removal set a legal move may produce.
// A stone with no adjacent same-row match is not directly removable.
const MinMatchSize = 2

// TogglePassable reports whether a toggle cell of kind k can be passed
// through on the given turn. An open-phase toggle is passable on even
// turns, a closed-phase toggle on odd turns; passability is periodic
// with period 2 in the turn counter.
func TogglePassable(k board.Kind, turn int) bool {
	phase := 0
	if k == board.KindToggleClosed {
		phase = 1
	}
	return (phase+turn)%2 == 0
}

// lockedAfterMove computes the locked color set after a move of the
// given effective color has been applied and cascaded. A move of any
// color releases all other locks; the played color locks iff its last
// ordinary stone just left the board. Wild stones never count as stones
// of the played color.
func lockedAfterMove(b *board.Board, played board.Color) []board.Color {
	if b.CountColored(played) == 0 {
		return []board.Color{played}
	}
	return nil
}
