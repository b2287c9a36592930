// Package hint replays a solved move sequence one step at a time
// against a live game state, for interactive presentation.
package hint

import (
	"errors"
	"fmt"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/rules"
)

// ErrSolutionComplete signals that every move of the solution has been
// replayed. It is a normal terminal signal, not an error condition.
var ErrSolutionComplete = errors.New("hint: solution complete")

// Step is the result of advancing the session by one move.
type Step struct {
	Index   int // Zero-based position of the move in the solution
	Move    board.Coord
	Removal rules.Removal
	Board   *board.Board // Independent snapshot after the move
	Turn    int
}

// Session owns a live replay of a precomputed solution. It never
// re-solves; every advance applies the next move through the rules
// engine. Not safe for concurrent use.
type Session struct {
	initial *board.GameState
	state   *board.GameState
	moves   []board.Coord
	cursor  int
}

// New creates a session over the initial state and the solver's moves.
// The state is cloned; the caller's copy stays untouched.
func New(initial *board.GameState, moves []board.Coord) *Session {
	return &Session{
		initial: initial.Clone(),
		state:   initial.Clone(),
		moves:   moves,
	}
}

// Advance applies the next move of the solution and returns it together
// with a snapshot of the resulting board. Once the solution is
// exhausted it returns ErrSolutionComplete. An illegal move during
// replay means the solution and the rules disagree; that is a defect,
// reported as a wrapped rules error.
func (s *Session) Advance() (Step, error) {
	if s.cursor >= len(s.moves) {
		return Step{}, ErrSolutionComplete
	}
	move := s.moves[s.cursor]
	next, rem, err := rules.Apply(s.state, move)
	if err != nil {
		return Step{}, fmt.Errorf("hint: replay of move %d diverged from rules: %w", s.cursor, err)
	}
	s.state = next
	step := Step{
		Index:   s.cursor,
		Move:    move,
		Removal: rem,
		Board:   next.Board.Clone(),
		Turn:    next.Turn,
	}
	s.cursor++
	return step, nil
}

// Peek resolves the next move without advancing, so a caller can
// highlight what the upcoming hint will remove. Returns
// ErrSolutionComplete when no moves remain.
func (s *Session) Peek() (rules.Removal, error) {
	if s.cursor >= len(s.moves) {
		return rules.Removal{}, ErrSolutionComplete
	}
	rem, err := rules.Resolve(s.state, s.moves[s.cursor])
	if err != nil {
		return rules.Removal{}, fmt.Errorf("hint: replay of move %d diverged from rules: %w", s.cursor, err)
	}
	return rem, nil
}

// Restart rewinds the session to the initial state.
func (s *Session) Restart() {
	s.state = s.initial.Clone()
	s.cursor = 0
}

// State returns the live state. Callers must treat it as read-only.
func (s *Session) State() *board.GameState {
	return s.state
}

// Cursor returns how many moves have been applied.
func (s *Session) Cursor() int {
	return s.cursor
}

// Total returns the number of moves in the solution.
func (s *Session) Total() int {
	return len(s.moves)
}

// Done reports whether the whole solution has been replayed.
func (s *Session) Done() bool {
	return s.cursor >= len(s.moves)
}
