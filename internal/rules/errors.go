package rules

import (
	"errors"
	"fmt"

	"github.com/toddATavail/tumblesolve/internal/board"
)

// ErrIllegalMove signals that a move the exposure engine would never
// have offered was asked for. Callers construct moves only from
// Exposed output, so hitting this is an internal invariant violation,
// not a user-facing condition.
var ErrIllegalMove = errors.New("rules: illegal move")

func illegalMove(target board.Coord, reason string) error {
	return fmt.Errorf("%w: target %s: %s", ErrIllegalMove, target, reason)
}
