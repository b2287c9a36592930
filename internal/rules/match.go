package rules

import "github.com/toddATavail/tumblesolve/internal/board"

// Removal describes the effect of one move: the chosen target, the
// effective color it matched as, and the full set of cells removed.
// Cells lie in the target's row, ordered left to right.
type Removal struct {
	Target board.Coord
	Color  board.Color
	Cells  []board.Coord
}

// Resolve computes the removal a move at target would produce, without
// applying it. It returns ErrIllegalMove if the target is not exposed,
// cannot match anything, would match fewer than MinMatchSize cells, or
// would play a locked color.
func Resolve(s *board.GameState, target board.Coord) (Removal, error) {
	if !s.Board.InBounds(target) {
		return Removal{}, illegalMove(target, "out of bounds")
	}
	cell := s.Board.Get(target)
	if !cell.IsMatchable() {
		return Removal{}, illegalMove(target, cell.Kind.String()+" cell is not selectable")
	}
	if !IsExposed(s, target) {
		return Removal{}, illegalMove(target, "cell is not exposed")
	}

	if cell.Kind == board.KindColored {
		if s.ColorLocked(cell.Color) {
			return Removal{}, illegalMove(target, "color "+cell.Color.String()+" is locked")
		}
		cells := rowMatch(s, target, cell.Color)
		if len(cells) < MinMatchSize {
			return Removal{}, illegalMove(target, "no adjacent match")
		}
		return Removal{Target: target, Color: cell.Color, Cells: cells}, nil
	}

	// Wild target: try every unlocked wild color, keep the one with the
	// largest removal set, ties broken by the smallest color rune.
	var best Removal
	for _, c := range s.Props.SortedWildColors() {
		if s.ColorLocked(c) {
			continue
		}
		cells := rowMatch(s, target, c)
		if len(cells) < MinMatchSize {
			continue
		}
		if len(cells) > len(best.Cells) {
			best = Removal{Target: target, Color: c, Cells: cells}
		}
	}
	if len(best.Cells) == 0 {
		return Removal{}, illegalMove(target, "wild stone has no viable color")
	}
	return best, nil
}

// rowMatch grows the match set outward from target within its row,
// through directly adjacent cells that match color c: ordinary stones
// match literally, wild stones match any color in the wild set. Match
// members need not themselves be exposed.
func rowMatch(s *board.GameState, target board.Coord, c board.Color) []board.Coord {
	if !cellMatches(s, s.Board.Get(target), c) {
		return nil
	}
	left := target.X
	for left > 0 && cellMatches(s, s.Board.Get(board.C(left-1, target.Y)), c) {
		left--
	}
	right := target.X
	for right < s.Board.W-1 && cellMatches(s, s.Board.Get(board.C(right+1, target.Y)), c) {
		right++
	}
	cells := make([]board.Coord, 0, right-left+1)
	for x := left; x <= right; x++ {
		cells = append(cells, board.C(x, target.Y))
	}
	return cells
}

func cellMatches(s *board.GameState, cell board.Cell, c board.Color) bool {
	switch cell.Kind {
	case board.KindColored:
		return cell.Color == c
	case board.KindWild:
		return s.Props.IsWildColor(c)
	default:
		return false
	}
}

// Apply resolves and applies a move, returning the successor state and
// the removal that produced it. The input state is not mutated; the
// returned state is a fresh value with the turn advanced by one.
func Apply(s *board.GameState, target board.Coord) (*board.GameState, Removal, error) {
	rem, err := Resolve(s, target)
	if err != nil {
		return nil, Removal{}, err
	}
	return ApplyRemoval(s, rem), rem, nil
}

// ApplyRemoval applies an already-resolved removal. Callers must pass a
// removal resolved against this exact state.
func ApplyRemoval(s *board.GameState, rem Removal) *board.GameState {
	next := s.Clone()
	for _, c := range rem.Cells {
		next.Board.SetEmpty(c)
	}
	next.Board.Cascade()
	if next.Props.ColorLock {
		next.SetLocked(lockedAfterMove(next.Board, rem.Color))
	}
	next.Turn++
	return next
}
