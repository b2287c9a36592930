package rules

import "github.com/toddATavail/tumblesolve/internal/board"

// Exposed returns the coordinates currently selectable as move targets,
// at most one per column, columns left to right. This is a pure query.
//
// Stones are reached from the bottom of each column. Scanning upward
// from the bottom row, empty cells and currently passable toggles are
// transparent; an impassable toggle is opaque and blocks everything
// above it. The first stone reached is the column's frontier cell; it
// is exposed iff it is colored or wild. A survivor frontier blocks its
// column without being selectable.
func Exposed(s *board.GameState) []board.Coord {
	var out []board.Coord
	for x := 0; x < s.Board.W; x++ {
		if c, ok := columnFrontier(s, x); ok {
			out = append(out, c)
		}
	}
	return out
}

// IsExposed reports whether target is currently selectable.
func IsExposed(s *board.GameState, target board.Coord) bool {
	if !s.Board.InBounds(target) {
		return false
	}
	c, ok := columnFrontier(s, target.X)
	return ok && c == target
}

// columnFrontier finds the exposed cell of column x, if any.
func columnFrontier(s *board.GameState, x int) (board.Coord, bool) {
	for y := s.Board.H - 1; y >= 0; y-- {
		coord := board.C(x, y)
		cell := s.Board.Get(coord)
		switch cell.Kind {
		case board.KindEmpty:
			continue
		case board.KindToggleOpen, board.KindToggleClosed:
			if TogglePassable(cell.Kind, s.Turn) {
				continue
			}
			return board.Coord{}, false
		case board.KindSurvivor:
			return board.Coord{}, false
		default:
			return coord, true
		}
	}
	return board.Coord{}, false
}
