// Package board holds the puzzle data model: cells, the grid, board
// properties, and the game state the rules and solver operate on.
// This package is UI-agnostic and deterministic.
package board

// Kind enumerates the cell variants.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindColored
	KindWild
	KindSurvivor
	KindToggleOpen
	KindToggleClosed
)

// String returns the string representation of a cell kind.
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindColored:
		return "colored"
	case KindWild:
		return "wild"
	case KindSurvivor:
		return "survivor"
	case KindToggleOpen:
		return "toggle-open"
	case KindToggleClosed:
		return "toggle-closed"
	default:
		return "unknown"
	}
}

// Cell represents a single cell in the grid.
type Cell struct {
	Kind  Kind
	Color Color // Valid only when Kind is KindColored
}

// EmptyCell returns an empty cell.
func EmptyCell() Cell {
	return Cell{Kind: KindEmpty}
}

// ColoredCell returns an ordinary stone of the given color.
func ColoredCell(c Color) Cell {
	return Cell{Kind: KindColored, Color: c}
}

// WildCell returns a wild stone.
func WildCell() Cell {
	return Cell{Kind: KindWild}
}

// SurvivorCell returns a survivor stone.
func SurvivorCell() Cell {
	return Cell{Kind: KindSurvivor}
}

// ToggleOpenCell returns a toggle stone whose initial phase is open.
func ToggleOpenCell() Cell {
	return Cell{Kind: KindToggleOpen}
}

// ToggleClosedCell returns a toggle stone whose initial phase is closed.
func ToggleClosedCell() Cell {
	return Cell{Kind: KindToggleClosed}
}

// IsEmpty reports whether the cell holds no stone.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// IsToggle reports whether the cell is a toggle of either phase.
func (c Cell) IsToggle() bool {
	return c.Kind == KindToggleOpen || c.Kind == KindToggleClosed
}

// IsMatchable reports whether the cell can take part in a row match.
func (c Cell) IsMatchable() bool {
	return c.Kind == KindColored || c.Kind == KindWild
}

// Glyph returns a single-rune representation of the cell, using the same
// symbols as the board-file grammar. Used for rendering, canonical state
// keys, and test output.
func (c Cell) Glyph() rune {
	switch c.Kind {
	case KindColored:
		return rune(c.Color)
	case KindWild:
		return ReservedWild
	case KindSurvivor:
		return ReservedSurvivor
	case KindToggleOpen:
		return ReservedToggleOpen
	case KindToggleClosed:
		return ReservedToggleClosed
	default:
		return ReservedEmpty
	}
}
