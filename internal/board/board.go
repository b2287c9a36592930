package board

import (
	"fmt"
	"sort"
)

// Properties holds the board-wide settings of one puzzle.
// Immutable after load.
type Properties struct {
	Width      int
	WildColors []Color // Colors a wild stone is permitted to match
	ColorLock  bool    // Enables the color-lock constraint
}

// Validate checks the properties for structural defects.
func (p Properties) Validate() error {
	if p.Width <= 0 {
		return ConfigError{
			Code:    CodeNonPositiveWidth,
			Message: fmt.Sprintf("width must be positive, got %d", p.Width),
		}
	}
	for _, c := range p.WildColors {
		if !ValidColor(rune(c)) {
			return ConfigError{
				Code:    CodeInvalidColor,
				Message: fmt.Sprintf("wild color %q is not a valid color", rune(c)),
			}
		}
	}
	return nil
}

// IsWildColor reports whether c is in the wild color set.
func (p Properties) IsWildColor(c Color) bool {
	for _, w := range p.WildColors {
		if w == c {
			return true
		}
	}
	return false
}

// SortedWildColors returns the wild color set in ascending rune order.
func (p Properties) SortedWildColors() []Color {
	out := make([]Color, len(p.WildColors))
	copy(out, p.WildColors)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Board represents the puzzle grid as a rectangle of cells.
// Cells are stored in row-major order: index = y*W + x.
type Board struct {
	W     int
	H     int
	Cells []Cell // Flat array of cells, length W*H
}

// NewBoard builds a board from rows, validating the structure.
// Every row must have exactly width cells and every colored cell must
// carry a valid color.
func NewBoard(width int, rows [][]Cell) (*Board, error) {
	if width <= 0 {
		return nil, ConfigError{
			Code:    CodeNonPositiveWidth,
			Message: fmt.Sprintf("width must be positive, got %d", width),
		}
	}
	if len(rows) == 0 {
		return nil, ConfigError{
			Code:    CodeEmptyBoard,
			Message: "board has no rows",
		}
	}

	b := &Board{
		W:     width,
		H:     len(rows),
		Cells: make([]Cell, 0, width*len(rows)),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, ConfigError{
				Code:    CodeRowWidthMismatch,
				Message: fmt.Sprintf("row %d has %d cells, want %d", y, len(row), width),
			}
		}
		for x, cell := range row {
			if cell.Kind == KindColored && !ValidColor(rune(cell.Color)) {
				return nil, ConfigError{
					Code:    CodeInvalidColor,
					Message: fmt.Sprintf("cell %s has invalid color %q", C(x, y), rune(cell.Color)),
				}
			}
			b.Cells = append(b.Cells, cell)
		}
	}
	return b, nil
}

// index converts a coordinate to a flat array index.
func (b *Board) index(c Coord) int {
	return c.Y*b.W + c.X
}

// InBounds returns true if the coordinate is within the board.
func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.W && c.Y >= 0 && c.Y < b.H
}

// Get returns the cell at the given coordinate.
// Returns an empty cell if out of bounds.
func (b *Board) Get(c Coord) Cell {
	if !b.InBounds(c) {
		return EmptyCell()
	}
	return b.Cells[b.index(c)]
}

// Set sets the cell at the given coordinate.
func (b *Board) Set(c Coord, cell Cell) {
	if b.InBounds(c) {
		b.Cells[b.index(c)] = cell
	}
}

// SetEmpty clears the cell at the given coordinate.
func (b *Board) SetEmpty(c Coord) {
	b.Set(c, EmptyCell())
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{W: b.W, H: b.H, Cells: cells}
}

// StoneCount returns the number of non-empty cells.
func (b *Board) StoneCount() int {
	count := 0
	for _, cell := range b.Cells {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

// CountKind returns the number of cells of the given kind.
func (b *Board) CountKind(k Kind) int {
	count := 0
	for _, cell := range b.Cells {
		if cell.Kind == k {
			count++
		}
	}
	return count
}

// CountColored returns the number of ordinary stones of color c.
func (b *Board) CountColored(c Color) int {
	count := 0
	for _, cell := range b.Cells {
		if cell.Kind == KindColored && cell.Color == c {
			count++
		}
	}
	return count
}

// IsCleared returns true if every cell is empty.
func (b *Board) IsCleared() bool {
	return b.StoneCount() == 0
}

// Colors returns the distinct colors of ordinary stones on the board,
// in ascending rune order.
func (b *Board) Colors() []Color {
	seen := make(map[Color]bool)
	for _, cell := range b.Cells {
		if cell.Kind == KindColored {
			seen[cell.Color] = true
		}
	}
	out := make([]Color, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Equal returns true if two boards have the same dimensions and contents.
func (b *Board) Equal(other *Board) bool {
	if b.W != other.W || b.H != other.H {
		return false
	}
	for i, cell := range b.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// rowOnlySurvivors reports whether row y holds survivors and nothing else
// but empty cells.
func (b *Board) rowOnlySurvivors(y int) bool {
	hasSurvivor := false
	for x := 0; x < b.W; x++ {
		switch b.Get(C(x, y)).Kind {
		case KindEmpty:
		case KindSurvivor:
			hasSurvivor = true
		default:
			return false
		}
	}
	return hasSurvivor
}

// Cascade clears the board to its post-removal fixpoint:
//   - a row whose only remaining stones are survivors loses them;
//   - once no colored or wild stones remain anywhere, all toggles clear
//     (an obstruction with nothing left to obstruct), which may in turn
//     free more survivor rows.
//
// Repeats until stable. Mutates the board in place.
func (b *Board) Cascade() {
	for {
		changed := false
		for y := 0; y < b.H; y++ {
			if !b.rowOnlySurvivors(y) {
				continue
			}
			for x := 0; x < b.W; x++ {
				if b.Get(C(x, y)).Kind == KindSurvivor {
					b.SetEmpty(C(x, y))
					changed = true
				}
			}
		}
		if b.CountKind(KindColored) == 0 && b.CountKind(KindWild) == 0 {
			for i, cell := range b.Cells {
				if cell.IsToggle() {
					b.Cells[i] = EmptyCell()
					changed = true
				}
			}
		}
		if !changed {
			return
		}
	}
}
