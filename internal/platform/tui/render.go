package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/rules"
)

// RenderBoard renders a game state as styled text, one row per line.
// Cells in highlight are drawn with the theme's highlight style; toggles
// are drawn O when passable on the state's turn and X when not.
func RenderBoard(s *board.GameState, highlight map[board.Coord]bool, theme Theme, showCoords bool) string {
	var sb strings.Builder

	if showCoords {
		sb.WriteString(theme.Coordinate.Render("   "))
		for x := 0; x < s.Board.W; x++ {
			sb.WriteString(theme.Coordinate.Render(fmt.Sprintf("%-2d", x%10)))
		}
		sb.WriteByte('\n')
	}

	for y := 0; y < s.Board.H; y++ {
		if showCoords {
			sb.WriteString(theme.Coordinate.Render(fmt.Sprintf("%2d ", y%100)))
		}
		for x := 0; x < s.Board.W; x++ {
			coord := board.C(x, y)
			glyph, style := cellLook(s, coord, theme)
			if highlight[coord] {
				style = style.Inherit(theme.Highlight)
			}
			sb.WriteString(style.Render(string(glyph) + " "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// cellLook picks the glyph and base style for one cell.
func cellLook(s *board.GameState, coord board.Coord, theme Theme) (rune, lipgloss.Style) {
	cell := s.Board.Get(coord)
	switch cell.Kind {
	case board.KindColored:
		return rune(cell.Color), theme.StoneStyle(cell.Color)
	case board.KindWild:
		return board.ReservedWild, theme.Banner
	case board.KindSurvivor:
		return board.ReservedSurvivor, theme.Survivor
	case board.KindToggleOpen, board.KindToggleClosed:
		if rules.TogglePassable(cell.Kind, s.Turn) {
			return 'O', theme.ToggleOpen
		}
		return 'X', theme.ToggleClosed
	default:
		return '.', theme.EmptyCell
	}
}

// HighlightSet builds the highlight map for a removal.
func HighlightSet(rem rules.Removal) map[board.Coord]bool {
	out := make(map[board.Coord]bool, len(rem.Cells))
	for _, c := range rem.Cells {
		out[c] = true
	}
	return out
}
