package board

import "unicode"

// Color identifies a stone color. Any single non-whitespace rune is a
// valid color except the reserved board-file symbols.
type Color rune

// Reserved runes used by the board-file grammar for non-colored cells.
const (
	ReservedEmpty        = '_'
	ReservedSurvivor     = '#'
	ReservedWild         = '*'
	ReservedToggleOpen   = '/'
	ReservedToggleClosed = '+'
)

// ValidColor reports whether r can be used as a stone color.
func ValidColor(r rune) bool {
	if unicode.IsSpace(r) || r == 0 {
		return false
	}
	switch r {
	case ReservedEmpty, ReservedSurvivor, ReservedWild, ReservedToggleOpen, ReservedToggleClosed:
		return false
	}
	return true
}

// String returns the color as a one-rune string.
func (c Color) String() string {
	return string(rune(c))
}
