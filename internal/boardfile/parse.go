// Package boardfile parses the textual board description: a YAML
// properties block, a `---` delimiter, then one whitespace-tokenized
// line per row. This package depends on board but board does not
// depend on it.
package boardfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/toddATavail/tumblesolve/internal/board"
)

// ParseError describes a syntax defect in a board file.
type ParseError struct {
	Line    int // 1-based; 0 when no single line is at fault
	Message string
}

func (e ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("boardfile: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("boardfile: %s", e.Message)
}

// delimiter separates the properties block from the rows.
const delimiter = "---"

// fileProps is the YAML shape of the properties block.
type fileProps struct {
	Width      int      `yaml:"width"`
	WildColors []string `yaml:"wild_colors"`
	ColorLock  bool     `yaml:"color_lock"`
}

// Parse reads a board description. Syntax defects come back as
// ParseError; structural defects (row width, bad width) surface as
// board.ConfigError from the board constructor.
func Parse(r io.Reader) (board.Properties, *board.Board, error) {
	var (
		head      []string
		rows      [][]board.Cell
		rowStart  int
		seenDelim bool
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if !seenDelim {
			if strings.TrimSpace(text) == delimiter {
				seenDelim = true
				rowStart = line + 1
				continue
			}
			head = append(head, text)
			continue
		}
		cells, err := parseRow(text, line)
		if err != nil {
			return board.Properties{}, nil, err
		}
		rows = append(rows, cells)
	}
	if err := scanner.Err(); err != nil {
		return board.Properties{}, nil, fmt.Errorf("boardfile: cannot read input: %w", err)
	}
	if !seenDelim {
		return board.Properties{}, nil, ParseError{Message: "missing --- delimiter between properties and rows"}
	}

	// Trailing blank lines after the rows are tolerated; interior ones
	// are not, since a silently skipped row would shift the board.
	for len(rows) > 0 && rows[len(rows)-1] == nil {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		if row == nil {
			return board.Properties{}, nil, ParseError{Line: rowStart + i, Message: "blank line inside the rows section"}
		}
	}
	if len(rows) == 0 {
		return board.Properties{}, nil, ParseError{Message: "no rows after delimiter"}
	}

	props, err := parseProps(head)
	if err != nil {
		return board.Properties{}, nil, err
	}
	b, err := board.NewBoard(props.Width, rows)
	if err != nil {
		return board.Properties{}, nil, err
	}
	return props, b, nil
}

// parseProps unmarshals the properties block and validates it.
func parseProps(head []string) (board.Properties, error) {
	var fp fileProps
	if err := yaml.Unmarshal([]byte(strings.Join(head, "\n")), &fp); err != nil {
		return board.Properties{}, ParseError{Message: fmt.Sprintf("invalid properties block: %v", err)}
	}
	props := board.Properties{Width: fp.Width, ColorLock: fp.ColorLock}
	for _, s := range fp.WildColors {
		if utf8.RuneCountInString(s) != 1 {
			return board.Properties{}, ParseError{Message: fmt.Sprintf("wild color %q must be a single character", s)}
		}
		r, _ := utf8.DecodeRuneInString(s)
		props.WildColors = append(props.WildColors, board.Color(r))
	}
	if err := props.Validate(); err != nil {
		return board.Properties{}, err
	}
	return props, nil
}

// parseRow tokenizes one row line. Returns nil cells for a blank line.
func parseRow(text string, line int) ([]board.Cell, error) {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil, nil
	}
	cells := make([]board.Cell, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) != 1 {
			return nil, ParseError{Line: line, Message: fmt.Sprintf("cell token %q must be a single character", tok)}
		}
		r, _ := utf8.DecodeRuneInString(tok)
		cells = append(cells, cellForRune(r))
	}
	return cells, nil
}

// cellForRune maps a board-file symbol to a cell. Any rune that is not
// one of the five reserved symbols is a color.
func cellForRune(r rune) board.Cell {
	switch r {
	case board.ReservedEmpty:
		return board.EmptyCell()
	case board.ReservedSurvivor:
		return board.SurvivorCell()
	case board.ReservedWild:
		return board.WildCell()
	case board.ReservedToggleOpen:
		return board.ToggleOpenCell()
	case board.ReservedToggleClosed:
		return board.ToggleClosedCell()
	default:
		return board.ColoredCell(board.Color(r))
	}
}
