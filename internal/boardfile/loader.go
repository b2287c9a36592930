package boardfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toddATavail/tumblesolve/internal/board"
)

// Extension is the file extension recognized by LoadDir.
const Extension = ".board"

// BoardFile is a parsed board together with where it came from.
type BoardFile struct {
	Name  string // Base file name without extension
	Path  string
	Props board.Properties
	Board *board.Board
}

// LoadFile parses a single board file.
func LoadFile(path string) (BoardFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return BoardFile{}, fmt.Errorf("boardfile: cannot open %s: %w", path, err)
	}
	defer f.Close()

	props, b, err := Parse(f)
	if err != nil {
		return BoardFile{}, fmt.Errorf("boardfile: %s: %w", path, err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return BoardFile{Name: name, Path: path, Props: props, Board: b}, nil
}

// LoadDir recursively loads every *.board file under root, sorted by
// path for deterministic ordering. Any file that fails to parse fails
// the whole load.
func LoadDir(root string) ([]BoardFile, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != Extension {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("boardfile: walking directory %s: %w", root, err)
	}
	sort.Strings(paths)

	boards := make([]BoardFile, 0, len(paths))
	for _, path := range paths {
		bf, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		boards = append(boards, bf)
	}
	return boards, nil
}
