package boardfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/toddATavail/tumblesolve/internal/boardfile"
)

func writeBoard(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const validBoard = "width: 2\n---\nr r\n"

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeBoard(t, dir, "garden.board", validBoard)

	bf, err := boardfile.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if bf.Name != "garden" {
		t.Errorf("Name = %q, want %q", bf.Name, "garden")
	}
	if bf.Path != path || bf.Board.W != 2 {
		t.Errorf("loaded %+v, want path %s and width 2", bf, path)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := boardfile.LoadFile(filepath.Join(t.TempDir(), "nope.board")); err == nil {
		t.Error("LoadFile accepted a missing file")
	}
}

func TestLoadDirSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeBoard(t, dir, "b.board", validBoard)
	writeBoard(t, dir, "a.board", validBoard)
	writeBoard(t, dir, "notes.txt", "not a board")

	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeBoard(t, sub, "c.board", validBoard)

	boards, err := boardfile.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir returned error: %v", err)
	}
	var names []string
	for _, bf := range boards {
		names = append(names, bf.Name)
	}
	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("loaded %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("loaded %v, want %v", names, want)
		}
	}
}

func TestLoadDirFailsOnBadBoard(t *testing.T) {
	dir := t.TempDir()
	writeBoard(t, dir, "good.board", validBoard)
	writeBoard(t, dir, "bad.board", "width: 2\nr r\n")

	if _, err := boardfile.LoadDir(dir); err == nil {
		t.Error("LoadDir accepted a directory with an invalid board")
	}
}
