package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/boardfile"
)

var checkCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate board files without solving",
	Long: `Parse one board file, or every *.board file under a directory, and
print its structure. Exits with status 1 on the first invalid board.

Examples:
  tumblesolve check boards/garden.board
  tumblesolve check boards/`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	path := args[0]
	info, err := os.Stat(path)
	if err != nil {
		logger.Fatal("cannot stat path", "error", err)
	}

	var boards []boardfile.BoardFile
	if info.IsDir() {
		boards, err = boardfile.LoadDir(path)
	} else {
		var bf boardfile.BoardFile
		bf, err = boardfile.LoadFile(path)
		boards = []boardfile.BoardFile{bf}
	}
	if err != nil {
		logger.Fatal("invalid board", "error", err)
	}

	for _, bf := range boards {
		fmt.Println(describeBoard(bf))
	}
	logger.Info("all boards valid", "count", len(boards))
}

// describeBoard renders a one-line structural summary of a board.
func describeBoard(bf boardfile.BoardFile) string {
	b := bf.Board
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %dx%d, %d stones", bf.Name, b.W, b.H, b.StoneCount())
	fmt.Fprintf(&sb, " (%d colored, %d wild, %d survivor, %d toggle)",
		b.CountKind(board.KindColored),
		b.CountKind(board.KindWild),
		b.CountKind(board.KindSurvivor),
		b.CountKind(board.KindToggleOpen)+b.CountKind(board.KindToggleClosed))

	colors := b.Colors()
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	fmt.Fprintf(&sb, ", colors [%s]", strings.Join(names, " "))

	if len(bf.Props.WildColors) > 0 {
		wild := make([]string, 0, len(bf.Props.WildColors))
		for _, c := range bf.Props.SortedWildColors() {
			wild = append(wild, c.String())
		}
		fmt.Fprintf(&sb, ", wild [%s]", strings.Join(wild, " "))
	}
	if bf.Props.ColorLock {
		sb.WriteString(", color-lock")
	}
	return sb.String()
}
