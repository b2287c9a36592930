package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/boardfile"
	"github.com/toddATavail/tumblesolve/internal/hint"
	"github.com/toddATavail/tumblesolve/internal/platform/tui"
	"github.com/toddATavail/tumblesolve/internal/solver"
)

var flagHintWorkers int

var hintCmd = &cobra.Command{
	Use:   "hint <board-file>",
	Short: "Step through the solution interactively",
	Long: `Parse a board file, solve it, then replay the solution one move
per keypress in an interactive view. The next move's match is
highlighted before you confirm it.

Controls:
  Enter/Space  - Apply the next hint
  R            - Restart the replay
  ?            - Toggle help
  Q/Esc/Ctrl+C - Quit

Examples:
  tumblesolve hint boards/garden.board
  tumblesolve hint boards/garden.board --workers 4`,
	Args: cobra.ExactArgs(1),
	Run:  runHint,
}

func init() {
	hintCmd.Flags().IntVar(&flagHintWorkers, "workers", 0, "Search goroutines (0 = from config)")
}

func runHint(_ *cobra.Command, args []string) {
	cfg := loadApp()

	bf, err := boardfile.LoadFile(args[0])
	if err != nil {
		logger.Fatal("cannot load board", "error", err)
	}
	state := board.NewGameState(bf.Props, bf.Board)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		logger.Fatal("hint needs an interactive terminal; use 'tumblesolve solve' instead")
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < 2*bf.Board.W+4 || h < bf.Board.H+8) {
		logger.Warn("terminal may be too small for this board", "width", w, "height", h)
	}

	workers := cfg.Solver.Workers
	if flagHintWorkers > 0 {
		workers = flagHintWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("solving", "board", bf.Name, "stones", bf.Board.StoneCount(), "workers", workers)
	res, err := solver.Solve(ctx, state, solver.Options{Workers: workers})
	if err != nil && !errors.Is(err, solver.ErrUnsolvable) {
		logger.Fatal("solve aborted", "error", err)
	}
	solvable := err == nil

	if store := openStore(cfg); store != nil {
		recordSolve(store, bf, state, res, solvable)
		store.Close()
	}

	if !solvable {
		fmt.Println("No solution exists.")
		os.Exit(1)
	}

	session := hint.New(state, res.Moves)
	model := tui.NewHintModel(bf.Name, session, res.Stats, cfg.UI.ShowCoordinates)
	if err := tui.Run(model); err != nil {
		logger.Fatal("hint session failed", "error", err)
	}
}
