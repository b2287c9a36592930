package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/boardfile"
	"github.com/toddATavail/tumblesolve/internal/hint"
	"github.com/toddATavail/tumblesolve/internal/solver"
)

var (
	flagSolveWorkers   int
	flagSolveStats     bool
	flagSolveNoHistory bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <board-file>",
	Short: "Compute and print the full clearing sequence",
	Long: `Parse a board file, search for a clearing sequence, and print it
one move per line. Exits with status 1 when no solution exists.

Examples:
  tumblesolve solve boards/garden.board
  tumblesolve solve boards/garden.board --workers 4 --stats`,
	Args: cobra.ExactArgs(1),
	Run:  runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolveWorkers, "workers", 0, "Search goroutines (0 = from config)")
	solveCmd.Flags().BoolVar(&flagSolveStats, "stats", false, "Print search statistics")
	solveCmd.Flags().BoolVar(&flagSolveNoHistory, "no-history", false, "Do not record this run")
}

func runSolve(_ *cobra.Command, args []string) {
	cfg := loadApp()

	bf, err := boardfile.LoadFile(args[0])
	if err != nil {
		logger.Fatal("cannot load board", "error", err)
	}
	state := board.NewGameState(bf.Props, bf.Board)

	workers := cfg.Solver.Workers
	if flagSolveWorkers > 0 {
		workers = flagSolveWorkers
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	res, err := solver.Solve(ctx, state, solver.Options{Workers: workers})
	if err != nil && !errors.Is(err, solver.ErrUnsolvable) {
		logger.Fatal("solve aborted", "error", err)
	}
	solvable := err == nil

	if !flagSolveNoHistory {
		if store := openStore(cfg); store != nil {
			recordSolve(store, bf, state, res, solvable)
			store.Close()
		}
	}

	if !solvable {
		fmt.Println("No solution exists.")
		printStats(res)
		os.Exit(1)
	}

	if len(res.Moves) == 0 {
		fmt.Println("Board is already clear.")
		printStats(res)
		return
	}

	// Replaying through a hint session recovers each move's effective
	// color and removal count for display.
	session := hint.New(state, res.Moves)
	for {
		step, err := session.Advance()
		if errors.Is(err, hint.ErrSolutionComplete) {
			break
		}
		if err != nil {
			logger.Fatal("solution replay diverged", "error", err)
		}
		fmt.Printf("%3d. %-8s %s x%d\n",
			step.Index+1, step.Move, step.Removal.Color, len(step.Removal.Cells))
	}
	printStats(res)
}

func printStats(res solver.Result) {
	if flagSolveStats {
		fmt.Printf("searched %d nodes in %s\n", res.Stats.Nodes, res.Stats.Duration)
	}
}
