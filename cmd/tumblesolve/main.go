// tumblesolve solves tile-matching puzzle boards and reveals the
// solution one hint at a time.
//
// Usage:
//
//	tumblesolve solve <board-file>   - Compute and print a clearing sequence
//	tumblesolve hint <board-file>    - Replay the solution interactively
//	tumblesolve check <path>         - Validate board files
//	tumblesolve history              - Show recent solve runs
//	tumblesolve serve                - Serve hint sessions over SSH
//
// Global flags:
//
//	--config <path>  - Path to a custom config YAML
//	--db <path>      - Path to the solve-history database
//	--quiet          - Only log errors
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/boardfile"
	"github.com/toddATavail/tumblesolve/internal/config"
	"github.com/toddATavail/tumblesolve/internal/solver"
	"github.com/toddATavail/tumblesolve/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagQuiet  bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "tumblesolve",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tumblesolve",
	Short: "Solve tile-matching puzzle boards, one hint at a time",
	Long: `tumblesolve reads a board file, proves it solvable (or not), and
reveals the clearing sequence move by move.

Available commands:
  solve    - Compute and print the full clearing sequence
  hint     - Step through the solution interactively
  check    - Validate board files without solving
  history  - Show recent solve runs
  serve    - Serve interactive hint sessions over SSH

Examples:
  tumblesolve solve boards/garden.board
  tumblesolve hint boards/garden.board
  tumblesolve check boards/
  tumblesolve history --limit 10
  tumblesolve serve --board boards/garden.board --addr :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagQuiet {
			logger.SetLevel(log.ErrorLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to solve-history database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "Only log errors")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(hintCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadApp loads the configuration, applying global flag overrides.
func loadApp() config.App {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg
}

// openStore opens the history store, degrading to a warning on failure.
// Solving still works without history.
func openStore(cfg config.App) *storage.Store {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return nil
	}
	return store
}

// recordSolve writes one run to the history store, best effort.
func recordSolve(store *storage.Store, bf boardfile.BoardFile, state *board.GameState, res solver.Result, solvable bool) {
	if store == nil {
		return
	}
	rec := storage.SolveRecord{
		Fingerprint: state.Fingerprint(),
		Name:        bf.Name,
		Width:       bf.Board.W,
		Height:      bf.Board.H,
		Stones:      bf.Board.StoneCount(),
		Solvable:    solvable,
		Moves:       len(res.Moves),
		Nodes:       res.Stats.Nodes,
		Duration:    res.Stats.Duration,
	}
	if _, err := store.SaveSolve(rec); err != nil {
		logger.Warn("could not record solve", "error", err)
	}
}
