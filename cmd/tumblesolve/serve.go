package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/boardfile"
	"github.com/toddATavail/tumblesolve/internal/platform/tui"
	"github.com/toddATavail/tumblesolve/internal/solver"
)

var (
	flagServeAddr    string
	flagServeHostKey string
	flagServeBoard   string
	flagServeWorkers int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve interactive hint sessions over SSH",
	Long: `Start an SSH server replaying one solved board. The board is parsed
and solved once at startup; each connection steps through the shared
solution in its own session.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tumblesolve/host_key

Examples:
  tumblesolve serve --board boards/garden.board
  tumblesolve serve --board boards/garden.board --addr :2222

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "Listen address (default from config)")
	serveCmd.Flags().StringVar(&flagServeHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeBoard, "board", "", "Board file to serve (required)")
	serveCmd.Flags().IntVar(&flagServeWorkers, "workers", 0, "Search goroutines (0 = from config)")
	serveCmd.MarkFlagRequired("board")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadApp()

	bf, err := boardfile.LoadFile(flagServeBoard)
	if err != nil {
		logger.Fatal("cannot load board", "error", err)
	}
	state := board.NewGameState(bf.Props, bf.Board)

	workers := cfg.Solver.Workers
	if flagServeWorkers > 0 {
		workers = flagServeWorkers
	}

	logger.Info("solving", "board", bf.Name, "stones", bf.Board.StoneCount(), "workers", workers)
	res, err := solver.Solve(context.Background(), state, solver.Options{Workers: workers})
	if errors.Is(err, solver.ErrUnsolvable) {
		fmt.Println("No solution exists; nothing to serve.")
		os.Exit(1)
	}
	if err != nil {
		logger.Fatal("solve aborted", "error", err)
	}

	serveCfg := tui.ServerConfig{
		Address:     cfg.Serve.Address,
		HostKeyPath: cfg.Serve.HostKeyPath,
		IdleTimeout: time.Duration(cfg.Serve.IdleTimeoutMinutes) * time.Minute,
	}
	if flagServeAddr != "" {
		serveCfg.Address = flagServeAddr
	}
	if flagServeHostKey != "" {
		serveCfg.HostKeyPath = flagServeHostKey
	}

	server, err := tui.NewServer(serveCfg, bf.Name, state, res.Moves, res.Stats)
	if err != nil {
		logger.Fatal("cannot create server", "error", err)
	}
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server error", "error", err)
	}
}
