package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/toddATavail/tumblesolve/internal/board"
	"github.com/toddATavail/tumblesolve/internal/boardfile"
	"github.com/toddATavail/tumblesolve/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryBoard string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent solve runs",
	Long: `Display recent solve runs from the history database.

Examples:
  tumblesolve history
  tumblesolve history --limit 50
  tumblesolve history --board boards/garden.board`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum records to show")
	historyCmd.Flags().StringVar(&flagHistoryBoard, "board", "", "Only runs of this board file")
}

func runHistory(_ *cobra.Command, _ []string) {
	cfg := loadApp()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		logger.Fatal("cannot open history database", "error", err)
	}
	defer store.Close()

	var records []storage.SolveRecord
	if flagHistoryBoard != "" {
		bf, loadErr := boardfile.LoadFile(flagHistoryBoard)
		if loadErr != nil {
			logger.Fatal("cannot load board", "error", loadErr)
		}
		fp := board.NewGameState(bf.Props, bf.Board).Fingerprint()
		records, err = store.ByFingerprint(fp, flagHistoryLimit)
	} else {
		records, err = store.Recent(flagHistoryLimit)
	}
	if err != nil {
		logger.Fatal("cannot query history", "error", err)
	}

	if len(records) == 0 {
		fmt.Println("No solve runs recorded yet.")
		return
	}

	fmt.Println(renderHistoryTable(records))

	sum, err := store.Summarize()
	if err == nil {
		fmt.Printf("total %d runs, %d solvable, avg %.0f nodes\n",
			sum.Total, sum.Solvable, sum.AvgNodes)
	}
}

// renderHistoryTable renders solve records as a static table.
func renderHistoryTable(records []storage.SolveRecord) string {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Board", Width: 16},
		{Title: "Size", Width: 7},
		{Title: "Stones", Width: 6},
		{Title: "Result", Width: 10},
		{Title: "Moves", Width: 5},
		{Title: "Nodes", Width: 9},
		{Title: "Time", Width: 9},
	}

	rows := make([]table.Row, len(records))
	for i, rec := range records {
		result := "solved"
		if !rec.Solvable {
			result = "unsolvable"
		}
		rows[i] = table.Row{
			rec.CreatedAt.Format("Jan 02 15:04"),
			rec.Name,
			fmt.Sprintf("%dx%d", rec.Width, rec.Height),
			fmt.Sprintf("%d", rec.Stones),
			result,
			fmt.Sprintf("%d", rec.Moves),
			fmt.Sprintf("%d", rec.Nodes),
			rec.Duration.String(),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
