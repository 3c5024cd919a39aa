package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodelinfo/internal/catalog"
	"github.com/philipparndt/gomodelinfo/pkg/analysis"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [file]",
	Short: "List stored inspections of a model file",
	Long:  "Show the results saved with 'info --save' for a file, newest first.",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of entries (0 for all)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := catalog.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.History(cmd.Context(), args[0], historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintf(out, "No stored inspections for %s\n", args[0])
		return nil
	}

	fmt.Fprintf(out, "History of %s\n", records[0].Path)
	for _, rec := range records {
		fmt.Fprintf(out, "%s  %-10s  %8d vertices  %s x %s x %s\n",
			rec.InspectedAt.Local().Format("2006-01-02 15:04:05"),
			rec.Format,
			rec.Vertices,
			analysis.FormatMeasurement(rec.Width, ""),
			analysis.FormatMeasurement(rec.Depth, ""),
			analysis.FormatMeasurement(rec.Height, ""),
		)
	}
	return nil
}
