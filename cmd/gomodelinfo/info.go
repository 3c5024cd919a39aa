package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodelinfo/internal/catalog"
	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/internal/report"
)

var (
	infoHint   string
	infoFormat string
	infoSave   bool
)

var infoCmd = &cobra.Command{
	Use:   "info [file...]",
	Short: "Display the dimensions and statistics of model files",
	Long: `Parse one or more model files and show vertex count, bounding box, centroid
and width/depth/height. Files are inspected concurrently. The command fails if
any file could not be parsed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVar(&infoHint, "hint", "", "format hint for all files: obj or stl (default from file extension)")
	infoCmd.Flags().StringVarP(&infoFormat, "format", "f", string(report.FormatText), "output format: text, json or markdown")
	infoCmd.Flags().BoolVar(&infoSave, "save", false, "store successful results in the history database")
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(infoFormat)
	if err != nil {
		return err
	}
	in, err := newInspector(infoHint)
	if err != nil {
		return err
	}

	results, err := in.Batch(cmd.Context(), args, cfg.Workers)
	if err != nil {
		return err
	}

	w, err := report.NewWriter(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := w.Write(results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if infoSave {
		if err := saveResults(cmd.Context(), results); err != nil {
			return err
		}
	}

	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be parsed", failed, len(results))
	}
	return nil
}

func saveResults(ctx context.Context, results []*inspect.Result) error {
	db, err := catalog.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, r := range results {
		if !r.OK() {
			continue
		}
		id, err := db.Save(ctx, r)
		if err != nil {
			return err
		}
		logger.Debug("stored inspection", "path", r.Path, "id", id, "database", db.Path())
	}
	return nil
}
