package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/internal/report"
	"github.com/philipparndt/gomodelinfo/pkg/watcher"
)

var (
	watchHint     string
	watchDebounce time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Re-inspect a model file every time it changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchHint, "hint", "", "format hint: obj or stl (default from file extension)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 500*time.Millisecond, "wait this long after the last write before re-inspecting")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := cmd.Context()

	in, err := newInspector(watchHint)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	w := report.NewTextWriter(cmd.OutOrStdout())
	show := func() {
		r, err := in.File(ctx, path)
		if err != nil {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		if err := w.Write([]*inspect.Result{r}); err != nil {
			logger.Error("failed to write report", "error", err)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	fw, err := watcher.New(watchDebounce, logger)
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(path); err != nil {
		return err
	}

	show()
	logger.Info("watching for changes", "path", path)

	err = fw.Run(ctx, func(string) { show() })
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
