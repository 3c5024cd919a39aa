// Package inspect runs model detection on files from disk. It is the
// caller side of pkg/model: it opens files, bounds their size and records
// what was found
package inspect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/philipparndt/gomodelinfo/pkg/analysis"
	"github.com/philipparndt/gomodelinfo/pkg/model"
)

// ErrFileTooLarge is returned for files above the configured size limit
var ErrFileTooLarge = errors.New("file exceeds size limit")

// Result is the outcome of inspecting one file. Err is set when the file
// could not be read or parsed; Summary is only meaningful when Err is nil
type Result struct {
	Path        string           `json:"path"`
	Size        int64            `json:"size"`
	Hint        model.Hint       `json:"hint,omitempty"`
	Summary     analysis.Summary `json:"summary"`
	InspectedAt time.Time        `json:"inspected_at"`
	Err         error            `json:"-"`
}

// OK reports whether the file was parsed
func (r *Result) OK() bool {
	return r.Err == nil
}

// Inspector opens and parses model files
type Inspector struct {
	detector    *model.Detector
	logger      *slog.Logger
	maxFileSize int64
	hint        model.Hint
	now         func() time.Time
}

// Options configures an Inspector
type Options struct {
	// MaxFileSize rejects larger files before they are opened. Zero
	// disables the check
	MaxFileSize int64

	// MaxTriangles is passed to the detector
	MaxTriangles uint32

	// Hint overrides the hint derived from each file's extension
	Hint model.Hint

	Logger *slog.Logger
}

// New creates an Inspector
func New(opts Options) *Inspector {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Inspector{
		detector: model.NewDetector(
			model.WithLogger(logger),
			model.WithMaxTriangles(opts.MaxTriangles),
		),
		logger:      logger,
		maxFileSize: opts.MaxFileSize,
		hint:        opts.Hint,
		now:         time.Now,
	}
}

// File inspects a single file. Parse failures are returned in Result.Err;
// the error return is reserved for cancellation
func (in *Inspector) File(ctx context.Context, path string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{
		Path:        path,
		Hint:        in.hintFor(path),
		InspectedAt: in.now(),
	}

	m, size, err := in.parse(path, result.Hint)
	result.Size = size
	if err != nil {
		result.Err = err
		in.logger.Warn("inspection failed", "path", path, "error", err)
		return result, nil
	}

	result.Summary = analysis.Summarize(m)
	in.logger.Info("inspected model",
		"path", path,
		"format", result.Summary.Format,
		"vertices", result.Summary.VertexCount,
	)

	return result, nil
}

// Batch inspects files with at most workers running at once. Results are
// returned in the order of paths
func (in *Inspector) Batch(ctx context.Context, paths []string, workers int) ([]*Result, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]*Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		g.Go(func() error {
			r, err := in.File(ctx, path)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (in *Inspector) hintFor(path string) model.Hint {
	if in.hint != model.HintNone {
		return in.hint
	}
	return model.HintFromPath(path)
}

func (in *Inspector) parse(path string, hint model.Hint) (*model.Model, int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, 0, err
	}
	if info.IsDir() {
		return nil, 0, fmt.Errorf("%s is a directory", path)
	}
	size := info.Size()
	if in.maxFileSize > 0 && size > in.maxFileSize {
		return nil, size, fmt.Errorf("%w: %d bytes, limit is %d", ErrFileTooLarge, size, in.maxFileSize)
	}

	file, err := os.Open(path) //nolint:gosec // path chosen by the user
	if err != nil {
		return nil, size, err
	}
	defer file.Close()

	m, err := in.detector.Detect(file, hint)
	if err != nil {
		return nil, size, err
	}
	return m, size, nil
}
