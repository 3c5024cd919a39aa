package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/pkg/analysis"
)

// TextWriter prints a human readable block per file
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

func (w *TextWriter) Write(results []*inspect.Result) error {
	ew := &errWriter{w: w.output}

	for i, r := range results {
		if i > 0 {
			ew.printf("\n")
		}
		w.writeResult(ew, r)
	}

	return ew.err
}

func (w *TextWriter) writeResult(ew *errWriter, r *inspect.Result) {
	ew.printf("Model File Information\n")
	ew.printf("======================\n")
	ew.printf("File: %s\n", r.Path)
	ew.printf("Size: %s\n", humanize.IBytes(uint64(max(r.Size, 0))))

	if !r.OK() {
		ew.printf("Error: %v\n", r.Err)
		return
	}

	s := r.Summary
	ew.printf("Format: %s\n\n", s.Format)

	ew.printf("Model Statistics:\n")
	ew.printf("  Vertices: %d\n", s.VertexCount)
	if s.TriangleCount > 0 {
		ew.printf("  Triangles: %d\n", s.TriangleCount)
	}
	ew.printf("\n")

	ew.printf("Bounding Box:\n")
	ew.printf("  Min: %s\n", analysis.FormatVector(s.Min))
	ew.printf("  Max: %s\n", analysis.FormatVector(s.Max))
	ew.printf("  Center: %s\n", analysis.FormatVector(s.Center))
	ew.printf("  Centroid: %s\n\n", analysis.FormatVector(s.Average))

	ew.printf("Dimensions:\n")
	ew.printf("  Width (X): %s\n", analysis.FormatMeasurement(s.Width, ""))
	ew.printf("  Depth (Y): %s\n", analysis.FormatMeasurement(s.Depth, ""))
	ew.printf("  Height (Z): %s\n", analysis.FormatMeasurement(s.Height, ""))
	ew.printf("  Diagonal: %s\n", analysis.FormatMeasurement(s.Diagonal, ""))
	ew.printf("  Box Volume: %s\n", analysis.FormatMeasurement(s.Volume, "cubic units"))
}

// errWriter keeps the first write error so the report code can stay linear
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
