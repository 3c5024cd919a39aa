package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/markdown"

	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/pkg/analysis"
)

// MarkdownWriter renders an overview table followed by one section per
// parsed model
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

func (w *MarkdownWriter) Write(results []*inspect.Result) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Model Inspection Report")
	md.PlainText("")

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "ok"
		format := "-"
		if r.OK() {
			format = r.Summary.Format
		} else {
			status = "failed"
		}
		rows = append(rows, []string{
			"`" + r.Path + "`",
			format,
			humanize.IBytes(uint64(max(r.Size, 0))),
			status,
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"File", "Format", "Size", "Status"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, r := range results {
		md.H2(r.Path)
		md.PlainText("")
		if !r.OK() {
			md.Warningf("Could not parse model: %v", r.Err)
			md.PlainText("")
			continue
		}
		writeSummary(md, r.Summary)
	}

	return md.Build()
}

func writeSummary(md *markdown.Markdown, s analysis.Summary) {
	counts := []string{"Vertices: " + strconv.Itoa(s.VertexCount)}
	if s.TriangleCount > 0 {
		counts = append(counts, "Triangles: "+strconv.Itoa(s.TriangleCount))
	}
	md.BulletList(counts...)
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Axis", "Min", "Max", "Centroid", "Extent"},
		Rows: [][]string{
			axisRow("X (width)", s.Min.X, s.Max.X, s.Average.X, s.Width),
			axisRow("Y (depth)", s.Min.Y, s.Max.Y, s.Average.Y, s.Depth),
			axisRow("Z (height)", s.Min.Z, s.Max.Z, s.Average.Z, s.Height),
		},
	})
	md.PlainText("")
	md.PlainTextf("Box center: %s", analysis.FormatVector(s.Center))
	md.PlainText("")
	md.PlainTextf("Diagonal: %s", analysis.FormatMeasurement(s.Diagonal, ""))
	md.PlainText("")
}

func axisRow(name string, lo, hi, avg, extent float64) []string {
	return []string{name, num(lo), num(hi), num(avg), num(extent)}
}

func num(f float64) string {
	return fmt.Sprintf("%.6f", f)
}
