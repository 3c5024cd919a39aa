package report

import (
	"encoding/json"
	"io"

	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/pkg/analysis"
)

// JSONWriter writes results as an indented JSON array
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

type jsonResult struct {
	*inspect.Result
	Summary *analysis.Summary `json:"summary,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func (w *JSONWriter) Write(results []*inspect.Result) error {
	out := make([]jsonResult, len(results))
	for i, r := range results {
		out[i] = jsonResult{Result: r}
		if r.OK() {
			s := r.Summary
			out[i].Summary = &s
		} else {
			out[i].Error = r.Err.Error()
		}
	}

	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
