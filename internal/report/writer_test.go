package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/philipparndt/gomodelinfo/internal/inspect"
	"github.com/philipparndt/gomodelinfo/pkg/analysis"
	"github.com/philipparndt/gomodelinfo/pkg/geometry"
)

func createTestResults() []*inspect.Result {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []*inspect.Result{
		{
			Path: "bracket.stl",
			Size: 2048,
			Summary: analysis.Summary{
				Format:        "binary-stl",
				VertexCount:   12,
				TriangleCount: 4,
				Min:           geometry.NewVector3(0, 0, 0),
				Max:           geometry.NewVector3(10, 20, 30),
				Average:       geometry.NewVector3(5, 10, 15),
				Width:         10,
				Depth:         20,
				Height:        30,
				Diagonal:      37.416574,
				Volume:        6000,
			},
			InspectedAt: at,
		},
		{
			Path:        "broken.obj",
			Size:        12,
			InspectedAt: at,
			Err:         errors.New("could not parse model"),
		},
	}
}

func TestTextWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewTextWriter(&buf).Write(createTestResults()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"File: bracket.stl",
		"Size: 2.0 KiB",
		"Format: binary-stl",
		"Triangles: 4",
		"Max: (10.000000, 20.000000, 30.000000)",
		"Height (Z): 30.000000 units",
		"File: broken.obj",
		"Error: could not parse model",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q\n%s", want, output)
		}
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewJSONWriter(&buf).Write(createTestResults()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(decoded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(decoded))
	}

	summary, ok := decoded[0]["summary"].(map[string]any)
	if !ok {
		t.Fatalf("expected summary object, got %v", decoded[0]["summary"])
	}
	if summary["height"] != float64(30) || summary["triangles"] != float64(4) {
		t.Errorf("unexpected summary %v", summary)
	}
	if _, present := decoded[0]["error"]; present {
		t.Error("successful result must not carry an error")
	}

	if decoded[1]["error"] != "could not parse model" {
		t.Errorf("expected error message, got %v", decoded[1]["error"])
	}
	if _, present := decoded[1]["summary"]; present {
		t.Error("failed result must not carry a summary")
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := NewMarkdownWriter(&buf).Write(createTestResults()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"# Model Inspection Report",
		"## bracket.stl",
		"binary-stl",
		"Vertices: 12",
		"30.000000",
		"## broken.obj",
		"could not parse model",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q\n%s", want, output)
		}
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := map[string]Format{
		"text":     FormatText,
		"JSON":     FormatJSON,
		"markdown": FormatMarkdown,
		"md":       FormatMarkdown,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestNewWriter(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{FormatText, FormatJSON, FormatMarkdown} {
		if _, err := NewWriter(f, &bytes.Buffer{}); err != nil {
			t.Errorf("NewWriter(%q) failed: %v", f, err)
		}
	}
	if _, err := NewWriter("pdf", &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown format")
	}
}
