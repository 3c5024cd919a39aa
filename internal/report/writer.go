// Package report renders inspection results for the terminal, for scripts
// (JSON) and for documentation (Markdown)
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/gomodelinfo/internal/inspect"
)

// Format selects a report writer
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Writer renders a set of inspection results
type Writer interface {
	Write(results []*inspect.Result) error
}

// ParseFormat validates a report format name
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("unknown report format %q (expected text, json or markdown)", s)
}

// NewWriter returns the writer for a format
func NewWriter(format Format, output io.Writer) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	}
	return nil, fmt.Errorf("unknown report format %q", format)
}
