package model

import (
	"fmt"
	"io"
	"log/slog"
)

// DefaultMaxTriangles bounds the allocation made for a binary STL file.
// Ten million triangles decode to 30 million vertices
const DefaultMaxTriangles = 10_000_000

// Detector selects a parser for a stream by trying the candidates allowed
// by a Hint in order. It holds no mutable state and may be shared between
// goroutines working on independent streams
type Detector struct {
	logger       *slog.Logger
	maxTriangles uint32
}

// Option configures a Detector
type Option func(*Detector)

// WithLogger sets the logger used to report rejected candidates at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(d *Detector) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithMaxTriangles limits the triangle count accepted from a binary STL
// file. Zero removes the limit; the stream length check still applies
func WithMaxTriangles(n uint32) Option {
	return func(d *Detector) {
		d.maxTriangles = n
	}
}

// NewDetector creates a Detector
func NewDetector(opts ...Option) *Detector {
	d := &Detector{
		logger:       slog.New(slog.DiscardHandler),
		maxTriangles: DefaultMaxTriangles,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

var defaultDetector = NewDetector()

// Detect parses rs with the default Detector
func Detect(rs io.ReadSeeker, hint Hint) (*Model, error) {
	return defaultDetector.Detect(rs, hint)
}

// Detect returns the model produced by the first candidate parser that
// succeeds. The stream is rewound before every attempt. Parse failures move
// on to the next candidate; read and seek errors are returned as is. When
// every candidate fails the error is an *UnrecognizedFormatError.
//
// A binary STL file can be misread as text if a line of its payload
// happens to look like a vertex record. ASCII parsing still runs first
func (d *Detector) Detect(rs io.ReadSeeker, hint Hint) (*Model, error) {
	var attempts []Attempt

	for _, format := range Candidates(hint) {
		if _, err := rs.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("failed to rewind stream: %w", err)
		}

		m, err := d.load(format, rs)
		if err == nil {
			d.logger.Debug("model parsed",
				"format", format.String(),
				"vertices", m.VertexCount(),
			)
			return m, nil
		}
		if !isCandidateFailure(err) {
			return nil, err
		}

		d.logger.Debug("candidate rejected",
			"format", format.String(),
			"hint", string(hint),
			"error", err,
		)
		attempts = append(attempts, Attempt{Format: format, Err: err})
	}

	return nil, &UnrecognizedFormatError{Hint: hint, Attempts: attempts}
}

func (d *Detector) load(format Format, rs io.ReadSeeker) (*Model, error) {
	switch format {
	case FormatOBJ:
		return LoadOBJ(rs)
	case FormatASCIISTL:
		return LoadASCIISTL(rs)
	case FormatBinarySTL:
		vertices, err := parseBinarySTL(rs, d.maxTriangles)
		if err != nil {
			return nil, err
		}
		return New(FormatBinarySTL, vertices)
	}
	return nil, fmt.Errorf("no parser for format %s", format)
}
