package model

import (
	"errors"
	"fmt"
	"strings"
)

// Parse failure kinds. Use errors.Is to test for them; the structured
// error types below match the corresponding sentinel
var (
	// ErrEmptyModel is returned when the input parsed but contained no vertices
	ErrEmptyModel = errors.New("empty model")

	// ErrMalformedRecord is returned when a vertex record has too few numeric
	// fields or a field is not a finite number
	ErrMalformedRecord = errors.New("malformed vertex record")

	// ErrTruncatedInput is returned when a binary stream ends before a
	// declared field or record could be read
	ErrTruncatedInput = errors.New("truncated input")

	// ErrTooLarge is returned when a declared triangle count exceeds the
	// detector's allocation limit
	ErrTooLarge = errors.New("model exceeds size limit")

	// ErrUnrecognizedFormat is returned by Detect when no candidate parser
	// produced a non-empty model
	ErrUnrecognizedFormat = errors.New("unrecognized model format")
)

// MalformedRecordError describes a vertex record that could not be decoded.
// Record is the 1-based line number for text formats and the 0-based
// triangle index for binary STL
type MalformedRecordError struct {
	Record int
	Text   string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	msg := fmt.Sprintf("malformed vertex record %d", e.Record)
	if e.Text != "" {
		msg += fmt.Sprintf(" %q", e.Text)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

func (e *MalformedRecordError) Is(target error) bool { return target == ErrMalformedRecord }

// TruncatedInputError reports a short read of a binary field
type TruncatedInputError struct {
	Field  string
	Offset int64
	Need   int64
	Have   int64
}

func (e *TruncatedInputError) Error() string {
	return fmt.Sprintf("truncated input reading %s at offset %d: need %d bytes, have %d",
		e.Field, e.Offset, e.Need, e.Have)
}

func (e *TruncatedInputError) Is(target error) bool { return target == ErrTruncatedInput }

// Attempt records why one candidate parser was rejected during detection
type Attempt struct {
	Format Format
	Err    error
}

// UnrecognizedFormatError is returned by Detect after every candidate failed
type UnrecognizedFormatError struct {
	Hint     Hint
	Attempts []Attempt
}

func (e *UnrecognizedFormatError) Error() string {
	var b strings.Builder
	b.WriteString("could not parse model")
	if e.Hint != HintNone {
		fmt.Fprintf(&b, " (hint %q)", string(e.Hint))
	}
	for i, a := range e.Attempts {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %v", a.Format, a.Err)
	}
	return b.String()
}

func (e *UnrecognizedFormatError) Is(target error) bool { return target == ErrUnrecognizedFormat }

// isCandidateFailure reports whether err means "this parser does not fit the
// input" as opposed to a failure of the underlying stream
func isCandidateFailure(err error) bool {
	return errors.Is(err, ErrEmptyModel) ||
		errors.Is(err, ErrMalformedRecord) ||
		errors.Is(err, ErrTruncatedInput) ||
		errors.Is(err, ErrTooLarge)
}
