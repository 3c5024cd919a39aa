package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/gomodelinfo/pkg/geometry"
)

var errTooFewFields = errors.New("expected 3 coordinates")

// ParseOBJ reads the vertex records of a Wavefront OBJ stream. A line whose
// first character is 'v' is a vertex record, except for the texture, normal
// and parameter records (vt, vn, vp). All other lines are skipped
func ParseOBJ(r io.Reader) ([]geometry.Vector3, error) {
	return scanVertices(r, false)
}

// ParseASCIISTL reads the vertex lines of an ASCII STL stream with the same
// record rules as ParseOBJ, after stripping leading indentation
func ParseASCIISTL(r io.Reader) ([]geometry.Vector3, error) {
	return scanVertices(r, true)
}

// LoadOBJ parses an OBJ stream into a Model
func LoadOBJ(r io.Reader) (*Model, error) {
	vertices, err := ParseOBJ(r)
	if err != nil {
		return nil, err
	}
	return New(FormatOBJ, vertices)
}

// LoadASCIISTL parses an ASCII STL stream into a Model
func LoadASCIISTL(r io.Reader) (*Model, error) {
	vertices, err := ParseASCIISTL(r)
	if err != nil {
		return nil, err
	}
	return New(FormatASCIISTL, vertices)
}

// maxRecordLength bounds a single vertex record. Longer lines that are not
// vertex records are skipped without being buffered
const maxRecordLength = 64 * 1024

var errRecordTooLong = errors.New("vertex record too long")

func scanVertices(r io.Reader, trimIndent bool) ([]geometry.Vector3, error) {
	br := bufio.NewReader(r)
	var vertices []geometry.Vector3
	lineNo := 0

	for {
		line, overlong, err := readLine(br)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading vertex lines: %w", err)
		}
		lineNo++

		if trimIndent {
			line = strings.TrimLeft(line, " \t")
		}
		if !isVertexRecord(line) {
			continue
		}
		if overlong {
			return nil, &MalformedRecordError{Record: lineNo, Text: truncate(line, 64), Err: errRecordTooLong}
		}

		v, err := parseVertexLine(line)
		if err != nil {
			return nil, &MalformedRecordError{Record: lineNo, Text: truncate(line, 64), Err: err}
		}
		vertices = append(vertices, v)
	}

	if len(vertices) == 0 {
		return nil, ErrEmptyModel
	}
	return vertices, nil
}

// readLine returns the next line without its terminator. At most
// maxRecordLength bytes are kept; overlong reports that the rest was dropped.
// io.EOF is only returned once no bytes are left
func readLine(br *bufio.Reader) (string, bool, error) {
	var buf []byte
	overlong, read := false, false
	for {
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
		}
		if !overlong {
			if room := maxRecordLength - len(buf); len(chunk) > room {
				buf = append(buf, chunk[:room]...)
				overlong = true
			} else {
				buf = append(buf, chunk...)
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF) && read:
			return trimEOL(buf), overlong, nil
		case err != nil:
			return "", false, err
		}
		return trimEOL(buf), overlong, nil
	}
}

func trimEOL(b []byte) string {
	s := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(s, "\r")
}

func isVertexRecord(line string) bool {
	if line == "" || line[0] != 'v' {
		return false
	}
	if len(line) >= 2 {
		switch line[:2] {
		case "vt", "vn", "vp":
			if len(line) == 2 || line[2] == ' ' || line[2] == '\t' {
				return false
			}
		}
	}
	return true
}

// parseVertexLine parses the first three tokens after the record marker.
// Further tokens, such as the optional OBJ w weight, are ignored
func parseVertexLine(line string) (geometry.Vector3, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return geometry.Vector3{}, fmt.Errorf("%w, found %d", errTooFewFields, len(fields)-1)
	}

	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return geometry.Vector3{}, fmt.Errorf("coordinate %q is not finite", fields[i+1])
		}
		c[i] = f
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
