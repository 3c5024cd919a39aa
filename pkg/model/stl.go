package model

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/philipparndt/gomodelinfo/pkg/geometry"
)

// Binary STL layout
const (
	stlHeaderSize   = 80
	stlCountSize    = 4
	stlTriangleSize = 12*4 + 2
	stlDataOffset   = stlHeaderSize + stlCountSize
)

var errNonFinite = errors.New("coordinate is not finite")

// ParseBinarySTL decodes the vertices of a binary STL stream, three per
// triangle in file order. The declared triangle count is checked against
// the stream length before anything is allocated
func ParseBinarySTL(rs io.ReadSeeker) ([]geometry.Vector3, error) {
	return parseBinarySTL(rs, 0)
}

// LoadBinarySTL parses a binary STL stream into a Model
func LoadBinarySTL(rs io.ReadSeeker) (*Model, error) {
	vertices, err := ParseBinarySTL(rs)
	if err != nil {
		return nil, err
	}
	return New(FormatBinarySTL, vertices)
}

// parseBinarySTL rejects streams declaring more than maxTriangles
// triangles; zero disables the limit
func parseBinarySTL(rs io.ReadSeeker, maxTriangles uint32) ([]geometry.Vector3, error) {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine stream length: %w", err)
	}
	if size < stlDataOffset {
		return nil, &TruncatedInputError{Field: "header", Offset: 0, Need: stlDataOffset, Have: size}
	}

	// Skip the header
	if _, err := rs.Seek(stlHeaderSize, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek past header: %w", err)
	}
	cursor := NewCursor(bufio.NewReader(rs), stlHeaderSize)

	triangleCount, err := cursor.Uint32("triangle count")
	if err != nil {
		return nil, err
	}
	if triangleCount == 0 {
		return nil, ErrEmptyModel
	}

	need := int64(triangleCount) * stlTriangleSize
	if have := size - stlDataOffset; need > have {
		return nil, &TruncatedInputError{Field: "triangles", Offset: stlDataOffset, Need: need, Have: have}
	}
	if maxTriangles > 0 && triangleCount > maxTriangles {
		return nil, fmt.Errorf("%w: %d triangles declared, limit is %d", ErrTooLarge, triangleCount, maxTriangles)
	}

	vertices := make([]geometry.Vector3, 0, int(triangleCount)*3)
	for i := 0; i < int(triangleCount); i++ {
		triangle, err := readTriangle(cursor)
		if err != nil {
			return nil, err
		}
		for _, v := range triangle.Vertices() {
			if !v.IsFinite() {
				return nil, &MalformedRecordError{Record: i, Err: errNonFinite}
			}
			vertices = append(vertices, v)
		}
	}

	return vertices, nil
}

// readTriangle reads one 50 byte facet record. The attribute byte count is
// read and dropped
func readTriangle(c *Cursor) (geometry.Triangle, error) {
	var vectors [4]geometry.Vector3
	for i := range vectors {
		v, err := readVector(c)
		if err != nil {
			return geometry.Triangle{}, err
		}
		vectors[i] = v
	}

	if _, err := c.Uint16("attribute byte count"); err != nil {
		return geometry.Triangle{}, err
	}

	return geometry.NewTriangle(vectors[0], vectors[1], vectors[2], vectors[3]), nil
}

func readVector(c *Cursor) (geometry.Vector3, error) {
	var xyz [3]float64
	for i := range xyz {
		f, err := c.Float32("coordinate")
		if err != nil {
			return geometry.Vector3{}, err
		}
		xyz[i] = float64(f)
	}
	return geometry.NewVector3(xyz[0], xyz[1], xyz[2]), nil
}
