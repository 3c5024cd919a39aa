package model

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/philipparndt/gomodelinfo/pkg/geometry"
)

// binarySTL builds a binary STL file. Each facet holds the normal followed
// by three vertices
func binarySTL(header string, count uint32, facets ...[12]float32) []byte {
	var buf bytes.Buffer
	h := make([]byte, stlHeaderSize)
	copy(h, header)
	buf.Write(h)
	_ = binary.Write(&buf, binary.LittleEndian, count)
	for _, f := range facets {
		_ = binary.Write(&buf, binary.LittleEndian, f)
		_ = binary.Write(&buf, binary.LittleEndian, uint16(0))
	}
	return buf.Bytes()
}

func TestParseBinarySTL(t *testing.T) {
	data := binarySTL("", 1, [12]float32{
		0, 0, 1,
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})
	if len(data) != 134 {
		t.Fatalf("fixture size: expected 134 bytes, got %d", len(data))
	}

	vertices, err := ParseBinarySTL(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseBinarySTL failed: %v", err)
	}

	want := []geometry.Vector3{
		geometry.NewVector3(1, 2, 3),
		geometry.NewVector3(4, 5, 6),
		geometry.NewVector3(7, 8, 9),
	}
	if len(vertices) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(vertices))
	}
	for i := range want {
		if vertices[i] != want[i] {
			t.Errorf("vertex %d: expected %v, got %v", i, want[i], vertices[i])
		}
	}
}

func TestParseBinarySTLOrder(t *testing.T) {
	data := binarySTL("two", 2,
		[12]float32{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3},
		[12]float32{0, 0, 0, 4, 4, 4, 5, 5, 5, 6, 6, 6},
	)

	vertices, err := ParseBinarySTL(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseBinarySTL failed: %v", err)
	}
	if len(vertices) != 6 {
		t.Fatalf("expected 6 vertices, got %d", len(vertices))
	}
	for i, v := range vertices {
		want := float64(i + 1)
		if v != geometry.NewVector3(want, want, want) {
			t.Errorf("vertex %d: expected all components %v, got %v", i, want, v)
		}
	}
}

// Coordinates are IEEE-754 floats; decoding them as signed integers would
// turn 0.5 into 1056964608
func TestParseBinarySTLFractionalCoordinates(t *testing.T) {
	data := binarySTL("", 1, [12]float32{
		0, 0, 0,
		0.5, -0.25, 1e-3,
		-12.75, 100.125, 0,
		3.5, 3.5, -3.5,
	})

	vertices, err := ParseBinarySTL(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseBinarySTL failed: %v", err)
	}
	if vertices[0].X != 0.5 || vertices[0].Y != -0.25 {
		t.Errorf("expected (0.5, -0.25, ...), got %v", vertices[0])
	}
	if math.Abs(vertices[0].Z-1e-3) > 1e-7 {
		t.Errorf("expected z of 0.001, got %v", vertices[0].Z)
	}
	if vertices[1] != geometry.NewVector3(-12.75, 100.125, 0) {
		t.Errorf("unexpected second vertex %v", vertices[1])
	}
}

func TestParseBinarySTLEmpty(t *testing.T) {
	_, err := ParseBinarySTL(bytes.NewReader(binarySTL("", 0)))
	if !errors.Is(err, ErrEmptyModel) {
		t.Errorf("expected ErrEmptyModel, got %v", err)
	}
}

func TestParseBinarySTLTruncated(t *testing.T) {
	full := binarySTL("", 2,
		[12]float32{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3},
		[12]float32{0, 0, 0, 4, 4, 4, 5, 5, 5, 6, 6, 6},
	)

	tests := []struct {
		name  string
		data  []byte
		field string
	}{
		{"no data", nil, "header"},
		{"header only", full[:80], "header"},
		{"partial count", full[:82], "header"},
		{"missing last byte", full[:len(full)-1], "triangles"},
		{"missing second triangle", full[:84+50], "triangles"},
		{"declared count too large", binarySTL("", math.MaxUint32), "triangles"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBinarySTL(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrTruncatedInput) {
				t.Fatalf("expected ErrTruncatedInput, got %v", err)
			}
			var te *TruncatedInputError
			if errors.As(err, &te) && te.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, te.Field)
			}
		})
	}
}

func TestParseBinarySTLTrailingBytes(t *testing.T) {
	data := binarySTL("", 1, [12]float32{0, 0, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	data = append(data, []byte("trailing garbage")...)

	vertices, err := ParseBinarySTL(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ParseBinarySTL failed: %v", err)
	}
	if len(vertices) != 3 {
		t.Errorf("expected 3 vertices, got %d", len(vertices))
	}
}

func TestParseBinarySTLNonFinite(t *testing.T) {
	nan := float32(math.NaN())
	data := binarySTL("", 1, [12]float32{0, 0, 0, 1, 2, 3, nan, 5, 6, 7, 8, 9})

	_, err := ParseBinarySTL(bytes.NewReader(data))
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("expected ErrMalformedRecord, got %v", err)
	}
}

func TestParseBinarySTLNonFiniteNormalIgnored(t *testing.T) {
	nan := float32(math.NaN())
	data := binarySTL("", 1, [12]float32{nan, nan, nan, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	if _, err := ParseBinarySTL(bytes.NewReader(data)); err != nil {
		t.Errorf("normal vector must be discarded, got %v", err)
	}
}

func TestParseBinarySTLLimit(t *testing.T) {
	data := binarySTL("", 2,
		[12]float32{0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3},
		[12]float32{0, 0, 0, 4, 4, 4, 5, 5, 5, 6, 6, 6},
	)

	_, err := parseBinarySTL(bytes.NewReader(data), 1)
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("expected ErrTooLarge, got %v", err)
	}
	if _, err := parseBinarySTL(bytes.NewReader(data), 2); err != nil {
		t.Errorf("count equal to the limit must pass, got %v", err)
	}
}

func TestLoadBinarySTL(t *testing.T) {
	data := binarySTL("", 1, [12]float32{0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 4, 6})

	m, err := LoadBinarySTL(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("LoadBinarySTL failed: %v", err)
	}
	if m.Format() != FormatBinarySTL {
		t.Errorf("expected binary-stl, got %s", m.Format())
	}
	if m.Width() != 2 || m.Depth() != 4 || m.Height() != 6 {
		t.Errorf("expected extents 2 4 6, got %v %v %v", m.Width(), m.Depth(), m.Height())
	}
}
