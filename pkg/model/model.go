package model

import (
	"github.com/philipparndt/gomodelinfo/pkg/geometry"
)

// Model is a parsed 3D model together with its vertex statistics. It is
// only produced by a successful parse and never changes afterwards
type Model struct {
	format   Format
	vertices []geometry.Vector3
	bounds   geometry.BoundingBox
	average  geometry.Vector3
}

// New computes the statistics of a vertex sequence. The slice is retained
// and must not be modified by the caller afterwards
func New(format Format, vertices []geometry.Vector3) (*Model, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyModel
	}

	m := &Model{
		format:   format,
		vertices: vertices,
		bounds:   geometry.NewBoundingBox(),
	}

	// Each step is a weighted blend of the previous mean and v, so no
	// intermediate value exceeds the largest coordinate
	var mean geometry.Vector3
	for i, v := range vertices {
		m.bounds.Extend(v)
		n := float64(i + 1)
		mean = mean.Mul(float64(i) / n).Add(v.Mul(1 / n))
	}
	// Rounding may push the mean one ulp past the box
	m.average = mean.Clamp(m.bounds.Min, m.bounds.Max)

	return m, nil
}

// Format returns the parser that produced the model
func (m *Model) Format() Format {
	return m.format
}

// Vertices returns a copy of the vertices in file order
func (m *Model) Vertices() []geometry.Vector3 {
	out := make([]geometry.Vector3, len(m.vertices))
	copy(out, m.vertices)
	return out
}

// VertexCount returns the number of vertices read
func (m *Model) VertexCount() int {
	return len(m.vertices)
}

// Min returns the per-axis minimum coordinate
func (m *Model) Min() geometry.Vector3 {
	return m.bounds.Min
}

// Max returns the per-axis maximum coordinate
func (m *Model) Max() geometry.Vector3 {
	return m.bounds.Max
}

// Average returns the centroid, the per-axis mean of all vertices
func (m *Model) Average() geometry.Vector3 {
	return m.average
}

// BoundingBox returns the axis-aligned box spanned by Min and Max
func (m *Model) BoundingBox() geometry.BoundingBox {
	return m.bounds
}

// Width is the extent along the X axis
func (m *Model) Width() float64 {
	return m.bounds.Size().X
}

// Depth is the extent along the Y axis
func (m *Model) Depth() float64 {
	return m.bounds.Size().Y
}

// Height is the extent along the Z axis
func (m *Model) Height() float64 {
	return m.bounds.Size().Z
}
