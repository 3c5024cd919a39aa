package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gomodelinfo/pkg/geometry"
	"github.com/philipparndt/gomodelinfo/pkg/model"
)

// Summary contains the statistics of a parsed model that callers usually
// store or display
type Summary struct {
	Format        string           `json:"format"`
	VertexCount   int              `json:"vertices"`
	TriangleCount int              `json:"triangles,omitempty"`
	Min           geometry.Vector3 `json:"min"`
	Max           geometry.Vector3 `json:"max"`
	Average       geometry.Vector3 `json:"average"`
	Center        geometry.Vector3 `json:"center"`
	Width         float64          `json:"width"`
	Depth         float64          `json:"depth"`
	Height        float64          `json:"height"`
	Diagonal      float64          `json:"diagonal"`
	Volume        float64          `json:"box_volume"`
}

// Summarize collects the statistics of a model
func Summarize(m *model.Model) Summary {
	bbox := m.BoundingBox()
	s := Summary{
		Format:      m.Format().String(),
		VertexCount: m.VertexCount(),
		Min:         m.Min(),
		Max:         m.Max(),
		Average:     m.Average(),
		Center:      bbox.Center(),
		Width:       m.Width(),
		Depth:       m.Depth(),
		Height:      m.Height(),
		Diagonal:    bbox.Diagonal(),
		Volume:      bbox.Volume(),
	}

	// Only binary STL guarantees three vertices per facet
	if m.Format() == model.FormatBinarySTL {
		s.TriangleCount = m.VertexCount() / 3
	}

	return s
}

// Dimensions returns width, depth and height as a vector
func (s Summary) Dimensions() geometry.Vector3 {
	return geometry.NewVector3(s.Width, s.Depth, s.Height)
}

// LargestDimension returns the greatest of width, depth and height
func (s Summary) LargestDimension() float64 {
	return math.Max(s.Width, math.Max(s.Depth, s.Height))
}

// FitsWithin reports whether the model's box fits in a build volume of the
// given size without rotating it
func (s Summary) FitsWithin(limit geometry.Vector3) bool {
	volume := geometry.BoundingBox{Max: limit}
	return volume.Contains(s.Dimensions())
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
