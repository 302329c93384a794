package surface

import (
	"math"

	"github.com/philipparndt/gosurf/pkg/geometry"
)

// MeasurementResult relates two picked surfaces.
type MeasurementResult struct {
	Perpendicular float64          // distance from the second point to the first surface's plane
	Direct        float64          // point-to-point distance
	Projected     geometry.Vector3 // second point projected onto the first surface's plane
	Angle         float64          // degrees between the two normals, 0 if either is undefined

	First  Descriptor
	Second Descriptor
}

// Parallel reports whether the two surfaces face along the same line within
// toleranceDeg degrees.
func (r MeasurementResult) Parallel(toleranceDeg float64) bool {
	return r.Angle <= toleranceDeg || r.Angle >= 180-toleranceDeg
}

// Distance measures from the first descriptor's point and plane to the
// second descriptor's point.
func Distance(first, second Descriptor) MeasurementResult {
	n1 := first.Normal.Normalize()
	n2 := second.Normal.Normalize()
	delta := second.Point.Sub(first.Point)
	along := delta.Dot(n1)
	direct := delta.Length()

	var angle float64
	if !n1.IsZero() && !n2.IsZero() {
		cos := math.Max(-1, math.Min(1, n1.Dot(n2)))
		angle = math.Acos(cos) * 180 / math.Pi
	}

	return MeasurementResult{
		Perpendicular: math.Min(math.Abs(along), direct),
		Direct:        direct,
		Projected:     second.Point.Sub(n1.Mul(along)),
		Angle:         angle,
		First:         first,
		Second:        second,
	}
}
