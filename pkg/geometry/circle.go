package geometry

import (
	"fmt"
	"math"
)

// CircleFit represents the result of fitting a circle to points
type CircleFit struct {
	Center   Vector3 // Circle center in 3D
	Radius   float64 // Mean radial distance from the center
	Normal   Vector3 // Normal vector of the plane containing the circle
	StdDev   float64 // Standard deviation of the radii (quality measure)
	Variance float64 // StdDev squared
	Count    int     // Number of points used
}

// Relative returns StdDev as a fraction of Radius, or +Inf for a zero radius
func (c CircleFit) Relative() float64 {
	if c.Radius == 0 {
		return math.Inf(1)
	}
	return c.StdDev / c.Radius
}

// Basis returns two orthonormal vectors spanning the plane perpendicular to
// normal. For a canonical normal they are the other two canonical axes.
func Basis(normal Vector3) (Vector3, Vector3, error) {
	n := normal.Normalize()
	if n.IsZero() {
		return Vector3{}, Vector3{}, fmt.Errorf("zero normal has no perpendicular plane")
	}

	// Seed with the canonical axis least aligned with n
	ax, ay, az := math.Abs(n.X), math.Abs(n.Y), math.Abs(n.Z)
	seed := AxisX
	if ay < ax && ay <= az {
		seed = AxisY
	} else if az < ax && az < ay {
		seed = AxisZ
	}

	a := seed.Unit()
	u := a.Sub(n.Mul(a.Dot(n))).Normalize()
	v := n.Cross(u)
	return u, v, nil
}

// FitRadial fits a circle to points by projecting them onto the plane
// perpendicular to normal and averaging their distance from the projected
// centroid. Unlike a three-point fit it uses every point, so StdDev measures
// how round the whole set is.
func FitRadial(points []Vector3, normal Vector3) (*CircleFit, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points to fit a circle, got %d", len(points))
	}

	n := normal.Normalize()
	u, v, err := Basis(n)
	if err != nil {
		return nil, err
	}

	count := float64(len(points))
	var cu, cv, offset float64
	for _, p := range points {
		cu += p.Dot(u)
		cv += p.Dot(v)
		offset += p.Dot(n)
	}
	cu /= count
	cv /= count
	offset /= count

	radii := make([]float64, len(points))
	var sum float64
	for i, p := range points {
		du := p.Dot(u) - cu
		dv := p.Dot(v) - cv
		radii[i] = math.Sqrt(du*du + dv*dv)
		sum += radii[i]
	}
	mean := sum / count

	var sumSq float64
	for _, r := range radii {
		sumSq += (r - mean) * (r - mean)
	}
	variance := sumSq / count

	return &CircleFit{
		Center:   u.Mul(cu).Add(v.Mul(cv)).Add(n.Mul(offset)),
		Radius:   mean,
		Normal:   n,
		StdDev:   math.Sqrt(variance),
		Variance: variance,
		Count:    len(points),
	}, nil
}
