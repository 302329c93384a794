package surface

import (
	"math"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

// axisAlignment is the cosine above which a fitted direction is reported as
// a canonical axis (about 1.15 degrees).
const axisAlignment = 0.9998

// planar aggregates a coplanar patch and tries to fit a circle to its
// boundary vertices.
func (a *Analyzer) planar(t *mesh.Table, faces []int, normal geometry.Vector3, scale float64) Descriptor {
	d, boundary := patchMetrics(t, faces, scale)
	if d.Centroid == nil {
		d.Kind = Freeform
		return d
	}
	d.Kind = Planar

	if len(boundary) <= a.cfg.Circle.MinBoundaryVertices {
		return d
	}
	points := make([]geometry.Vector3, len(boundary))
	for i, id := range boundary {
		points[i] = t.Position(id)
	}
	fit, err := geometry.FitRadial(points, normal)
	if err != nil {
		a.logger.Debug("circle fit failed", "error", err)
		return d
	}
	if fit.Radius/scale <= a.cfg.Circle.MinRadius || fit.StdDev >= a.cfg.Circle.MaxRelativeStdDev*fit.Radius {
		a.logger.Debug("boundary is not a circle",
			"radius", fit.Radius/scale, "relative_stddev", fit.Relative())
		return d
	}

	d.Kind = Circular
	applyFit(&d, fit, scale)
	return d
}

// curved describes the whole mesh and fits a cylinder to it.
func (a *Analyzer) curved(t *mesh.Table, scale float64) Descriptor {
	all := make([]int, t.Len())
	for i := range all {
		all[i] = i
	}
	d, _ := patchMetrics(t, all, scale)
	d.Kind = Freeform

	if fit := a.fitCylinder(t, scale); fit != nil {
		d.Kind = Cylindrical
		applyFit(&d, fit, scale)
	}
	return d
}

// fitCylinder tries each candidate axis and keeps the passing fit with the
// lowest radius variance. Earlier candidates win ties.
func (a *Analyzer) fitCylinder(t *mesh.Table, scale float64) *geometry.CircleFit {
	points := t.Positions()
	var best *geometry.CircleFit
	for _, axis := range a.axisCandidates(points) {
		if !a.lateral(t, axis) {
			a.logger.Debug("cylinder candidate rejected", "axis", axis, "reason", "faces not parallel to axis")
			continue
		}
		fit := a.fitBand(t, axis, scale)
		if fit != nil && (best == nil || fit.Variance < best.Variance) {
			best = fit
		}
	}
	return best
}

func (a *Analyzer) axisCandidates(points []geometry.Vector3) []geometry.Vector3 {
	candidates := []geometry.Vector3{geometry.AxisX.Unit(), geometry.AxisY.Unit(), geometry.AxisZ.Unit()}
	if !a.cfg.Cylinder.PrincipalAxis {
		return candidates
	}

	frame, err := geometry.PrincipalFrame(points)
	if err != nil {
		a.logger.Debug("no principal frame", "error", err)
		return candidates
	}
	axis := frame.RevolutionAxis()
	if _, aligned := geometry.AlignedAxis(axis, axisAlignment); aligned {
		return candidates
	}
	return append(candidates, axis)
}

// lateral reports whether the side faces run along axis: the area-weighted
// mean |cos| between their normals and axis is at most
// Cylinder.MaxAxialNormal. Faces facing along the axis are end caps and are
// left out.
func (a *Analyzer) lateral(t *mesh.Table, axis geometry.Vector3) bool {
	var area, tilt float64
	for _, f := range t.Faces() {
		if f.Degenerate() {
			continue
		}
		c := math.Abs(f.Normal.Dot(axis))
		if c > a.cfg.CoplanarCosine {
			continue
		}
		area += f.Area
		tilt += f.Area * c
	}
	if !(area > 0) {
		return false
	}
	return tilt/area <= a.cfg.Cylinder.MaxAxialNormal
}

// fitBand fits a circle to the vertices in the band around the middle of the
// extent along axis. A band with fewer than 3 vertices, as on a wall
// tessellated with only its two end rings, is sampled where the mesh edges
// cross the mid-plane instead. It returns nil when the band is not round
// enough.
func (a *Analyzer) fitBand(t *mesh.Table, axis geometry.Vector3, scale float64) *geometry.CircleFit {
	points := t.Positions()
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		s := p.Dot(axis)
		lo = min(lo, s)
		hi = max(hi, s)
	}
	extent := hi - lo
	if !(extent > 0) {
		return nil
	}

	mid := (lo + hi) / 2
	half := a.cfg.Cylinder.BandFraction * extent
	var band []geometry.Vector3
	for _, p := range points {
		if math.Abs(p.Dot(axis)-mid) <= half {
			band = append(band, p)
		}
	}
	if len(band) < 3 {
		band = midSection(t, axis, mid)
	}

	fit, err := geometry.FitRadial(band, axis)
	if err != nil {
		return nil
	}
	if fit.Radius/scale <= a.cfg.Cylinder.MinRadius || fit.StdDev >= a.cfg.Cylinder.MaxRelativeStdDev*fit.Radius {
		a.logger.Debug("cylinder candidate rejected",
			"axis", axis, "radius", fit.Radius/scale, "relative_stddev", fit.Relative())
		return nil
	}
	return fit
}

// midSection returns the points where welded mesh edges cross the plane
// dot(p, axis) = offset.
func midSection(t *mesh.Table, axis geometry.Vector3, offset float64) []geometry.Vector3 {
	var points []geometry.Vector3
	for _, e := range t.Edges() {
		p, q := t.Position(e[0]), t.Position(e[1])
		sp, sq := p.Dot(axis)-offset, q.Dot(axis)-offset
		if (sp < 0) == (sq < 0) {
			continue
		}
		points = append(points, p.Add(q.Sub(p).Mul(sp/(sp-sq))))
	}
	return points
}

func applyFit(d *Descriptor, fit *geometry.CircleFit, scale float64) {
	diameter := 2 * fit.Radius / scale
	center := fit.Center.Mul(1 / scale)
	direction := fit.Normal
	d.Diameter = &diameter
	d.Center = &center
	d.Direction = &direction
	if axis, ok := geometry.AlignedAxis(direction, axisAlignment); ok {
		d.Axis = &axis
	}
}
