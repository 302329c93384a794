package surface

import (
	"math"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

// region returns the faces treated as one surface with face seed, in
// ascending order, and whether they form a plane.
func (a *Analyzer) region(t *mesh.Table, seed int, normal geometry.Vector3) ([]int, bool) {
	if a.cfg.Region == RegionConnected {
		return a.connectedRegion(t, seed, normal)
	}
	return a.globalRegion(t, normal)
}

func (a *Analyzer) coplanar(normal geometry.Vector3, face mesh.Face) bool {
	return !face.Degenerate() && math.Abs(normal.Dot(face.Normal)) > a.cfg.CoplanarCosine
}

// globalRegion collects every coplanar face in the mesh. The pick counts as
// planar when they make up more than PlanarFaceFraction of all faces.
func (a *Analyzer) globalRegion(t *mesh.Table, normal geometry.Vector3) ([]int, bool) {
	var faces []int
	for _, face := range t.Faces() {
		if a.coplanar(normal, face) {
			faces = append(faces, face.Index)
		}
	}
	planar := float64(len(faces)) > a.cfg.PlanarFaceFraction*float64(t.Len())
	return faces, planar
}

// connectedRegion flood-fills coplanar faces across shared edges from seed.
// Coplanar islands lying on the seed plane next to the patch are merged in,
// which bridges surfaces split by tessellation seams.
func (a *Analyzer) connectedRegion(t *mesh.Table, seed int, normal geometry.Vector3) ([]int, bool) {
	diagonal := t.Bounds().Diagonal()
	onPlane := a.cfg.FlatnessTolerance * diagonal
	origin := t.Face(seed).Centroid

	inPatch := make([]bool, t.Len())
	grow := func(start int) {
		inPatch[start] = true
		queue := []int{start}
		for len(queue) > 0 {
			f := queue[0]
			queue = queue[1:]
			for _, g := range t.Neighbors(f) {
				if !inPatch[g] && a.coplanar(normal, t.Face(g)) {
					inPatch[g] = true
					queue = append(queue, g)
				}
			}
		}
	}
	grow(seed)

	if a.cfg.MergeIslands {
		reach := a.cfg.MergeRadius * diagonal
		for merged := true; merged; {
			merged = false
			box := patchBounds(t, inPatch)
			for f := range inPatch {
				face := t.Face(f)
				if inPatch[f] || !a.coplanar(normal, face) {
					continue
				}
				if math.Abs(face.Centroid.Sub(origin).Dot(normal)) > onPlane {
					continue
				}
				if faceDistance(t, face, box) > reach {
					continue
				}
				a.logger.Debug("merging coplanar island", "face", f)
				grow(f)
				box = patchBounds(t, inPatch)
				merged = true
			}
		}
	}

	var faces []int
	for f, in := range inPatch {
		if in {
			faces = append(faces, f)
		}
	}

	for _, f := range faces {
		for _, id := range t.Face(f).Welded {
			if math.Abs(t.Position(id).Sub(origin).Dot(normal)) > onPlane {
				return faces, false
			}
		}
	}
	return faces, true
}

func patchBounds(t *mesh.Table, inPatch []bool) geometry.BoundingBox {
	box := geometry.NewBoundingBox()
	for f, in := range inPatch {
		if !in {
			continue
		}
		for _, id := range t.Face(f).Welded {
			box.Extend(t.Position(id))
		}
	}
	return box
}

// faceDistance is the distance from the nearest vertex of face to box.
func faceDistance(t *mesh.Table, face mesh.Face, box geometry.BoundingBox) float64 {
	nearest := math.Inf(1)
	for _, id := range face.Welded {
		nearest = math.Min(nearest, box.DistanceTo(t.Position(id)))
	}
	return nearest
}
