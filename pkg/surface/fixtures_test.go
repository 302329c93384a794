package surface

import (
	"math"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

// soup collects triangles as an unindexed mesh.
type soup struct {
	vertices []float32
	faces    int
}

func (s *soup) add(v0, v1, v2 geometry.Vector3) int {
	for _, v := range []geometry.Vector3{v0, v1, v2} {
		s.vertices = append(s.vertices, float32(v.X), float32(v.Y), float32(v.Z))
	}
	s.faces++
	return s.faces - 1
}

// quad adds a-b-c and a-c-d.
func (s *soup) quad(a, b, c, d geometry.Vector3) {
	s.add(a, b, c)
	s.add(a, c, d)
}

func (s *soup) mesh(name string) *mesh.Mesh {
	return &mesh.Mesh{Name: name, Vertices: s.vertices}
}

// pickFace picks face f of an unindexed mesh at its centroid.
func pickFace(m *mesh.Mesh, f int) Pick {
	base := uint32(f * 3)
	tri := [3]uint32{base, base + 1, base + 2}
	return Pick{Triangle: tri, Point: m.Triangle(f).Center()}
}

func v(x, y, z float64) geometry.Vector3 { return geometry.NewVector3(x, y, z) }

// square is a 10x10 plate in the XY plane.
func square() *mesh.Mesh {
	var s soup
	s.quad(v(0, 0, 0), v(10, 0, 0), v(10, 10, 0), v(0, 10, 0))
	return s.mesh("square")
}

// disk is a fan-triangulated disk around center in the plane spanned by u and v.
func disk(center, u, w geometry.Vector3, radius float64, segments int) *mesh.Mesh {
	var s soup
	rim := func(i int) geometry.Vector3 {
		a := 2 * math.Pi * float64(i%segments) / float64(segments)
		return center.Add(u.Mul(radius * math.Cos(a))).Add(w.Mul(radius * math.Sin(a)))
	}
	for i := 0; i < segments; i++ {
		s.add(center, rim(i), rim(i+1))
	}
	return s.mesh("disk")
}

// cylinder is an open tube around the Y axis from y=0 to y=height with a
// ring of vertices every 2 units.
func cylinder(radius, height float64, segments int) *mesh.Mesh {
	return tube(radius, height, segments, int(height/2)+1)
}

// tube is an open tube around the Y axis from y=0 to y=height made of
// evenly spaced vertex rings, the end rings included.
func tube(radius, height float64, segments, rings int) *mesh.Mesh {
	var s soup
	step := height / float64(rings-1)
	at := func(i, k int) geometry.Vector3 {
		a := 2 * math.Pi * float64(i%segments) / float64(segments)
		return v(radius*math.Cos(a), step*float64(k), radius*math.Sin(a))
	}
	for i := 0; i < segments; i++ {
		for k := 0; k < rings-1; k++ {
			s.quad(at(i, k), at(i+1, k), at(i+1, k+1), at(i, k+1))
		}
	}
	return s.mesh("cylinder")
}

// plates is two 10x10 plates: one at z=0, one at z=5.
func plates() *mesh.Mesh {
	var s soup
	s.quad(v(0, 0, 0), v(10, 0, 0), v(10, 10, 0), v(0, 10, 0))
	s.quad(v(0, 0, 5), v(10, 0, 5), v(10, 10, 5), v(0, 10, 5))
	return s.mesh("plates")
}

// seam is two coplanar plates separated by a 0.05 gap in X.
func seam() *mesh.Mesh {
	var s soup
	s.quad(v(0, 0, 0), v(10, 0, 0), v(10, 10, 0), v(0, 10, 0))
	s.quad(v(10.05, 0, 0), v(20, 0, 0), v(20, 10, 0), v(10.05, 10, 0))
	return s.mesh("seam")
}

func sliver() *mesh.Mesh {
	var s soup
	s.add(v(0, 0, 0), v(1, 0, 0), v(2, 0, 0))
	return s.mesh("sliver")
}

// pillow is a 10x10 plate in the XY plane with a back side sharing every
// edge, so it has no boundary.
func pillow() *mesh.Mesh {
	var s soup
	s.quad(v(0, 0, 0), v(10, 0, 0), v(10, 10, 0), v(0, 10, 0))
	s.quad(v(0, 0, 0), v(0, 10, 0), v(10, 10, 0), v(10, 0, 0))
	return s.mesh("pillow")
}

// bump is an open faceted cone with its apex at z=height over a ring of
// the given radius at z=0.
func bump(radius, height float64, segments int) *mesh.Mesh {
	var s soup
	apex := v(0, 0, height)
	rim := func(i int) geometry.Vector3 {
		a := 2 * math.Pi * float64(i%segments) / float64(segments)
		return v(radius*math.Cos(a), radius*math.Sin(a), 0)
	}
	for i := 0; i < segments; i++ {
		s.add(apex, rim(i), rim(i+1))
	}
	return s.mesh("bump")
}
