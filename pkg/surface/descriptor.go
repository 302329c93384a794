package surface

import (
	"fmt"

	"github.com/philipparndt/gosurf/pkg/geometry"
)

// Kind classifies a picked surface.
type Kind int

const (
	Freeform Kind = iota
	Planar
	Circular
	Cylindrical
)

func (k Kind) String() string {
	switch k {
	case Freeform:
		return "freeform"
	case Planar:
		return "planar"
	case Circular:
		return "circular"
	case Cylindrical:
		return "cylindrical"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pick is one selection on a mesh: the picked triangle's vertex indices and
// the exact point on it, both in the mesh's local space.
type Pick struct {
	Triangle [3]uint32
	Point    geometry.Vector3
}

// Descriptor describes the surface under one pick in model units (mesh
// lengths divided by the mesh scale). Optional fields are nil when their fit
// failed or their denominator was zero.
type Descriptor struct {
	Kind      Kind
	Area      float64
	Perimeter float64
	Centroid  *geometry.Vector3
	Normal    geometry.Vector3 // unit normal of the picked face, zero if undefined
	Point     geometry.Vector3 // the pick point

	Diameter  *float64
	Axis      *geometry.Axis    // set when the fitted axis is a canonical one
	Direction *geometry.Vector3 // fitted circle normal or cylinder axis
	Center    *geometry.Vector3 // fitted circle or cylinder center

	FaceCount        int // faces aggregated into the patch
	BoundaryVertices int
	Loops            int // closed or open boundary chains
}

// Radius returns half the fitted diameter.
func (d Descriptor) Radius() (float64, bool) {
	if d.Diameter == nil {
		return 0, false
	}
	return *d.Diameter / 2, true
}
