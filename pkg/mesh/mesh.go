// Package mesh holds the triangle mesh handed over by an importer and the
// per-face values derived from it. A Mesh is never mutated here.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gosurf/pkg/geometry"
)

// ErrInvalidMesh reports buffers that do not describe a triangle mesh.
var ErrInvalidMesh = errors.New("invalid mesh")

// Mesh is a triangle mesh with flat buffers.
// Vertices has 3 floats per vertex, Normals (optional) is parallel to
// Vertices, and Indices (optional) has 3 entries per triangle. Without
// Indices, faces are consecutive vertex triples.
type Mesh struct {
	Name     string
	Vertices []float32 // [x0,y0,z0, x1,y1,z1, ...]
	Normals  []float32 // [nx0,ny0,nz0, ...]
	Indices  []uint32  // [i0,i1,i2, ...] triangles

	// Scale is the uniform display scale baked into Vertices. Reported
	// lengths are divided by it. Zero means unscaled.
	Scale float64
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// FaceCount returns the number of triangles.
func (m *Mesh) FaceCount() int {
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return m.VertexCount() / 3
}

// IsEmpty returns true if the mesh has no faces.
func (m *Mesh) IsEmpty() bool {
	return m.FaceCount() == 0
}

// HasNormals reports whether per-vertex normals are present.
func (m *Mesh) HasNormals() bool {
	return len(m.Normals) > 0 && len(m.Normals) == len(m.Vertices)
}

// UnitScale returns the divisor that converts mesh lengths to model units.
func (m *Mesh) UnitScale() float64 {
	if m.Scale <= 0 {
		return 1
	}
	return m.Scale
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i uint32) geometry.Vector3 {
	o := int(i) * 3
	return geometry.NewVector3(float64(m.Vertices[o]), float64(m.Vertices[o+1]), float64(m.Vertices[o+2]))
}

// VertexNormal returns the normal of vertex i when normals are present.
func (m *Mesh) VertexNormal(i uint32) (geometry.Vector3, bool) {
	if !m.HasNormals() || int(i) >= m.VertexCount() {
		return geometry.Vector3{}, false
	}
	o := int(i) * 3
	return geometry.NewVector3(float64(m.Normals[o]), float64(m.Normals[o+1]), float64(m.Normals[o+2])), true
}

// FaceIndices returns the three vertex indices of face f.
func (m *Mesh) FaceIndices(f int) [3]uint32 {
	if len(m.Indices) > 0 {
		return [3]uint32{m.Indices[f*3], m.Indices[f*3+1], m.Indices[f*3+2]}
	}
	base := uint32(f * 3)
	return [3]uint32{base, base + 1, base + 2}
}

// Triangle returns face f as a geometry triangle with its computed normal.
func (m *Mesh) Triangle(f int) geometry.Triangle {
	idx := m.FaceIndices(f)
	tri := geometry.Triangle{V1: m.Vertex(idx[0]), V2: m.Vertex(idx[1]), V3: m.Vertex(idx[2])}
	tri.Normal = tri.CalculateNormal()
	return tri
}

// BoundingBox calculates the bounding box of all vertices.
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for i := 0; i < m.VertexCount(); i++ {
		bbox.Extend(m.Vertex(uint32(i)))
	}
	return bbox
}

// Validate checks buffer lengths, index ranges and that every position and
// normal component is finite.
func (m *Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("%w: %d position floats is not a multiple of 3", ErrInvalidMesh, len(m.Vertices))
	}
	if len(m.Normals) > 0 && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("%w: %d normal floats for %d position floats", ErrInvalidMesh, len(m.Normals), len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a multiple of 3", ErrInvalidMesh, len(m.Indices))
	}
	if len(m.Indices) == 0 && m.VertexCount()%3 != 0 {
		return fmt.Errorf("%w: %d unindexed vertices is not a multiple of 3", ErrInvalidMesh, m.VertexCount())
	}
	if i, ok := firstNonFinite(m.Vertices); ok {
		return fmt.Errorf("%w: vertex %d has a non-finite coordinate %v", ErrInvalidMesh, i/3, m.Vertices[i])
	}
	if i, ok := firstNonFinite(m.Normals); ok {
		return fmt.Errorf("%w: normal %d has a non-finite component %v", ErrInvalidMesh, i/3, m.Normals[i])
	}
	count := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= count {
			return fmt.Errorf("%w: index %d references vertex %d of %d", ErrInvalidMesh, i, idx, count)
		}
	}
	return nil
}

func firstNonFinite(values []float32) (int, bool) {
	for i, x := range values {
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return i, true
		}
	}
	return 0, false
}
