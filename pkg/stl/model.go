package stl

import (
	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Mesh converts the model into an unindexed triangle mesh. The facet normal
// stored in the file becomes the normal of all three vertices.
func (m *Model) Mesh(scale float64) *mesh.Mesh {
	out := &mesh.Mesh{
		Name:     m.Name,
		Vertices: make([]float32, 0, len(m.Triangles)*9),
		Normals:  make([]float32, 0, len(m.Triangles)*9),
		Scale:    scale,
	}
	for _, t := range m.Triangles {
		for _, v := range [3]geometry.Vector3{t.V1, t.V2, t.V3} {
			out.Vertices = append(out.Vertices, float32(v.X), float32(v.Y), float32(v.Z))
			out.Normals = append(out.Normals, float32(t.Normal.X), float32(t.Normal.Y), float32(t.Normal.Z))
		}
	}
	return out
}

// FromMesh builds a model from a mesh, computing facet normals from winding
func FromMesh(m *mesh.Mesh) *Model {
	model := NewModel(m.Name)
	for f := 0; f < m.FaceCount(); f++ {
		model.AddTriangle(m.Triangle(f))
	}
	return model
}
