package mesh

import (
	"fmt"
	"sort"

	"github.com/philipparndt/gosurf/pkg/geometry"
)

// Face holds the values derived from one triangle.
type Face struct {
	Index    int
	Vertices [3]uint32 // indices into the mesh vertex buffer
	Welded   [3]uint32 // indices into Table positions, shared by coincident vertices
	Normal   geometry.Vector3
	Area     float64
	Centroid geometry.Vector3
}

// Degenerate reports whether the face has no defined normal.
func (f Face) Degenerate() bool {
	return f.Normal.IsZero()
}

// Edges returns the three undirected welded edges of the face.
// Edges collapsed to a point are omitted.
func (f Face) Edges() []Edge {
	edges := make([]Edge, 0, 3)
	for i := 0; i < 3; i++ {
		a, b := f.Welded[i], f.Welded[(i+1)%3]
		if a != b {
			edges = append(edges, NewEdge(a, b))
		}
	}
	return edges
}

// Edge is an undirected edge between two welded vertices, smaller id first.
type Edge [2]uint32

// NewEdge returns the edge between a and b in canonical order.
func NewEdge(a, b uint32) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{a, b}
}

// Less orders edges lexicographically.
func (e Edge) Less(other Edge) bool {
	if e[0] != other[0] {
		return e[0] < other[0]
	}
	return e[1] < other[1]
}

// SortEdges sorts edges in place.
func SortEdges(edges []Edge) {
	sort.Slice(edges, func(i, j int) bool { return edges[i].Less(edges[j]) })
}

// Table is the per-face view of a mesh. Vertices with bit-identical positions
// are welded so triangle soups still share edges.
type Table struct {
	mesh      *Mesh
	faces     []Face
	welded    []uint32
	positions []geometry.Vector3
	edges     map[Edge][]int
	byIndex   map[[3]uint32]int
	byWelded  map[[3]uint32]int
	bounds    geometry.BoundingBox
}

// NewTable validates m and derives every face.
func NewTable(m *Mesh) (*Table, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil mesh", ErrInvalidMesh)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	t := &Table{
		mesh:     m,
		faces:    make([]Face, m.FaceCount()),
		welded:   make([]uint32, m.VertexCount()),
		edges:    make(map[Edge][]int),
		byIndex:  make(map[[3]uint32]int, m.FaceCount()),
		byWelded: make(map[[3]uint32]int, m.FaceCount()),
		bounds:   geometry.NewBoundingBox(),
	}

	ids := make(map[[3]float32]uint32, m.VertexCount())
	for i := 0; i < m.VertexCount(); i++ {
		key := [3]float32{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
		id, ok := ids[key]
		if !ok {
			id = uint32(len(t.positions))
			ids[key] = id
			p := m.Vertex(uint32(i))
			t.positions = append(t.positions, p)
			t.bounds.Extend(p)
		}
		t.welded[i] = id
	}

	for f := range t.faces {
		idx := m.FaceIndices(f)
		tri := m.Triangle(f)
		face := Face{
			Index:    f,
			Vertices: idx,
			Welded:   [3]uint32{t.welded[idx[0]], t.welded[idx[1]], t.welded[idx[2]]},
			Normal:   tri.Normal,
			Area:     tri.Area(),
			Centroid: tri.Center(),
		}
		t.faces[f] = face

		for _, e := range face.Edges() {
			t.edges[e] = append(t.edges[e], f)
		}
		if _, dup := t.byIndex[sortedTriple(idx)]; !dup {
			t.byIndex[sortedTriple(idx)] = f
		}
		if _, dup := t.byWelded[sortedTriple(face.Welded)]; !dup {
			t.byWelded[sortedTriple(face.Welded)] = f
		}
	}

	return t, nil
}

func sortedTriple(v [3]uint32) [3]uint32 {
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	if v[1] > v[2] {
		v[1], v[2] = v[2], v[1]
	}
	if v[0] > v[1] {
		v[0], v[1] = v[1], v[0]
	}
	return v
}

// Mesh returns the source mesh.
func (t *Table) Mesh() *Mesh { return t.mesh }

// Len returns the number of faces.
func (t *Table) Len() int { return len(t.faces) }

// Face returns face f.
func (t *Table) Face(f int) Face { return t.faces[f] }

// Faces returns all faces. The slice is shared and must not be modified.
func (t *Table) Faces() []Face { return t.faces }

// Welded returns the welded id of mesh vertex i.
func (t *Table) Welded(i uint32) uint32 { return t.welded[i] }

// Position returns the position of welded vertex id.
func (t *Table) Position(id uint32) geometry.Vector3 { return t.positions[id] }

// Positions returns every distinct vertex position. Shared, read-only.
func (t *Table) Positions() []geometry.Vector3 { return t.positions }

// Bounds returns the bounding box of the mesh.
func (t *Table) Bounds() geometry.BoundingBox { return t.bounds }

// EdgeCount returns the number of distinct undirected edges.
func (t *Table) EdgeCount() int { return len(t.edges) }

// EdgeFaces returns the faces using edge e.
func (t *Table) EdgeFaces(e Edge) []int { return t.edges[e] }

// Lookup finds the face with the given vertex indices in any winding.
// Indices that only match after welding are accepted too.
func (t *Table) Lookup(tri [3]uint32) (int, bool) {
	if f, ok := t.byIndex[sortedTriple(tri)]; ok {
		return f, true
	}
	for _, i := range tri {
		if int(i) >= len(t.welded) {
			return 0, false
		}
	}
	f, ok := t.byWelded[sortedTriple([3]uint32{t.welded[tri[0]], t.welded[tri[1]], t.welded[tri[2]]})]
	return f, ok
}

// Neighbors returns the faces sharing an edge with face f, in ascending order.
func (t *Table) Neighbors(f int) []int {
	seen := make(map[int]bool)
	var out []int
	for _, e := range t.faces[f].Edges() {
		for _, g := range t.edges[e] {
			if g != f && !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	sort.Ints(out)
	return out
}

// Edges returns every distinct undirected edge, sorted.
func (t *Table) Edges() []Edge {
	edges := make([]Edge, 0, len(t.edges))
	for e := range t.edges {
		edges = append(edges, e)
	}
	SortEdges(edges)
	return edges
}
