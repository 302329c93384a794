package analysis

import (
	"math"
	"sort"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

// EdgeInfo contains information about a distinct edge of the mesh
type EdgeInfo struct {
	Edge   mesh.Edge
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Faces  []int // faces sharing this edge
}

// Boundary reports whether only one face uses the edge
func (e EdgeInfo) Boundary() bool {
	return len(e.Faces) == 1
}

// FaceInfo contains the derived values of one face
type FaceInfo struct {
	Index    int
	Normal   geometry.Vector3
	Area     float64
	Centroid geometry.Vector3
}

// Stats contains various measurements of a mesh, in model units
type Stats struct {
	Name        string
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3
	Volume      float64 // of the bounding box
	SurfaceArea float64

	FaceCount         int
	VertexCount       int
	WeldedVertexCount int
	DegenerateFaces   int

	EdgeCount         int
	BoundaryEdges     int
	NonManifoldEdges  int
	MinEdgeLength     float64
	MaxEdgeLength     float64
	AvgEdgeLength     float64
	Edges             []EdgeInfo
	Faces             []FaceInfo
}

// Watertight reports whether every edge is shared by exactly two faces
func (s *Stats) Watertight() bool {
	return s.EdgeCount > 0 && s.BoundaryEdges == 0 && s.NonManifoldEdges == 0
}

// AnalyzeMesh performs comprehensive analysis on a face table
func AnalyzeMesh(t *mesh.Table) *Stats {
	m := t.Mesh()
	scale := m.UnitScale()

	box := t.Bounds()
	if !box.IsEmpty() {
		box = geometry.BoundingBox{Min: box.Min.Mul(1 / scale), Max: box.Max.Mul(1 / scale)}
	}

	result := &Stats{
		Name:              m.Name,
		BoundingBox:       box,
		Dimensions:        box.Size(),
		Volume:            box.Volume(),
		FaceCount:         t.Len(),
		VertexCount:       m.VertexCount(),
		WeldedVertexCount: len(t.Positions()),
		Faces:             make([]FaceInfo, 0, t.Len()),
	}

	for _, face := range t.Faces() {
		area := face.Area / (scale * scale)
		result.SurfaceArea += area
		if face.Degenerate() {
			result.DegenerateFaces++
		}
		result.Faces = append(result.Faces, FaceInfo{
			Index:    face.Index,
			Normal:   face.Normal,
			Area:     area,
			Centroid: face.Centroid.Mul(1 / scale),
		})
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, e := range t.Edges() {
		start := t.Position(e[0]).Mul(1 / scale)
		end := t.Position(e[1]).Mul(1 / scale)
		info := EdgeInfo{
			Edge:   e,
			Start:  start,
			End:    end,
			Length: start.Distance(end),
			Faces:  t.EdgeFaces(e),
		}
		result.Edges = append(result.Edges, info)

		switch n := len(info.Faces); {
		case n == 1:
			result.BoundaryEdges++
		case n > 2:
			result.NonManifoldEdges++
		}

		totalLength += info.Length
		minLength = math.Min(minLength, info.Length)
		maxLength = math.Max(maxLength, info.Length)
	}

	result.EdgeCount = len(result.Edges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *Stats, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.Edges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindBoundaryEdges returns the edges used by a single face
func FindBoundaryEdges(result *Stats) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.Edges {
		if edge.Boundary() {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *Stats, count int) []EdgeInfo {
	return topEdges(result.Edges, count, func(a, b EdgeInfo) bool { return a.Length > b.Length })
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *Stats, count int) []EdgeInfo {
	return topEdges(result.Edges, count, func(a, b EdgeInfo) bool { return a.Length < b.Length })
}

func topEdges(all []EdgeInfo, count int, less func(a, b EdgeInfo) bool) []EdgeInfo {
	edges := make([]EdgeInfo, len(all))
	copy(edges, all)
	sort.SliceStable(edges, func(i, j int) bool { return less(edges[i], edges[j]) })
	return edges[:clamp(count, len(edges))]
}

// FindLargestFaces returns the N faces with the largest area
func FindLargestFaces(result *Stats, count int) []FaceInfo {
	return topFaces(result.Faces, count, func(a, b FaceInfo) bool { return a.Area > b.Area })
}

// FindSmallestFaces returns the N faces with the smallest area
func FindSmallestFaces(result *Stats, count int) []FaceInfo {
	return topFaces(result.Faces, count, func(a, b FaceInfo) bool { return a.Area < b.Area })
}

func topFaces(all []FaceInfo, count int, less func(a, b FaceInfo) bool) []FaceInfo {
	faces := make([]FaceInfo, len(all))
	copy(faces, all)
	sort.SliceStable(faces, func(i, j int) bool { return less(faces[i], faces[j]) })
	return faces[:clamp(count, len(faces))]
}

func clamp(count, n int) int {
	if count < 0 || count > n {
		return n
	}
	return count
}

// FindNearestVertex finds the welded vertex nearest to a point given in
// mesh space. It returns false for an empty mesh.
func FindNearestVertex(t *mesh.Table, point geometry.Vector3) (uint32, geometry.Vector3, bool) {
	var nearest uint32
	minDistance := math.MaxFloat64
	found := false

	for id, vertex := range t.Positions() {
		if distance := point.Distance(vertex); distance < minDistance {
			minDistance = distance
			nearest = uint32(id)
			found = true
		}
	}

	if !found {
		return 0, geometry.Vector3{}, false
	}
	return nearest, t.Position(nearest), true
}
