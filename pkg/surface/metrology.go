package surface

import (
	"sort"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

// TriangleArea returns the area of the triangle v0 v1 v2.
func TriangleArea(v0, v1, v2 geometry.Vector3) float64 {
	return geometry.Triangle{V1: v0, V2: v1, V3: v2}.Area()
}

// TriangleCentroid returns the centroid of the triangle v0 v1 v2.
func TriangleCentroid(v0, v1, v2 geometry.Vector3) geometry.Vector3 {
	return geometry.Triangle{V1: v0, V2: v1, V3: v2}.Center()
}

// AreaWeightedCentroid returns the area-weighted mean of the face centroids
// and the total area. ok is false when the total area is zero.
func AreaWeightedCentroid(t *mesh.Table, faces []int) (centroid geometry.Vector3, area float64, ok bool) {
	var weighted geometry.Vector3
	for _, f := range faces {
		face := t.Face(f)
		area += face.Area
		weighted = weighted.Add(face.Centroid.Mul(face.Area))
	}
	if area == 0 {
		return geometry.Vector3{}, 0, false
	}
	return weighted.Mul(1 / area), area, true
}

// BoundaryEdges returns the edges used by exactly one of faces, sorted.
func BoundaryEdges(t *mesh.Table, faces []int) []mesh.Edge {
	uses := make(map[mesh.Edge]int)
	for _, f := range faces {
		for _, e := range t.Face(f).Edges() {
			uses[e]++
		}
	}
	var boundary []mesh.Edge
	for e, n := range uses {
		if n == 1 {
			boundary = append(boundary, e)
		}
	}
	mesh.SortEdges(boundary)
	return boundary
}

// EdgeLength sums the lengths of edges in the given order.
func EdgeLength(t *mesh.Table, edges []mesh.Edge) float64 {
	var total float64
	for _, e := range edges {
		total += t.Position(e[0]).Distance(t.Position(e[1]))
	}
	return total
}

// BoundaryPerimeter returns the summed length of the boundary of faces.
func BoundaryPerimeter(t *mesh.Table, faces []int) float64 {
	return EdgeLength(t, BoundaryEdges(t, faces))
}

// BoundaryVertices returns the distinct welded vertices on edges, ascending.
func BoundaryVertices(edges []mesh.Edge) []uint32 {
	seen := make(map[uint32]bool, len(edges)*2)
	var out []uint32
	for _, e := range edges {
		for _, v := range e {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// BoundaryLoops chains boundary edges into vertex loops. Where more than two
// boundary edges meet, the lowest unused neighbour is followed; a chain that
// cannot close is returned open.
func BoundaryLoops(edges []mesh.Edge) [][]uint32 {
	adjacent := make(map[uint32][]uint32)
	for _, e := range edges {
		adjacent[e[0]] = append(adjacent[e[0]], e[1])
		adjacent[e[1]] = append(adjacent[e[1]], e[0])
	}
	for v := range adjacent {
		n := adjacent[v]
		sort.Slice(n, func(i, j int) bool { return n[i] < n[j] })
	}

	used := make(map[mesh.Edge]bool, len(edges))
	var loops [][]uint32
	for _, start := range edges {
		if used[start] {
			continue
		}
		used[start] = true
		loop := []uint32{start[0], start[1]}
		for cur := start[1]; cur != start[0]; {
			next, found := uint32(0), false
			for _, n := range adjacent[cur] {
				if !used[mesh.NewEdge(cur, n)] {
					next, found = n, true
					break
				}
			}
			if !found {
				break
			}
			used[mesh.NewEdge(cur, next)] = true
			cur = next
			if cur != start[0] {
				loop = append(loop, cur)
			}
		}
		loops = append(loops, loop)
	}
	return loops
}

// patchMetrics fills the area, perimeter and boundary fields of a descriptor
// for faces, dividing lengths by scale. It returns the boundary vertices.
func patchMetrics(t *mesh.Table, faces []int, scale float64) (Descriptor, []uint32) {
	var d Descriptor
	centroid, area, ok := AreaWeightedCentroid(t, faces)
	d.Area = area / (scale * scale)
	if ok {
		c := centroid.Mul(1 / scale)
		d.Centroid = &c
	}

	edges := BoundaryEdges(t, faces)
	d.Perimeter = EdgeLength(t, edges) / scale
	d.Loops = len(BoundaryLoops(edges))

	vertices := BoundaryVertices(edges)
	d.BoundaryVertices = len(vertices)
	d.FaceCount = len(faces)
	return d, vertices
}
