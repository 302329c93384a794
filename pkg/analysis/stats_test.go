package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
	"github.com/philipparndt/gosurf/pkg/surface"
)

// square is a 10x10 plate as a triangle soup
func square(scale float64) *mesh.Mesh {
	return &mesh.Mesh{
		Name: "square",
		Vertices: []float32{
			0, 0, 0, 10, 0, 0, 10, 10, 0,
			0, 0, 0, 10, 10, 0, 0, 10, 0,
		},
		Scale: scale,
	}
}

func analyze(t *testing.T, m *mesh.Mesh) (*mesh.Table, *Stats) {
	t.Helper()
	table, err := mesh.NewTable(m)
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table, AnalyzeMesh(table)
}

func TestAnalyzeMesh(t *testing.T) {
	_, stats := analyze(t, square(0))

	if stats.FaceCount != 2 || stats.VertexCount != 6 || stats.WeldedVertexCount != 4 {
		t.Errorf("counts failed: got %d faces, %d vertices, %d welded", stats.FaceCount, stats.VertexCount, stats.WeldedVertexCount)
	}
	if math.Abs(stats.SurfaceArea-100) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 100, got %v", stats.SurfaceArea)
	}
	if stats.EdgeCount != 5 || stats.BoundaryEdges != 4 || stats.NonManifoldEdges != 0 {
		t.Errorf("edge counts failed: got %d edges, %d boundary, %d non-manifold", stats.EdgeCount, stats.BoundaryEdges, stats.NonManifoldEdges)
	}
	if stats.Watertight() {
		t.Error("an open plate should not be watertight")
	}
	if stats.MinEdgeLength != 10 {
		t.Errorf("MinEdgeLength failed: expected 10, got %v", stats.MinEdgeLength)
	}
	if math.Abs(stats.MaxEdgeLength-math.Sqrt(200)) > 1e-10 {
		t.Errorf("MaxEdgeLength failed: expected %v, got %v", math.Sqrt(200), stats.MaxEdgeLength)
	}
	expectedAvg := (40 + math.Sqrt(200)) / 5
	if math.Abs(stats.AvgEdgeLength-expectedAvg) > 1e-10 {
		t.Errorf("AvgEdgeLength failed: expected %v, got %v", expectedAvg, stats.AvgEdgeLength)
	}
	if stats.Dimensions != geometry.NewVector3(10, 10, 0) {
		t.Errorf("Dimensions failed: expected (10,10,0), got %v", stats.Dimensions)
	}
}

func TestAnalyzeMeshScale(t *testing.T) {
	_, stats := analyze(t, square(2))

	if math.Abs(stats.SurfaceArea-25) > 1e-10 {
		t.Errorf("SurfaceArea failed: expected 25, got %v", stats.SurfaceArea)
	}
	if stats.MinEdgeLength != 5 {
		t.Errorf("MinEdgeLength failed: expected 5, got %v", stats.MinEdgeLength)
	}
	if stats.BoundingBox.Max != geometry.NewVector3(5, 5, 0) {
		t.Errorf("BoundingBox failed: expected max (5,5,0), got %v", stats.BoundingBox.Max)
	}
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	_, stats := analyze(t, &mesh.Mesh{Name: "empty"})
	if stats.EdgeCount != 0 || stats.MinEdgeLength != 0 || stats.SurfaceArea != 0 {
		t.Errorf("empty mesh stats failed: %+v", stats)
	}
	if stats.Dimensions != (geometry.Vector3{}) {
		t.Errorf("Dimensions failed: expected zero, got %v", stats.Dimensions)
	}
}

func TestFindEdges(t *testing.T) {
	_, stats := analyze(t, square(0))

	tests := []struct {
		name  string
		edges []EdgeInfo
		want  int
	}{
		{"longest", FindLongestEdges(stats, 1), 1},
		{"shortest", FindShortestEdges(stats, 3), 3},
		{"shortest over count", FindShortestEdges(stats, 99), 5},
		{"by length", FindEdgesByLength(stats, 9, 11), 4},
		{"boundary", FindBoundaryEdges(stats), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.edges) != tt.want {
				t.Errorf("len() = %d, want %d", len(tt.edges), tt.want)
			}
		})
	}

	if got := FindLongestEdges(stats, 1)[0]; got.Boundary() || math.Abs(got.Length-math.Sqrt(200)) > 1e-10 {
		t.Errorf("longest edge failed: got %+v", got)
	}
}

func TestFindFaces(t *testing.T) {
	m := square(0)
	// make the second triangle smaller
	m.Vertices = append(m.Vertices, 0, 0, 1, 1, 0, 1, 0, 1, 1)
	_, stats := analyze(t, m)

	if got := FindSmallestFaces(stats, 1); len(got) != 1 || got[0].Index != 2 {
		t.Errorf("FindSmallestFaces failed: got %+v", got)
	}
	if got := FindLargestFaces(stats, 2); len(got) != 2 || got[0].Index != 0 || got[1].Index != 1 {
		t.Errorf("FindLargestFaces failed: got %+v", got)
	}
}

func TestFindNearestVertex(t *testing.T) {
	table, _ := analyze(t, square(0))

	id, pos, ok := FindNearestVertex(table, geometry.NewVector3(9, 11, 1))
	if !ok {
		t.Fatal("FindNearestVertex found nothing")
	}
	if pos != geometry.NewVector3(10, 10, 0) || table.Position(id) != pos {
		t.Errorf("FindNearestVertex failed: got %d at %v", id, pos)
	}

	empty, _ := analyze(t, &mesh.Mesh{})
	if _, _, ok := FindNearestVertex(empty, geometry.Vector3{}); ok {
		t.Error("FindNearestVertex on an empty mesh should fail")
	}
}

func TestFormatDescriptor(t *testing.T) {
	m := square(0)
	d, err := surface.Analyze(m, surface.Pick{Triangle: [3]uint32{0, 1, 2}, Point: geometry.NewVector3(5, 2, 0)})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	out := FormatDescriptor(d, "mm")
	for _, want := range []string{"Kind:        planar", "100.000000 mm²", "40.000000 mm"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatDescriptor output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Diameter") {
		t.Errorf("a square has no diameter:\n%s", out)
	}

	r := surface.Distance(d, d)
	if out := FormatResult(r, ""); !strings.Contains(out, "Perpendicular: 0.000000 units") {
		t.Errorf("FormatResult failed:\n%s", out)
	}
}

func TestFormatVector(t *testing.T) {
	if got := FormatVector(geometry.NewVector3(1, 2.5, -3)); got != "(1.000000, 2.500000, -3.000000)" {
		t.Errorf("FormatVector failed: got %q", got)
	}
}
