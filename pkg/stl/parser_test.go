package stl

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

const asciiSquare = `solid square
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 10 0 0
      vertex 10 10 0
    endloop
  endfacet
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 10 10 0
      vertex 0 10 0
    endloop
  endfacet
endsolid square
`

func TestParseASCII(t *testing.T) {
	model, err := ParseBytes([]byte(asciiSquare))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if model.Name != "square" {
		t.Errorf("Name failed: expected square, got %q", model.Name)
	}
	if model.TriangleCount() != 2 {
		t.Fatalf("TriangleCount failed: expected 2, got %d", model.TriangleCount())
	}
	if model.Triangles[1].V2 != geometry.NewVector3(10, 10, 0) {
		t.Errorf("Vertex failed: expected (10,10,0), got %v", model.Triangles[1].V2)
	}
}

func TestNonFiniteVertexFailsValidation(t *testing.T) {
	text := strings.Replace(asciiSquare, "vertex 10 0 0", "vertex nan 0 0", 1)
	model, err := ParseBytes([]byte(text))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if err := model.Mesh(1).Validate(); !errors.Is(err, mesh.ErrInvalidMesh) {
		t.Errorf("Validate failed: expected ErrInvalidMesh, got %v", err)
	}
}

func TestParseASCIIRejectsBrokenFacet(t *testing.T) {
	broken := "solid x\nfacet normal 0 0 1\nouter loop\nvertex 0 0 0\nvertex 1 0 0\nendloop\nendfacet\nendsolid x\n"
	if _, err := ParseBytes([]byte(broken)); err == nil {
		t.Error("ParseBytes of a two-vertex facet succeeded, want error")
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	source, err := ParseBytes([]byte(asciiSquare))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}

	// A header starting with "solid" must not fool format detection
	source.Name = "solid but binary"
	var buf bytes.Buffer
	if err := WriteBinary(&buf, source); err != nil {
		t.Fatalf("WriteBinary failed: %v", err)
	}

	model, err := ParseBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	if model.TriangleCount() != 2 {
		t.Fatalf("TriangleCount failed: expected 2, got %d", model.TriangleCount())
	}
	for i := range model.Triangles {
		if model.Triangles[i] != source.Triangles[i] {
			t.Errorf("Triangle %d failed: expected %v, got %v", i, source.Triangles[i], model.Triangles[i])
		}
	}
}

func TestWriteFileAndParse(t *testing.T) {
	source, err := ParseBytes([]byte(asciiSquare))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	path := filepath.Join(t.TempDir(), "square.stl")
	if err := WriteFile(path, source); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	model, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if model.TriangleCount() != 2 {
		t.Errorf("TriangleCount failed: expected 2, got %d", model.TriangleCount())
	}
}

func TestModelMesh(t *testing.T) {
	model, err := ParseBytes([]byte(asciiSquare))
	if err != nil {
		t.Fatalf("ParseBytes failed: %v", err)
	}
	m := model.Mesh(2)
	if m.FaceCount() != 2 || m.VertexCount() != 6 {
		t.Errorf("Mesh counts failed: expected 2 faces / 6 vertices, got %d / %d", m.FaceCount(), m.VertexCount())
	}
	if !m.HasNormals() {
		t.Error("Mesh lost the facet normals")
	}
	if m.UnitScale() != 2 {
		t.Errorf("Mesh scale failed: expected 2, got %v", m.UnitScale())
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Mesh Validate failed: %v", err)
	}

	back := FromMesh(m)
	if back.TriangleCount() != 2 || back.Triangles[0].Normal != geometry.NewVector3(0, 0, 1) {
		t.Errorf("FromMesh failed: %+v", back.Triangles)
	}
}
