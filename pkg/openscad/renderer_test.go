package openscad

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
}

func TestResolveDependencies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), "use <lib/shapes.scad>\ninclude <./params.scad>\n// use <ignored.scad>\ncube(1);\n")
	writeFile(t, filepath.Join(dir, "lib", "shapes.scad"), "include <../params.scad>\n")
	writeFile(t, filepath.Join(dir, "params.scad"), "size = 10;\n")

	deps, err := NewRenderer(dir, nil).ResolveDependencies("main.scad")
	if err != nil {
		t.Fatalf("ResolveDependencies failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "main.scad"),
		filepath.Join(dir, "lib", "shapes.scad"),
		filepath.Join(dir, "params.scad"),
	}
	if len(deps) != len(want) {
		t.Fatalf("ResolveDependencies() = %v, want %v", deps, want)
	}
	for i := range want {
		if deps[i] != want[i] {
			t.Errorf("dependency %d = %s, want %s", i, deps[i], want[i])
		}
	}
}

func TestResolveDependenciesMissingFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.scad"), "use <./gone.scad>\n")

	if _, err := NewRenderer(dir, nil).ResolveDependencies("main.scad"); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ResolveDependencies error = %v, want os.ErrNotExist", err)
	}
}

func TestRenderWithoutOpenSCAD(t *testing.T) {
	r := NewRenderer(t.TempDir(), nil)
	r.binary = "gosurf-test-no-such-openscad"

	if _, err := r.Render(context.Background(), "part.scad"); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("Render error = %v, want ErrNotInstalled", err)
	}
}

func TestIsSource(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"part.scad", true},
		{"PART.SCAD", true},
		{"part.stl", false},
		{"scad", false},
	}
	for _, tt := range tests {
		if got := IsSource(tt.path); got != tt.want {
			t.Errorf("IsSource(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
