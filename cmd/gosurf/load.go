package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
	"github.com/philipparndt/gosurf/pkg/openscad"
	"github.com/philipparndt/gosurf/pkg/stl"
	"github.com/philipparndt/gosurf/pkg/surface"
)

// loadMesh reads an STL file, or renders an OpenSCAD source, into a mesh
// carrying the configured scale
func loadMesh(ctx context.Context, filename string) (*mesh.Mesh, error) {
	var model *stl.Model
	var err error
	if openscad.IsSource(filename) {
		model, err = newRenderer().Render(ctx, filename)
		if err != nil {
			return nil, err
		}
	} else {
		model, err = stl.Parse(filename)
		if err != nil {
			return nil, fmt.Errorf("error parsing STL file: %w", err)
		}
	}
	m := model.Mesh(settings.Scale)
	if m.Name == "" {
		m.Name = filename
	}
	logger.Debug("loaded mesh", "file", filename, "faces", m.FaceCount())
	return m, nil
}

func newRenderer() *openscad.Renderer {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return openscad.NewRenderer(wd, logger)
}

// sourceFiles lists the files a mesh is built from
func sourceFiles(filename string) ([]string, error) {
	if !openscad.IsSource(filename) {
		return []string{filename}, nil
	}
	return newRenderer().ResolveDependencies(filename)
}

func newAnalyzer() (*surface.Analyzer, error) {
	return surface.NewAnalyzer(settings.Surface, surface.WithLogger(logger))
}

// parsePoint parses "x,y,z"
func parsePoint(s string) (geometry.Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return geometry.Vector3{}, fmt.Errorf("invalid point %q: expected x,y,z", s)
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid point %q: %w", s, err)
		}
		c[i] = v
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// facePick builds a pick on face. An empty point picks the face centroid.
func facePick(m *mesh.Mesh, face int, point string) (surface.Pick, error) {
	if face < 0 || face >= m.FaceCount() {
		return surface.Pick{}, fmt.Errorf("face %d out of range (mesh has %d faces)", face, m.FaceCount())
	}
	p := surface.Pick{Triangle: m.FaceIndices(face), Point: m.Triangle(face).Center()}
	if point != "" {
		v, err := parsePoint(point)
		if err != nil {
			return surface.Pick{}, err
		}
		p.Point = v
	}
	return p, nil
}
