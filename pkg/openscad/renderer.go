// Package openscad turns OpenSCAD sources into STL models by running the
// openscad binary.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/philipparndt/gosurf/pkg/stl"
)

// ErrNotInstalled is returned when the openscad binary cannot be found.
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// Matches: use <file.scad>, include <file.scad>, use <./file.scad>, etc.
var dependencyPattern = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	workDir string
	binary  string
	logger  *slog.Logger
}

// NewRenderer creates a renderer resolving relative paths against workDir.
// A nil logger uses slog.Default.
func NewRenderer(workDir string, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{
		workDir: workDir,
		binary:  "openscad",
		logger:  logger,
	}
}

// IsSource reports whether path looks like an OpenSCAD file
func IsSource(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".scad")
}

func (r *Renderer) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.workDir, path)
}

// RenderToSTL renders an OpenSCAD file to an STL file
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	binary, err := exec.LookPath(r.binary)
	if err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.logger.Debug("rendering", "source", scadFile, "output", outputFile)
	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(stderr.String())
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(stdout.String())
		}
		return fmt.Errorf("failed to render %s: %w%s", scadFile, err, msg.String())
	}

	return nil
}

// Render renders scadFile into a temporary STL and parses it
func (r *Renderer) Render(ctx context.Context, scadFile string) (*stl.Model, error) {
	dir, err := os.MkdirTemp("", "gosurf-scad-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	output := filepath.Join(dir, strings.TrimSuffix(filepath.Base(scadFile), filepath.Ext(scadFile))+".stl")
	if err := r.RenderToSTL(ctx, scadFile, output); err != nil {
		return nil, err
	}
	model, err := stl.Parse(output)
	if err != nil {
		return nil, fmt.Errorf("failed to read rendered %s: %w", scadFile, err)
	}
	if model.Name == "" {
		model.Name = filepath.Base(scadFile)
	}
	return model, nil
}

// ResolveDependencies returns scadFile and every file it reaches through
// use/include statements, as absolute paths, each once
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	var walk func(file string) error
	walk = func(file string) error {
		if visited[file] {
			return nil
		}
		visited[file] = true
		deps = append(deps, file)

		next, err := r.parseDependencies(file)
		if err != nil {
			return err
		}
		for _, dep := range next {
			if err := walk(dep); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(filepath.Clean(r.abs(scadFile))); err != nil {
		return nil, err
	}
	return deps, nil
}

// parseDependencies parses a single OpenSCAD file to find use/include statements
func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scanner := bufio.NewScanner(file)
	scadDir := filepath.Dir(scadFile)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		if matches := dependencyPattern.FindStringSubmatch(line); len(matches) > 1 {
			deps = append(deps, r.resolveDepPath(matches[1], scadDir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}
	return deps, nil
}

// resolveDepPath resolves a dependency relative to the including file, then
// to the work directory
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	local := filepath.Join(currentDir, depPath)
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(local)
	}
	if _, err := os.Stat(local); err == nil {
		return filepath.Clean(local)
	}
	return filepath.Clean(filepath.Join(r.workDir, depPath))
}
