// Package surface recognises the surface under a pick on a triangle mesh and
// measures between two picks.
//
// A pick is classified in order: a coplanar patch (Planar, or Circular when
// its boundary is round), otherwise a cylinder fitted to the whole mesh
// (Cylindrical), otherwise Freeform. Reported lengths are in model units,
// that is mesh lengths divided by the mesh scale.
package surface

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/mesh"
)

// ErrInvalidPick reports a pick that does not identify a face of the mesh.
var ErrInvalidPick = errors.New("invalid pick")

// Analyzer classifies picks. It is safe for concurrent use when its cache is.
type Analyzer struct {
	cfg    Config
	logger *slog.Logger
	cache  *mesh.Cache
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) {
		a.logger = logger
	}
}

// WithCache shares a face table cache. A nil cache disables caching. The
// cache keeps only recently used tables; hosts that rebuild a mesh in place
// should call Forget on it.
func WithCache(cache *mesh.Cache) Option {
	return func(a *Analyzer) {
		a.cache = cache
	}
}

// NewAnalyzer validates cfg and returns an analyzer with its own cache of
// mesh.DefaultCacheSize tables.
func NewAnalyzer(cfg Config, opts ...Option) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &Analyzer{
		cfg:    cfg,
		logger: slog.Default(),
		cache:  mesh.NewCache(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a, nil
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() Config { return a.cfg }

// Cache returns the face table cache, or nil.
func (a *Analyzer) Cache() *mesh.Cache { return a.cache }

// Analyze describes the surface under pick p on m.
func (a *Analyzer) Analyze(m *mesh.Mesh, p Pick) (Descriptor, error) {
	if m == nil {
		return Descriptor{}, fmt.Errorf("%w: nil mesh", mesh.ErrInvalidMesh)
	}
	if !finite(p.Point) {
		return Descriptor{}, fmt.Errorf("%w: point %v is not finite", ErrInvalidPick, p.Point)
	}

	t, err := a.table(m)
	if err != nil {
		return Descriptor{}, fmt.Errorf("failed to analyze %q: %w", m.Name, err)
	}

	scale := m.UnitScale()
	point := p.Point.Mul(1 / scale)
	if m.IsEmpty() {
		a.logger.Debug("empty mesh", "mesh", m.Name)
		return Descriptor{Kind: Freeform, Point: point}, nil
	}
	for _, i := range p.Triangle {
		if int(i) >= m.VertexCount() {
			return Descriptor{}, fmt.Errorf("%w: vertex %d out of range (%d vertices)", ErrInvalidPick, i, m.VertexCount())
		}
	}
	seed, ok := t.Lookup(p.Triangle)
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: triangle %v is not a face of %q", ErrInvalidPick, p.Triangle, m.Name)
	}

	normal := pickNormal(t, seed, p.Triangle)
	var d Descriptor
	if normal.IsZero() {
		d, _ = patchMetrics(t, []int{seed}, scale)
		d.Kind = Freeform
	} else if faces, planar := a.region(t, seed, normal); planar {
		d = a.planar(t, faces, normal, scale)
	} else {
		d = a.curved(t, scale)
	}
	d.Normal = normal
	d.Point = point

	a.logger.Debug("analyzed pick",
		"mesh", m.Name, "face", seed, "kind", d.Kind,
		"faces", d.FaceCount, "area", d.Area, "perimeter", d.Perimeter)
	return d, nil
}

// Measure analyzes both picks on m and measures between them.
func (a *Analyzer) Measure(m *mesh.Mesh, first, second Pick) (MeasurementResult, error) {
	d1, err := a.Analyze(m, first)
	if err != nil {
		return MeasurementResult{}, fmt.Errorf("first pick: %w", err)
	}
	d2, err := a.Analyze(m, second)
	if err != nil {
		return MeasurementResult{}, fmt.Errorf("second pick: %w", err)
	}
	return Distance(d1, d2), nil
}

func (a *Analyzer) table(m *mesh.Mesh) (*mesh.Table, error) {
	if a.cache != nil {
		return a.cache.Table(m)
	}
	return mesh.NewTable(m)
}

// pickNormal returns the unit geometric normal of the picked face, falling
// back to the mean of its vertex normals for a degenerate face.
func pickNormal(t *mesh.Table, seed int, tri [3]uint32) geometry.Vector3 {
	if n := t.Face(seed).Normal; !n.IsZero() {
		return n
	}
	var sum geometry.Vector3
	for _, i := range tri {
		n, ok := t.Mesh().VertexNormal(i)
		if !ok {
			return geometry.Vector3{}
		}
		sum = sum.Add(n)
	}
	n := sum.Normalize()
	if !finite(n) {
		return geometry.Vector3{}
	}
	return n
}

func finite(v geometry.Vector3) bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Analyze describes pick p on m with the default configuration and no cache.
func Analyze(m *mesh.Mesh, p Pick) (Descriptor, error) {
	return defaultAnalyzer().Analyze(m, p)
}

// Measure measures between two picks on m with the default configuration.
func Measure(m *mesh.Mesh, first, second Pick) (MeasurementResult, error) {
	return defaultAnalyzer().Measure(m, first, second)
}

func defaultAnalyzer() *Analyzer {
	return &Analyzer{cfg: DefaultConfig(), logger: slog.Default()}
}
