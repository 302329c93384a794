package surface

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a tolerance outside its valid range.
var ErrInvalidConfig = errors.New("invalid surface config")

// RegionMode selects how the faces of a picked surface are gathered.
type RegionMode string

const (
	// RegionGlobal gathers every coplanar face of the mesh, connected or not.
	RegionGlobal RegionMode = "global"
	// RegionConnected flood-fills across shared edges from the picked face.
	RegionConnected RegionMode = "connected"
)

// CircleConfig tunes circle detection on planar boundaries.
type CircleConfig struct {
	MinBoundaryVertices int     `toml:"min_boundary_vertices"` // fit only above this many boundary vertices
	MaxRelativeStdDev   float64 `toml:"max_relative_stddev"`   // radius stddev / mean
	MinRadius           float64 `toml:"min_radius"`            // in model units
}

// CylinderConfig tunes the curved-surface axis search.
type CylinderConfig struct {
	BandFraction      float64 `toml:"band_fraction"`       // half-width of the equatorial band, fraction of the extent
	MaxRelativeStdDev float64 `toml:"max_relative_stddev"` // radius stddev / mean
	MinRadius         float64 `toml:"min_radius"`          // in model units
	PrincipalAxis     bool    `toml:"principal_axis"`      // also try the PCA axis of the vertex cloud
	MaxAxialNormal    float64 `toml:"max_axial_normal"`    // mean |cos| between side-face normals and the axis
}

// Config holds every tolerance used by the analyzer.
type Config struct {
	CoplanarCosine     float64    `toml:"coplanar_cosine"`
	PlanarFaceFraction float64    `toml:"planar_face_fraction"`
	Region             RegionMode `toml:"region"`

	// Connected-region options, as fractions of the mesh diagonal
	FlatnessTolerance float64 `toml:"flatness_tolerance"`
	MergeIslands      bool    `toml:"merge_islands"`
	MergeRadius       float64 `toml:"merge_radius"`

	Circle   CircleConfig   `toml:"circle"`
	Cylinder CylinderConfig `toml:"cylinder"`
}

// DefaultConfig returns the stock tolerances.
func DefaultConfig() Config {
	return Config{
		CoplanarCosine:     0.95,
		PlanarFaceFraction: 0.20,
		Region:             RegionGlobal,
		FlatnessTolerance:  0.002,
		MergeIslands:       true,
		MergeRadius:        0.01,
		Circle: CircleConfig{
			MinBoundaryVertices: 10,
			MaxRelativeStdDev:   0.15,
			MinRadius:           0.5,
		},
		Cylinder: CylinderConfig{
			BandFraction:      0.15,
			MaxRelativeStdDev: 0.20,
			MinRadius:         0.5,
			PrincipalAxis:     true,
			MaxAxialNormal:    0.25,
		},
	}
}

// Validate checks that every tolerance is usable.
func (c Config) Validate() error {
	switch {
	case c.CoplanarCosine <= 0 || c.CoplanarCosine >= 1:
		return fmt.Errorf("%w: coplanar_cosine %v must be in (0, 1)", ErrInvalidConfig, c.CoplanarCosine)
	case c.PlanarFaceFraction < 0 || c.PlanarFaceFraction >= 1:
		return fmt.Errorf("%w: planar_face_fraction %v must be in [0, 1)", ErrInvalidConfig, c.PlanarFaceFraction)
	case c.Region != RegionGlobal && c.Region != RegionConnected:
		return fmt.Errorf("%w: region %q must be %q or %q", ErrInvalidConfig, c.Region, RegionGlobal, RegionConnected)
	case c.FlatnessTolerance < 0:
		return fmt.Errorf("%w: flatness_tolerance %v is negative", ErrInvalidConfig, c.FlatnessTolerance)
	case c.MergeRadius < 0:
		return fmt.Errorf("%w: merge_radius %v is negative", ErrInvalidConfig, c.MergeRadius)
	case c.Circle.MinBoundaryVertices < 2:
		return fmt.Errorf("%w: circle.min_boundary_vertices %d must be at least 2", ErrInvalidConfig, c.Circle.MinBoundaryVertices)
	case c.Circle.MaxRelativeStdDev <= 0:
		return fmt.Errorf("%w: circle.max_relative_stddev must be positive", ErrInvalidConfig)
	case c.Circle.MinRadius < 0:
		return fmt.Errorf("%w: circle.min_radius is negative", ErrInvalidConfig)
	case c.Cylinder.BandFraction <= 0 || c.Cylinder.BandFraction > 0.5:
		return fmt.Errorf("%w: cylinder.band_fraction %v must be in (0, 0.5]", ErrInvalidConfig, c.Cylinder.BandFraction)
	case c.Cylinder.MaxRelativeStdDev <= 0:
		return fmt.Errorf("%w: cylinder.max_relative_stddev must be positive", ErrInvalidConfig)
	case c.Cylinder.MinRadius < 0:
		return fmt.Errorf("%w: cylinder.min_radius is negative", ErrInvalidConfig)
	case c.Cylinder.MaxAxialNormal <= 0 || c.Cylinder.MaxAxialNormal > 1:
		return fmt.Errorf("%w: cylinder.max_axial_normal %v must be in (0, 1]", ErrInvalidConfig, c.Cylinder.MaxAxialNormal)
	}
	return nil
}
