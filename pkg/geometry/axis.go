package geometry

import (
	"fmt"
	"math"
	"strings"
)

// Axis identifies one of the three canonical coordinate axes
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Axes lists the canonical axes in candidate order
var Axes = [3]Axis{AxisX, AxisY, AxisZ}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Unit returns the unit vector along the axis
func (a Axis) Unit() Vector3 {
	switch a {
	case AxisX:
		return NewVector3(1, 0, 0)
	case AxisY:
		return NewVector3(0, 1, 0)
	default:
		return NewVector3(0, 0, 1)
	}
}

// ParseAxis parses "x", "y" or "z" (any case)
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("invalid axis: %q (must be x, y or z)", s)
}

// DominantAxis returns the axis with the largest absolute component of v.
// Ties resolve in X, Y, Z order.
func DominantAxis(v Vector3) Axis {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	if ax >= ay && ax >= az {
		return AxisX
	}
	if ay >= az {
		return AxisY
	}
	return AxisZ
}

// AlignedAxis returns the canonical axis parallel to the unit vector dir
// when the angle between them has a cosine above minCos.
func AlignedAxis(dir Vector3, minCos float64) (Axis, bool) {
	axis := DominantAxis(dir)
	if math.Abs(dir.Component(axis)) > minCos {
		return axis, true
	}
	return axis, false
}
