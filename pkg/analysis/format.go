package analysis

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gosurf/pkg/geometry"
	"github.com/philipparndt/gosurf/pkg/surface"
)

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatDescriptor renders a surface descriptor as indented lines
func FormatDescriptor(d surface.Descriptor, unit string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  Kind:        %s\n", d.Kind)
	fmt.Fprintf(&b, "  Point:       %s\n", FormatVector(d.Point))
	if d.Normal.IsZero() {
		fmt.Fprintf(&b, "  Normal:      undefined\n")
	} else {
		fmt.Fprintf(&b, "  Normal:      %s\n", FormatVector(d.Normal))
	}
	fmt.Fprintf(&b, "  Area:        %s²\n", FormatMeasurement(d.Area, unit))
	fmt.Fprintf(&b, "  Perimeter:   %s\n", FormatMeasurement(d.Perimeter, unit))
	if d.Centroid != nil {
		fmt.Fprintf(&b, "  Centroid:    %s\n", FormatVector(*d.Centroid))
	}
	fmt.Fprintf(&b, "  Faces:       %d (%d boundary vertices, %d loops)\n", d.FaceCount, d.BoundaryVertices, d.Loops)

	if d.Diameter != nil {
		fmt.Fprintf(&b, "  Diameter:    %s\n", FormatMeasurement(*d.Diameter, unit))
		if r, ok := d.Radius(); ok {
			fmt.Fprintf(&b, "  Radius:      %s\n", FormatMeasurement(r, unit))
		}
	}
	switch {
	case d.Axis != nil:
		fmt.Fprintf(&b, "  Axis:        %s\n", *d.Axis)
	case d.Direction != nil:
		fmt.Fprintf(&b, "  Axis:        %s\n", FormatVector(*d.Direction))
	}
	if d.Center != nil {
		fmt.Fprintf(&b, "  Center:      %s\n", FormatVector(*d.Center))
	}
	return b.String()
}

// FormatResult renders both surfaces of a measurement and the distances between them
func FormatResult(r surface.MeasurementResult, unit string) string {
	var b strings.Builder
	b.WriteString("First surface:\n")
	b.WriteString(FormatDescriptor(r.First, unit))
	b.WriteString("Second surface:\n")
	b.WriteString(FormatDescriptor(r.Second, unit))
	b.WriteString("Distance:\n")
	fmt.Fprintf(&b, "  Perpendicular: %s\n", FormatMeasurement(r.Perpendicular, unit))
	fmt.Fprintf(&b, "  Direct:        %s\n", FormatMeasurement(r.Direct, unit))
	fmt.Fprintf(&b, "  Projected:     %s\n", FormatVector(r.Projected))
	fmt.Fprintf(&b, "  Angle:         %.3f°\n", r.Angle)
	return b.String()
}
