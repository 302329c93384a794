package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	normalized := NewVector3(3, 4, 0).Normalize()
	if math.Abs(normalized.Length()-1) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Length())
	}

	zero := Vector3{}.Normalize()
	if !zero.IsZero() {
		t.Errorf("Normalize of zero vector: expected zero, got %v", zero)
	}
	if math.IsNaN(zero.X) || math.IsNaN(zero.Y) || math.IsNaN(zero.Z) {
		t.Errorf("Normalize of zero vector produced NaN: %v", zero)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	result := NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6))

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Component(t *testing.T) {
	v := NewVector3(1, 2, 3)
	for axis, want := range map[Axis]float64{AxisX: 1, AxisY: 2, AxisZ: 3} {
		if got := v.Component(axis); got != want {
			t.Errorf("Component(%v) = %v, want %v", axis, got, want)
		}
	}
}

func TestDominantAxis(t *testing.T) {
	tests := []struct {
		name string
		v    Vector3
		want Axis
	}{
		{"x", NewVector3(-3, 1, 2), AxisX},
		{"y", NewVector3(0.1, 0.9, -0.2), AxisY},
		{"z", NewVector3(0, 0, -1), AxisZ},
		{"tie prefers x", NewVector3(1, 1, 1), AxisX},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DominantAxis(tt.v); got != tt.want {
				t.Errorf("DominantAxis(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestParseAxis(t *testing.T) {
	for _, s := range []string{"x", "Y", " z "} {
		if _, err := ParseAxis(s); err != nil {
			t.Errorf("ParseAxis(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseAxis("w"); err == nil {
		t.Error("ParseAxis(\"w\") succeeded, want error")
	}
}
