package geometry

import (
	"math"
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxCenterAndSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	if size := bbox.Size(); size != NewVector3(10, 20, 30) {
		t.Errorf("Size failed: expected (10,20,30), got %v", size)
	}
	if center := bbox.Center(); center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: expected (5,10,15), got %v", center)
	}
	if math.Abs(bbox.Volume()-6000) > 1e-10 {
		t.Errorf("Volume failed: expected 6000, got %v", bbox.Volume())
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Error("IsEmpty() = false for new box, want true")
	}
	if bbox.Diagonal() != 0 {
		t.Errorf("Diagonal of empty box: expected 0, got %v", bbox.Diagonal())
	}
}

func TestBoundingBoxDistanceTo(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 10, 0))

	tests := []struct {
		name  string
		point Vector3
		want  float64
	}{
		{"inside", NewVector3(5, 5, 0), 0},
		{"on face", NewVector3(10, 5, 0), 0},
		{"beside", NewVector3(13, 5, 0), 3},
		{"corner", NewVector3(13, 14, 0), 5},
		{"above", NewVector3(5, 5, -2), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bbox.DistanceTo(tt.point); math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("DistanceTo() = %v, want %v", got, tt.want)
			}
		})
	}

	if !math.IsInf(NewBoundingBox().DistanceTo(Vector3{}), 1) {
		t.Error("DistanceTo on an empty box should be +Inf")
	}
}
