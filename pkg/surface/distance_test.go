package surface

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	first := Descriptor{Normal: v(0, 0, 2), Point: v(1, 1, 0)}
	second := Descriptor{Normal: v(0, 0, -1), Point: v(4, 5, 7)}

	r := Distance(first, second)
	assert.InDelta(t, 7, r.Perpendicular, 1e-12, "normal is normalized before projecting")
	assert.InDelta(t, math.Sqrt(9+16+49), r.Direct, 1e-12)
	assert.Equal(t, v(4, 5, 0), r.Projected)
	assert.InDelta(t, 180, r.Angle, 1e-9)
	assert.True(t, r.Parallel(0.5))
	assert.Equal(t, first, r.First)
	assert.Equal(t, second, r.Second)
}

func TestDistanceZeroNormal(t *testing.T) {
	r := Distance(Descriptor{Point: v(0, 0, 0)}, Descriptor{Normal: v(1, 0, 0), Point: v(3, 4, 0)})
	assert.Equal(t, 0.0, r.Perpendicular)
	assert.InDelta(t, 5, r.Direct, 1e-12)
	assert.Equal(t, v(3, 4, 0), r.Projected)
	assert.Equal(t, 0.0, r.Angle)
}

func TestDistanceOblique(t *testing.T) {
	first := Descriptor{Normal: v(1, 0, 0), Point: v(0, 0, 0)}
	second := Descriptor{Normal: v(0, 1, 0), Point: v(2, 3, 0)}
	r := Distance(first, second)
	assert.InDelta(t, 2, r.Perpendicular, 1e-12)
	assert.InDelta(t, 90, r.Angle, 1e-9)
	assert.False(t, r.Parallel(5))
}

func TestDistancePerpendicularNeverExceedsDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	random := func() float64 { return rng.Float64()*200 - 100 }

	for i := 0; i < 10000; i++ {
		first := Descriptor{Normal: v(random(), random(), random()), Point: v(random(), random(), random())}
		second := Descriptor{Normal: v(random(), random(), random()), Point: v(random(), random(), random())}
		r := Distance(first, second)
		if r.Perpendicular > r.Direct {
			t.Fatalf("perpendicular %v > direct %v for %+v / %+v", r.Perpendicular, r.Direct, first, second)
		}
		if r.Perpendicular < 0 {
			t.Fatalf("negative perpendicular %v", r.Perpendicular)
		}
	}
}

func FuzzDistance(f *testing.F) {
	f.Add(0.0, 0.0, 1.0, 1.0, 2.0, 3.0)
	f.Add(1e-300, 0.0, 0.0, 1e300, -1e300, 0.0)
	f.Fuzz(func(t *testing.T, nx, ny, nz, px, py, pz float64) {
		for _, c := range []float64{nx, ny, nz, px, py, pz} {
			if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) > 1e150 {
				t.Skip()
			}
		}
		r := Distance(Descriptor{Normal: v(nx, ny, nz)}, Descriptor{Point: v(px, py, pz)})
		if r.Perpendicular > r.Direct {
			t.Errorf("perpendicular %v > direct %v", r.Perpendicular, r.Direct)
		}
	})
}
