package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Frame is the principal-component frame of a point cloud
type Frame struct {
	Centroid Vector3
	Values   [3]float64 // Eigenvalues of the covariance, ascending
	Vectors  [3]Vector3 // Unit eigenvectors matching Values
}

// PrincipalFrame computes the covariance eigen-decomposition of points
func PrincipalFrame(points []Vector3) (*Frame, error) {
	if len(points) < 3 {
		return nil, fmt.Errorf("need at least 3 points for a principal frame, got %d", len(points))
	}

	n := float64(len(points))
	var c Vector3
	for _, p := range points {
		c = c.Add(p)
	}
	c = c.Mul(1 / n)

	var cov [6]float64 // xx, xy, xz, yy, yz, zz
	for _, p := range points {
		d := p.Sub(c)
		cov[0] += d.X * d.X
		cov[1] += d.X * d.Y
		cov[2] += d.X * d.Z
		cov[3] += d.Y * d.Y
		cov[4] += d.Y * d.Z
		cov[5] += d.Z * d.Z
	}
	for i := range cov {
		cov[i] /= n
	}

	sym := mat.NewSymDense(3, []float64{
		cov[0], cov[1], cov[2],
		cov[1], cov[3], cov[4],
		cov[2], cov[4], cov[5],
	})

	var eigen mat.EigenSym
	if ok := eigen.Factorize(sym, true); !ok {
		return nil, fmt.Errorf("covariance eigen-decomposition failed")
	}

	values := eigen.Values(nil)
	var vectors mat.Dense
	eigen.VectorsTo(&vectors)

	frame := &Frame{Centroid: c}
	for i := 0; i < 3; i++ {
		frame.Values[i] = values[i]
		frame.Vectors[i] = NewVector3(vectors.At(0, i), vectors.At(1, i), vectors.At(2, i)).Normalize()
	}
	return frame, nil
}

// Normal returns the direction of least variance, the best-fit plane normal
func (f *Frame) Normal() Vector3 {
	return f.Vectors[0]
}

// RevolutionAxis returns the eigenvector whose eigenvalue is most isolated.
// A surface of revolution spreads equally in the two radial directions, so
// the remaining direction is its axis whether the shape is long or flat.
func (f *Frame) RevolutionAxis() Vector3 {
	best := 0
	bestScore := -math.MaxFloat64
	for i := 0; i < 3; i++ {
		j, k := (i+1)%3, (i+2)%3
		gap := math.Abs(f.Values[j] - f.Values[k])
		spread := math.Min(math.Abs(f.Values[i]-f.Values[j]), math.Abs(f.Values[i]-f.Values[k]))
		score := spread - gap
		if score > bestScore {
			best = i
			bestScore = score
		}
	}
	return f.Vectors[best]
}
