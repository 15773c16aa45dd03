package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"
)

// NewVector convenience method for creating a vector.
func NewVector(x, y, z float64) r3.Vector {
	return r3.Vector{X: x, Y: y, Z: z}
}

// Undefined is the position stored for a point whose position is missing.
func Undefined() r3.Vector {
	nan := math.NaN()
	return r3.Vector{X: nan, Y: nan, Z: nan}
}

// IsDefined reports whether every component of v is a finite number.
func IsDefined(v r3.Vector) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Vectors is a series of three-dimensional positions in load order. A position with a NaN or
// infinite component is undefined.
type Vectors []r3.Vector

// Len returns the number of vectors.
func (vs Vectors) Len() int {
	return len(vs)
}

// Position returns vector i and whether it is defined.
func (vs Vectors) Position(i int) (r3.Vector, bool) {
	if i < 0 || i >= len(vs) {
		return r3.Vector{}, false
	}
	v := vs[i]
	return v, IsDefined(v)
}
