package spatialmath

import (
	"fmt"

	"github.com/golang/geo/r3"
)

// degenerateEpsilon is compared against squared lengths. Anything below it is treated as a
// zero-length vector.
const degenerateEpsilon = 1e-6

// Ray is a half line starting at Origin and pointing along Direction. Direction is expected to
// be normalized; NewRay does that for callers that cannot guarantee it.
type Ray struct {
	Origin    r3.Vector
	Direction r3.Vector
}

// NewRay returns a ray with a normalized direction. A zero-length direction is kept as is, and
// every distance computed against such a ray degrades to a distance from its origin.
func NewRay(origin, direction r3.Vector) Ray {
	if !IsDegenerate(direction) {
		direction = direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point `length` units along the ray.
func (r Ray) At(length float64) r3.Vector {
	return r.Origin.Add(r.Direction.Mul(length))
}

// Degenerate reports whether the ray has no usable direction.
func (r Ray) Degenerate() bool {
	return IsDegenerate(r.Direction)
}

// String returns a human readable string that represents the ray.
func (r Ray) String() string {
	return fmt.Sprintf("Ray: origin (%.3f, %.3f, %.3f), direction (%.3f, %.3f, %.3f)",
		r.Origin.X, r.Origin.Y, r.Origin.Z, r.Direction.X, r.Direction.Y, r.Direction.Z)
}

// IsDegenerate reports whether v is numerically indistinguishable from the zero vector.
func IsDegenerate(v r3.Vector) bool {
	return v.Norm2() < degenerateEpsilon
}
