package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// ClosestPointParallelogram returns the point q = a + u*(b-a) + v*(c-a) closest to pt, with u
// and v each clamped to [0, 1], along with the parameters used.
//
// Unclamped u and v minimize |pt - q| analytically over the plane spanned by the two edges,
// the same parametrization used for triangles. A zero-length edge forces its parameter to 0.
// When the edges are parallel the plane is undefined, so pt is projected onto each edge
// separately and the nearer result wins.
func ClosestPointParallelogram(a, b, c, pt r3.Vector) (q r3.Vector, u, v float64) {
	e0 := b.Sub(a)
	e1 := c.Sub(a)
	d := pt.Sub(a)

	e0Degenerate := IsDegenerate(e0)
	e1Degenerate := IsDegenerate(e1)
	switch {
	case e0Degenerate && e1Degenerate:
		return a, 0, 0
	case e0Degenerate:
		v = clamp01(d.Dot(e1) / e1.Norm2())
		return a.Add(e1.Mul(v)), 0, v
	case e1Degenerate:
		u = clamp01(d.Dot(e0) / e0.Norm2())
		return a.Add(e0.Mul(u)), u, 0
	}

	aa := e0.Norm2()
	bb := e0.Dot(e1)
	cc := e1.Norm2()
	det := aa*cc - bb*bb
	if det <= degenerateEpsilon*aa*cc {
		u = clamp01(d.Dot(e0) / aa)
		v = clamp01(d.Dot(e1) / cc)
		qu := a.Add(e0.Mul(u))
		qv := a.Add(e1.Mul(v))
		if pt.Sub(qu).Norm2() <= pt.Sub(qv).Norm2() {
			return qu, u, 0
		}
		return qv, 0, v
	}

	u = clamp01((cc*e0.Dot(d) - bb*e1.Dot(d)) / det)
	v = clamp01((-bb*e0.Dot(d) + aa*e1.Dot(d)) / det)
	return a.Add(e0.Mul(u)).Add(e1.Mul(v)), u, v
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
