package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// DistToLine returns the perpendicular distance from pt to the infinite line through origin
// along direction. The direction does not need to be normalized. If it is degenerate the
// distance from origin is returned instead.
func DistToLine(origin, direction, pt r3.Vector) float64 {
	if IsDegenerate(direction) {
		return pt.Sub(origin).Norm()
	}
	return pt.Sub(origin).Cross(direction.Normalize()).Norm()
}

// ClosestPointSegmentPoint takes a line segment defined by two points, and a third point, and
// returns the point on the segment closest to the third point.
func ClosestPointSegmentPoint(segA, segB, pt r3.Vector) r3.Vector {
	ab := segB.Sub(segA)
	lenSq := ab.Norm2()
	if lenSq < degenerateEpsilon {
		return segA
	}
	t := pt.Sub(segA).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return segA.Add(ab.Mul(t))
}

// DistToSegment returns the distance from pt to the closest point on the segment between segA
// and segB.
func DistToSegment(segA, segB, pt r3.Vector) float64 {
	return pt.Sub(ClosestPointSegmentPoint(segA, segB, pt)).Norm()
}
