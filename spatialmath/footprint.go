package spatialmath

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Footprint is a closed polygon projected onto the horizontal X/Z plane. The vertical axis is
// Y, so a Footprint ignores height entirely. The closing edge from the last vertex back to the
// first is implicit.
type Footprint []r2.Point

// NewFootprint projects vertices onto the horizontal plane.
func NewFootprint(vertices []r3.Vector) Footprint {
	fp := make(Footprint, len(vertices))
	for i, v := range vertices {
		fp[i] = HorizontalPoint(v)
	}
	return fp
}

// HorizontalPoint drops the vertical component of v.
func HorizontalPoint(v r3.Vector) r2.Point {
	return r2.Point{X: v.X, Y: v.Z}
}

// Valid reports whether the footprint has enough vertices to enclose an area.
func (fp Footprint) Valid() bool {
	return len(fp) >= 3
}

// Bounds returns the axis aligned bounding rectangle of the footprint.
func (fp Footprint) Bounds() r2.Rect {
	return r2.RectFromPoints(fp...)
}

// Contains applies the even-odd rule with a ray cast along +X. Points exactly on an edge may
// land on either side. Horizontal and zero-length edges never count as crossings.
func (fp Footprint) Contains(pt r2.Point) bool {
	if !fp.Valid() {
		return false
	}
	inside := false
	for i, j := 0, len(fp)-1; i < len(fp); j, i = i, i+1 {
		pi, pj := fp[i], fp[j]
		if (pi.Y > pt.Y) != (pj.Y > pt.Y) &&
			pt.X < (pj.X-pi.X)*(pt.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
