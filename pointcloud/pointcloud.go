// Package pointcloud holds the labeled point set that the labeling tools operate on.
//
// Points never move and are never inserted or removed after load: a point is identified solely
// by its index in load order. What changes over a session is each point's label and display
// color, both of which live in a LabeledCloud.
package pointcloud

import (
	"math"

	"github.com/golang/geo/r3"
)

// PositionSource is an ordered, immutable sequence of point positions. Position reports false
// for a point whose position is undefined; such points keep their index but are never indexed
// spatially.
type PositionSource interface {
	// Len returns the number of points, defined or not.
	Len() int

	// Position returns the position of point i and whether it is defined.
	Position(i int) (r3.Vector, bool)
}

// MetaData is data about the defined points in a position source.
type MetaData struct {
	Defined int

	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// NewMetaData returns an empty MetaData ready for Merge.
func NewMetaData() MetaData {
	return MetaData{
		MinX: math.MaxFloat64,
		MinY: math.MaxFloat64,
		MinZ: math.MaxFloat64,
		MaxX: -math.MaxFloat64,
		MaxY: -math.MaxFloat64,
		MaxZ: -math.MaxFloat64,
	}
}

// Merge updates the bounds to include v.
func (meta *MetaData) Merge(v r3.Vector) {
	meta.Defined++

	if v.X > meta.MaxX {
		meta.MaxX = v.X
	}
	if v.Y > meta.MaxY {
		meta.MaxY = v.Y
	}
	if v.Z > meta.MaxZ {
		meta.MaxZ = v.Z
	}

	if v.X < meta.MinX {
		meta.MinX = v.X
	}
	if v.Y < meta.MinY {
		meta.MinY = v.Y
	}
	if v.Z < meta.MinZ {
		meta.MinZ = v.Z
	}
}

// Empty reports whether no point has been merged.
func (meta MetaData) Empty() bool {
	return meta.Defined == 0
}

// Min returns the minimum corner of the bounds.
func (meta MetaData) Min() r3.Vector {
	return r3.Vector{X: meta.MinX, Y: meta.MinY, Z: meta.MinZ}
}

// Max returns the maximum corner of the bounds.
func (meta MetaData) Max() r3.Vector {
	return r3.Vector{X: meta.MaxX, Y: meta.MaxY, Z: meta.MaxZ}
}

// ComputeMetaData scans src and returns the bounds of its defined points.
func ComputeMetaData(src PositionSource) MetaData {
	meta := NewMetaData()
	for i := 0; i < src.Len(); i++ {
		if p, ok := src.Position(i); ok {
			meta.Merge(p)
		}
	}
	return meta
}
