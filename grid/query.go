package grid

import (
	"math"
	"slices"

	"github.com/golang/geo/r3"

	"go.viam.com/pclabel/pointcloud"
	"go.viam.com/pclabel/spatialmath"
)

// Query kinds, used as metric labels.
const (
	kindLine    = "line"
	kindQuad    = "quad"
	kindPolygon = "polygon"
)

// NearLine returns the points within radius of the line through ray.Origin along ray.Direction.
// Candidate cells are those overlapping the box around the segment from ray.Origin to
// ray.At(length), grown by radius plus one cell so that points near a cell boundary are not
// missed.
//
// The acceptance test measures distance to the infinite line, not to the segment: points behind
// the origin or past the segment end that fall inside a candidate cell are accepted too. Callers
// that need strict segment bounds must filter the result.
func (idx *Index) NearLine(ray spatialmath.Ray, length, radius float64) []int {
	start := ray.Origin
	end := ray.At(length)
	grow := radius + idx.cellSize
	lo := vecMin(start, end).Sub(r3.Vector{X: grow, Y: grow, Z: grow})
	hi := vecMax(start, end).Add(r3.Vector{X: grow, Y: grow, Z: grow})

	return idx.collect(kindLine, lo, hi, func(p r3.Vector) bool {
		return spatialmath.DistToLine(ray.Origin, ray.Direction, p) <= radius
	})
}

// NearQuad returns the points strictly closer than maxDist to the quadrilateral swept between
// two segments: a-b is the current segment, c-d the previous one. The closest point is searched
// on the parallelogram spanned by a->b and a->c; d only widens the candidate box.
func (idx *Index) NearQuad(a, b, c, d r3.Vector, maxDist float64) []int {
	grow := r3.Vector{X: maxDist, Y: maxDist, Z: maxDist}
	lo := vecMin(vecMin(a, b), vecMin(c, d)).Sub(grow)
	hi := vecMax(vecMax(a, b), vecMax(c, d)).Add(grow)
	maxDistSq := maxDist * maxDist

	return idx.collect(kindQuad, lo, hi, func(p r3.Vector) bool {
		q, _, _ := spatialmath.ClosestPointParallelogram(a, b, c, p)
		return p.Sub(q).Norm2() < maxDistSq
	})
}

// InPolygon returns the points whose horizontal (X/Z) projection lies inside the closed polygon
// given by vertices. Height is ignored, so every vertical layer of cells under the polygon's
// footprint is scanned. Fewer than three vertices select nothing.
func (idx *Index) InPolygon(vertices []r3.Vector) []int {
	fp := spatialmath.NewFootprint(vertices)
	rect := fp.Bounds()
	lo := r3.Vector{X: rect.X.Lo, Z: rect.Y.Lo}
	hi := r3.Vector{X: rect.X.Hi, Z: rect.Y.Hi}
	if !fp.Valid() || idx.indexed == 0 || !pointcloud.IsDefined(lo) || !pointcloud.IsDefined(hi) {
		instrumentQuery(kindPolygon, 0, 0)
		return nil
	}
	loCell, hiCell := idx.CellOf(lo), idx.CellOf(hi)
	loCell.J, hiCell.J = idx.minCell.J, idx.maxCell.J

	return idx.collectCells(kindPolygon, loCell, hiCell, func(p r3.Vector) bool {
		return fp.Contains(spatialmath.HorizontalPoint(p))
	})
}

// collect runs accept over every point in the populated cells overlapping the world box
// [lo, hi]. A box with a NaN or infinite corner selects nothing.
func (idx *Index) collect(kind string, lo, hi r3.Vector, accept func(p r3.Vector) bool) []int {
	if idx.indexed == 0 || !pointcloud.IsDefined(lo) || !pointcloud.IsDefined(hi) {
		instrumentQuery(kind, 0, 0)
		return nil
	}
	return idx.collectCells(kind, idx.CellOf(lo), idx.CellOf(hi), accept)
}

// collectCells runs accept over every point in the populated cells of the inclusive cell range
// [lo, hi] and returns the accepted indices in ascending order. A point lives in exactly one
// cell, so no index is tested or returned twice.
func (idx *Index) collectCells(kind string, lo, hi Cell, accept func(p r3.Vector) bool) []int {
	var out []int
	candidates := 0
	idx.forEachCell(lo, hi, func(bucket []int) {
		for _, i := range bucket {
			p, ok := idx.positions.Position(i)
			if !ok {
				continue
			}
			candidates++
			if accept(p) {
				out = append(out, i)
			}
		}
	})
	slices.Sort(out)
	instrumentQuery(kind, candidates, len(out))
	return out
}

// forEachCell calls fn with the bucket of every populated cell in the inclusive range [lo, hi].
// The range is first clipped to the populated bounds. When the clipped range still covers more
// coordinates than there are populated cells, walking the cell map is cheaper than probing every
// coordinate, and visits the same cells.
func (idx *Index) forEachCell(lo, hi Cell, fn func(bucket []int)) {
	lo = Cell{max(lo.I, idx.minCell.I), max(lo.J, idx.minCell.J), max(lo.K, idx.minCell.K)}
	hi = Cell{min(hi.I, idx.maxCell.I), min(hi.J, idx.maxCell.J), min(hi.K, idx.maxCell.K)}
	if lo.I > hi.I || lo.J > hi.J || lo.K > hi.K {
		return
	}

	span := float64(hi.I-lo.I+1) * float64(hi.J-lo.J+1) * float64(hi.K-lo.K+1)
	if span > float64(len(idx.cells)) {
		for c, bucket := range idx.cells {
			if c.I >= lo.I && c.I <= hi.I && c.J >= lo.J && c.J <= hi.J && c.K >= lo.K && c.K <= hi.K {
				fn(bucket)
			}
		}
		return
	}

	for i := lo.I; i <= hi.I; i++ {
		for j := lo.J; j <= hi.J; j++ {
			for k := lo.K; k <= hi.K; k++ {
				if bucket, ok := idx.cells[Cell{i, j, k}]; ok {
					fn(bucket)
				}
			}
		}
	}
}

func vecMin(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y), Z: math.Min(a.Z, b.Z)}
}

func vecMax(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y), Z: math.Max(a.Z, b.Z)}
}
