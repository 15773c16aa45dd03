// Package grid implements a uniform grid spatial index over a fixed point set.
//
// The grid is sparse: only cells that hold at least one point exist. Each defined point lives in
// exactly one cell, floor(position/cellSize) componentwise, and cells keep their points in load
// order. The index is built once and is read-only afterwards, so queries may run concurrently.
package grid

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"

	"go.viam.com/pclabel/logging"
	"go.viam.com/pclabel/pointcloud"
	"go.viam.com/pclabel/utils"
)

// Cell is the integer coordinate of a grid cell.
type Cell struct {
	I, J, K int64
}

// String returns "(i, j, k)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.I, c.J, c.K)
}

// Index is a uniform grid over a point set. The zero value is not usable; use New.
type Index struct {
	cellSize  float64
	positions pointcloud.PositionSource
	cells     map[Cell][]int
	indexed   int

	// minCell and maxCell bound every populated cell and are only meaningful when indexed > 0.
	minCell, maxCell Cell
}

// New builds an index over src with the given cell size. Undefined points are skipped. A
// non-positive or non-finite cell size yields an empty index: every query on it returns no
// points.
func New(cellSize float64, src pointcloud.PositionSource, logger logging.Logger) *Index {
	idx := &Index{
		cellSize:  cellSize,
		positions: src,
		cells:     make(map[Cell][]int),
	}
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		logger.Warnw("invalid cell size, spatial index left empty", "cell_size", cellSize)
		return idx
	}

	for i := 0; i < src.Len(); i++ {
		p, ok := src.Position(i)
		if !ok {
			continue
		}
		c := idx.CellOf(p)
		idx.cells[c] = append(idx.cells[c], i)
		if idx.indexed == 0 {
			idx.minCell, idx.maxCell = c, c
		} else {
			idx.minCell = Cell{min(idx.minCell.I, c.I), min(idx.minCell.J, c.J), min(idx.minCell.K, c.K)}
			idx.maxCell = Cell{max(idx.maxCell.I, c.I), max(idx.maxCell.J, c.J), max(idx.maxCell.K, c.K)}
		}
		idx.indexed++
	}

	if skipped := src.Len() - idx.indexed; skipped > 0 {
		logger.Warnw("skipped points without a position", "skipped", skipped)
	}
	logger.Debugw("built spatial index",
		"points", src.Len(), "indexed", idx.indexed, "cells", len(idx.cells), "cell_size", cellSize)
	return idx
}

// CellOf returns the cell containing p.
func (idx *Index) CellOf(p r3.Vector) Cell {
	return Cell{
		I: utils.FloorToInt64(p.X / idx.cellSize),
		J: utils.FloorToInt64(p.Y / idx.cellSize),
		K: utils.FloorToInt64(p.Z / idx.cellSize),
	}
}

// CellSize returns the edge length of a cell.
func (idx *Index) CellSize() float64 {
	return idx.cellSize
}

// Len returns the number of points in the source, defined or not.
func (idx *Index) Len() int {
	return idx.positions.Len()
}

// Indexed returns the number of points stored in cells.
func (idx *Index) Indexed() int {
	return idx.indexed
}

// NumCells returns the number of populated cells.
func (idx *Index) NumCells() int {
	return len(idx.cells)
}

// Bucket returns the point indices stored in c, in load order. The returned slice must not be
// modified.
func (idx *Index) Bucket(c Cell) []int {
	return idx.cells[c]
}

// Bounds returns the smallest and largest populated cell coordinate on each axis. ok is false
// for an empty index.
func (idx *Index) Bounds() (lo, hi Cell, ok bool) {
	if idx.indexed == 0 {
		return Cell{}, Cell{}, false
	}
	return idx.minCell, idx.maxCell, true
}
