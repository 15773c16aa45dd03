package pointcloud

import (
	"image/color"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go.viam.com/pclabel/utils"
)

// LabeledCloud owns the per-point display color and label of a fixed point set. It is the
// in-process stand-in for the renderer: every write is change-detected, and indices whose color
// changed are collected until Flush so the renderer only re-uploads what moved.
//
// LabeledCloud is not safe for concurrent use.
type LabeledCloud struct {
	positions  Vectors
	initColors []color.NRGBA
	colors     []color.NRGBA
	labels     []Label
	paintColor color.NRGBA

	dirty map[int]struct{}
}

// NewLabeledCloud creates a cloud where every point starts unclassified and colored by
// coloring. Undefined points get the coloring of the zero vector.
func NewLabeledCloud(positions Vectors, coloring Coloring, paintColor color.NRGBA) *LabeledCloud {
	if coloring == nil {
		coloring = WhiteColoring()
	}
	n := len(positions)
	lc := &LabeledCloud{
		positions:  positions,
		initColors: make([]color.NRGBA, n),
		colors:     make([]color.NRGBA, n),
		labels:     make([]Label, n),
		paintColor: paintColor,
		dirty:      make(map[int]struct{}),
	}
	for i := range positions {
		p, ok := positions.Position(i)
		if !ok {
			p = r3.Vector{}
		}
		lc.initColors[i] = coloring(p)
		lc.colors[i] = lc.initColors[i]
	}
	return lc
}

// Len returns the number of points.
func (lc *LabeledCloud) Len() int {
	return len(lc.positions)
}

// Position returns the position of point i and whether it is defined.
func (lc *LabeledCloud) Position(i int) (r3.Vector, bool) {
	return lc.positions.Position(i)
}

// Positions returns the underlying positions.
func (lc *LabeledCloud) Positions() Vectors {
	return lc.positions
}

// Color returns the current display color of point i.
func (lc *LabeledCloud) Color(i int) color.NRGBA {
	return lc.colors[i]
}

// SetColor sets the display color of point i and reports whether it changed.
func (lc *LabeledCloud) SetColor(i int, c color.NRGBA) bool {
	if lc.colors[i] == c {
		return false
	}
	lc.colors[i] = c
	lc.dirty[i] = struct{}{}
	return true
}

// InitColor returns the load-time color of point i.
func (lc *LabeledCloud) InitColor(i int) color.NRGBA {
	return lc.initColors[i]
}

// PaintColor returns the color used for classified points.
func (lc *LabeledCloud) PaintColor() color.NRGBA {
	return lc.paintColor
}

// BaseColor is the color point i shows when it is neither highlighted nor being painted: the
// paint color when classified, its load-time color otherwise.
func (lc *LabeledCloud) BaseColor(i int) color.NRGBA {
	if lc.labels[i] == Classified {
		return lc.paintColor
	}
	return lc.initColors[i]
}

// Label returns the label of point i.
func (lc *LabeledCloud) Label(i int) Label {
	return lc.labels[i]
}

// SetLabel sets the label of point i. It does not touch the display color.
func (lc *LabeledCloud) SetLabel(i int, l Label) {
	lc.labels[i] = l
}

// Labels returns a copy of every label.
func (lc *LabeledCloud) Labels() []Label {
	out := make([]Label, len(lc.labels))
	copy(out, lc.labels)
	return out
}

// ApplyLabels replaces every label and resyncs the color of each point whose label changed. It
// returns the number of points whose label changed. A label slice of the wrong length means it
// was captured from a different point set, so ApplyLabels panics.
func (lc *LabeledCloud) ApplyLabels(labels []Label) int {
	if len(labels) != len(lc.labels) {
		panic(utils.NewSizeMismatchError("label snapshot", len(lc.labels), len(labels)))
	}
	changed := 0
	for i, l := range labels {
		if lc.labels[i] == l {
			continue
		}
		lc.labels[i] = l
		lc.SetColor(i, lc.BaseColor(i))
		changed++
	}
	return changed
}

// Dirty returns the number of points whose color changed since the last Flush.
func (lc *LabeledCloud) Dirty() int {
	return len(lc.dirty)
}

// Flush returns the smallest contiguous index range [start, end] covering every point whose
// color changed since the last Flush, and clears the change set. ok is false when nothing
// changed.
func (lc *LabeledCloud) Flush() (start, end int, ok bool) {
	if len(lc.dirty) == 0 {
		return 0, 0, false
	}
	keys := lo.Keys(lc.dirty)
	start, end = lo.Min(keys), lo.Max(keys)
	clear(lc.dirty)
	return start, end, true
}
