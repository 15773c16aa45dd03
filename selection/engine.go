package selection

import (
	"slices"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go.viam.com/pclabel/grid"
	"go.viam.com/pclabel/spatialmath"
)

// DefaultRayLength is how far along the cursor ray picking reaches.
const DefaultRayLength = 40.0

// Engine computes which points a cursor affects. It holds no per-frame state.
type Engine struct {
	index     *grid.Index
	brush     *Brush
	rayLength float64
}

// NewEngine returns an engine over index. A nil brush uses NewDefaultBrush and a non-positive
// rayLength uses DefaultRayLength.
func NewEngine(index *grid.Index, brush *Brush, rayLength float64) *Engine {
	if brush == nil {
		brush = NewDefaultBrush()
	}
	if !(rayLength > 0) {
		rayLength = DefaultRayLength
	}
	return &Engine{index: index, brush: brush, rayLength: rayLength}
}

// Index returns the spatial index the engine queries.
func (e *Engine) Index() *grid.Index {
	return e.index
}

// Brush returns the brush whose radius the engine picks with.
func (e *Engine) Brush() *Brush {
	return e.brush
}

// RayLength returns the picking distance along the ray.
func (e *Engine) RayLength() float64 {
	return e.rayLength
}

// Affected returns the points a stroke touches this frame. Without a previous ray it is the
// capsule around ray. Otherwise it is everything near the quad swept between the previous ray and
// this one, so fast strokes leave no gaps.
func (e *Engine) Affected(ray spatialmath.Ray, prev *spatialmath.Ray) []int {
	radius := e.brush.Radius()
	if prev == nil {
		return e.index.NearLine(ray, e.rayLength, radius)
	}
	return e.index.NearQuad(ray.Origin, ray.At(e.rayLength), prev.Origin, prev.At(e.rayLength), radius)
}

// Hover returns the union of the capsule around ray and the points inside every polygon, in
// ascending order.
func (e *Engine) Hover(ray spatialmath.Ray, polygons [][]r3.Vector) []int {
	hits := e.index.NearLine(ray, e.rayLength, e.brush.Radius())
	if len(polygons) == 0 {
		return hits
	}
	lists := make([][]int, 0, len(polygons)+1)
	lists = append(lists, hits)
	for _, vertices := range polygons {
		lists = append(lists, e.index.InPolygon(vertices))
	}
	union := lo.Union(lists...)
	slices.Sort(union)
	return union
}
