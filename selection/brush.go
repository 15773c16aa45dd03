package selection

import "go.viam.com/pclabel/utils"

// Brush defaults.
const (
	DefaultRadius    = 0.2
	DefaultMinRadius = 0.01
	DefaultMaxRadius = 10.0

	// wheelScale converts a scroll wheel delta into a radius change.
	wheelScale = 500.0
)

// Brush is the pick radius around the cursor ray.
type Brush struct {
	radius   float64
	min, max float64
}

// NewBrush returns a brush with the given radius clamped to [minRadius, maxRadius]. An inverted
// range is swapped.
func NewBrush(radius, minRadius, maxRadius float64) *Brush {
	if minRadius > maxRadius {
		minRadius, maxRadius = maxRadius, minRadius
	}
	b := &Brush{min: minRadius, max: maxRadius}
	b.SetRadius(radius)
	return b
}

// NewDefaultBrush returns a brush with the default radius and limits.
func NewDefaultBrush() *Brush {
	return NewBrush(DefaultRadius, DefaultMinRadius, DefaultMaxRadius)
}

// Radius returns the current radius.
func (b *Brush) Radius() float64 {
	return b.radius
}

// SetRadius sets the radius, clamped to the brush limits, and returns the radius in effect.
func (b *Brush) SetRadius(radius float64) float64 {
	b.radius = utils.Clamp(radius, b.min, b.max)
	return b.radius
}

// Adjust shrinks the brush by delta/500 (scrolling down grows it) and returns the new radius.
func (b *Brush) Adjust(delta float64) float64 {
	return b.SetRadius(b.radius - delta/wheelScale)
}
