package pointcloud

import (
	"image/color"
	"math"

	"github.com/golang/geo/r3"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Coloring computes the load-time color of a point from its position.
type Coloring func(p r3.Vector) color.NRGBA

// White is the default load-time color.
var White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// WhiteColoring colors every point white.
func WhiteColoring() Coloring {
	return func(r3.Vector) color.NRGBA { return White }
}

// HeightColoring ramps the hue from blue at minHeight to red at maxHeight along the vertical (Y)
// axis. Heights are log scaled so that detail near the floor is spread over more hues.
func HeightColoring(minHeight, maxHeight float64) Coloring {
	const eps = 1e-6
	logMax := math.Log(maxHeight - minHeight + eps)
	return func(p r3.Vector) color.NRGBA {
		normalized := 0.0
		if shifted := p.Y - minHeight + eps; shifted > 0 && logMax > 0 {
			normalized = math.Log(shifted) / logMax
		}
		normalized = math.Max(0, math.Min(1, normalized))
		return ToNRGBA(colorful.Hsv((1-normalized)*240, 1, 1))
	}
}

// NewColoring returns the coloring registered under name: "white" or "height".
func NewColoring(name string, minHeight, maxHeight float64) (Coloring, error) {
	switch name {
	case "", "white":
		return WhiteColoring(), nil
	case "height":
		if maxHeight <= minHeight {
			return nil, errors.Errorf("height coloring needs max height (%.2f) above min height (%.2f)", maxHeight, minHeight)
		}
		return HeightColoring(minHeight, maxHeight), nil
	default:
		return nil, errors.Errorf("unknown coloring %q", name)
	}
}

// ToNRGBA converts a colorful color to an opaque color.NRGBA.
func ToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// ParseHexColor parses "#rrggbb" into an opaque color.NRGBA.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "invalid color %q", s)
	}
	return ToNRGBA(c), nil
}
