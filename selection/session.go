package selection

import (
	"image/color"
	"slices"

	"github.com/golang/geo/r3"
	"github.com/samber/lo"

	"go.viam.com/pclabel/logging"
	"go.viam.com/pclabel/pointcloud"
	"go.viam.com/pclabel/spatialmath"
	"go.viam.com/pclabel/utils"
)

// Renderer owns the per-point display state the session mutates. pointcloud.LabeledCloud
// implements it.
type Renderer interface {
	Len() int
	Color(i int) color.NRGBA
	// SetColor reports whether the stored color changed.
	SetColor(i int, c color.NRGBA) bool
	Label(i int) pointcloud.Label
	SetLabel(i int, l pointcloud.Label)
	// InitColor is the color the point was loaded with.
	InitColor(i int) color.NRGBA
}

// Colors are the display colors a session writes.
type Colors struct {
	Paint     color.NRGBA
	Highlight color.NRGBA
}

// DefaultColors are green paint and an orange highlight.
var DefaultColors = Colors{
	Paint:     color.NRGBA{R: 0, G: 255, B: 0, A: 255},
	Highlight: color.NRGBA{R: 235, G: 137, B: 52, A: 255},
}

// Cursor is everything UpdateCursor needs to know about the current frame.
type Cursor struct {
	Ray  spatialmath.Ray
	Mode Mode
	// Polygons are the closed vertex loops of the open polygons, used in ModePolygonHighlight.
	Polygons [][]r3.Vector
}

// Result describes what one UpdateCursor call did.
type Result struct {
	// Hits are the points selected this frame, ascending.
	Hits []int
	// Changed counts the points whose color or label was written.
	Changed int
	// Painted is true when the frame was a paint or erase step rather than a highlight.
	Painted bool
}

// Session is the per-frame paint and highlight state machine. It is not safe for concurrent use.
type Session struct {
	engine   *Engine
	renderer Renderer
	colors   Colors
	logger   logging.Logger

	painting    bool
	prevRay     *spatialmath.Ray
	highlighted []int
}

// NewSession returns a session painting into renderer. The renderer must hold exactly the points
// the engine's index was built over.
func NewSession(engine *Engine, renderer Renderer, colors Colors, logger logging.Logger) (*Session, error) {
	if renderer.Len() != engine.Index().Len() {
		return nil, utils.NewSizeMismatchError("renderer", renderer.Len(), engine.Index().Len())
	}
	return &Session{
		engine:   engine,
		renderer: renderer,
		colors:   colors,
		logger:   logger,
	}, nil
}

// Engine returns the engine the session picks with.
func (s *Session) Engine() *Engine {
	return s.engine
}

// Painting reports whether a stroke is in progress.
func (s *Session) Painting() bool {
	return s.painting
}

// Highlighted returns the points highlighted by the last hover frame, ascending.
func (s *Session) Highlighted() []int {
	return slices.Clone(s.highlighted)
}

// StartStroke begins a stroke. Any highlight is cleared and the next frame uses a capsule query.
func (s *Session) StartStroke() {
	s.clearHighlight()
	s.painting = true
	s.prevRay = nil
	s.logger.Debug("stroke started")
}

// StopStroke ends the stroke. Committing to history is up to the caller.
func (s *Session) StopStroke() {
	s.painting = false
	s.prevRay = nil
	s.logger.Debug("stroke stopped")
}

// UpdateCursor applies one frame of input. In ModePolygonHighlight it highlights the capsule hits
// plus everything inside cursor.Polygons. While painting it paints or erases the swept area.
// Otherwise it highlights the capsule hits.
func (s *Session) UpdateCursor(cursor Cursor) Result {
	label, paints := cursor.Mode.TargetLabel()
	switch {
	case cursor.Mode == ModePolygonHighlight:
		return s.highlight(s.engine.Hover(cursor.Ray, cursor.Polygons))
	case s.painting && paints:
		s.clearHighlight()
		hits := s.engine.Affected(cursor.Ray, s.prevRay)
		ray := cursor.Ray
		s.prevRay = &ray
		return Result{Hits: hits, Changed: s.paint(hits, label), Painted: true}
	default:
		return s.highlight(s.engine.Hover(cursor.Ray, nil))
	}
}

// FillPolygon sets label on every point inside the polygon and recolors it to its base color. It
// returns how many points changed.
func (s *Session) FillPolygon(vertices []r3.Vector, label pointcloud.Label) int {
	s.clearHighlight()
	hits := s.engine.Index().InPolygon(vertices)
	changed := 0
	for _, i := range hits {
		labelChanged := s.renderer.Label(i) != label
		if labelChanged {
			s.renderer.SetLabel(i, label)
		}
		if s.renderer.SetColor(i, s.baseColor(i)) || labelChanged {
			changed++
		}
	}
	s.logger.Debugw("filled polygon", "vertices", len(vertices), "hits", len(hits), "changed", changed)
	return changed
}

// BaseColor is the color point i shows when neither highlighted nor mid-stroke: the paint color
// for classified points, the load color otherwise.
func (s *Session) BaseColor(i int) color.NRGBA {
	return s.baseColor(i)
}

func (s *Session) baseColor(i int) color.NRGBA {
	if s.renderer.Label(i) == pointcloud.Classified {
		return s.colors.Paint
	}
	return s.renderer.InitColor(i)
}

func (s *Session) targetColor(i int, label pointcloud.Label) color.NRGBA {
	if label == pointcloud.Classified {
		return s.colors.Paint
	}
	return s.renderer.InitColor(i)
}

func (s *Session) paint(hits []int, label pointcloud.Label) int {
	changed := 0
	for _, i := range hits {
		target := s.targetColor(i, label)
		if s.renderer.Label(i) == label && s.renderer.Color(i) == target {
			continue
		}
		s.renderer.SetLabel(i, label)
		s.renderer.SetColor(i, target)
		changed++
	}
	return changed
}

// highlight makes hits the highlight set. Points leaving the set get their base color back and
// every hit gets the highlight color. Labels are never touched.
func (s *Session) highlight(hits []int) Result {
	left, _ := lo.Difference(s.highlighted, hits)
	changed := 0
	for _, i := range left {
		if s.renderer.SetColor(i, s.baseColor(i)) {
			changed++
		}
	}
	// Every hit, not only new ones: an undo may have reset colors under the cursor.
	for _, i := range hits {
		if s.renderer.SetColor(i, s.colors.Highlight) {
			changed++
		}
	}
	s.highlighted = slices.Clone(hits)
	return Result{Hits: hits, Changed: changed}
}

func (s *Session) clearHighlight() {
	for _, i := range s.highlighted {
		s.renderer.SetColor(i, s.baseColor(i))
	}
	s.highlighted = nil
}
