// Package selection turns cursor rays into point selections and applies paint, erase and
// highlight to a labeled point cloud.
package selection

import (
	"strings"

	"github.com/pkg/errors"

	"go.viam.com/pclabel/pointcloud"
)

// Mode is the interaction mode chosen by the user. The session never changes it.
type Mode int

// The known modes.
const (
	ModeDraw Mode = iota
	ModeErase
	ModePolygonHighlight
)

func (m Mode) String() string {
	switch m {
	case ModeDraw:
		return "draw"
	case ModeErase:
		return "erase"
	case ModePolygonHighlight:
		return "poly"
	default:
		return "unknown"
	}
}

// ParseMode parses the names returned by Mode.String, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "draw":
		return ModeDraw, nil
	case "erase":
		return ModeErase, nil
	case "poly", "polygon":
		return ModePolygonHighlight, nil
	default:
		return 0, errors.Errorf("unknown selection mode %q", s)
	}
}

// TargetLabel returns the label a stroke in this mode writes. ok is false for modes that only
// highlight.
func (m Mode) TargetLabel() (label pointcloud.Label, ok bool) {
	switch m {
	case ModeDraw:
		return pointcloud.Classified, true
	case ModeErase:
		return pointcloud.Unclassified, true
	default:
		return 0, false
	}
}
