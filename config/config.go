// Package config holds the tunables of a labeling session.
package config

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"github.com/segmentio/encoding/json"

	"go.viam.com/pclabel/logging"
	"go.viam.com/pclabel/pointcloud"
	"go.viam.com/pclabel/utils"
)

// A Config describes how a point cloud is loaded, indexed and painted.
type Config struct {
	CellSize          float64     `json:"cell_size"`
	RayLength         float64     `json:"ray_length"`
	Brush             BrushConfig `json:"brush"`
	HistoryDepth      int         `json:"history_depth"`
	PaintColor        string      `json:"paint_color"`
	HighlightColor    string      `json:"highlight_color"`
	Coloring          string      `json:"coloring"` // "white" or "height"
	MinHeight         float64     `json:"min_height"`
	MaxHeight         float64     `json:"max_height"`
	PolygonNodeHeight float64     `json:"polygon_node_height"`
	SwapYZ            bool        `json:"swap_yz"`
	LogLevel          string      `json:"log_level"`
}

// A BrushConfig bounds the pick radius.
type BrushConfig struct {
	Radius    float64 `json:"radius"`
	MinRadius float64 `json:"min_radius"`
	MaxRadius float64 `json:"max_radius"`
}

// Default returns the configuration the tool ships with.
func Default() *Config {
	return &Config{
		CellSize:  0.4,
		RayLength: 40,
		Brush: BrushConfig{
			Radius:    0.2,
			MinRadius: 0.01,
			MaxRadius: 10,
		},
		HistoryDepth:      20,
		PaintColor:        "#00ff00",
		HighlightColor:    "#eb8934",
		Coloring:          "white",
		MinHeight:         -3,
		MaxHeight:         2,
		PolygonNodeHeight: 2.5,
		SwapYZ:            true,
		LogLevel:          "info",
	}
}

// Validate ensures all parts of the config are valid.
func (conf *Config) Validate(path string) error {
	if !isPositive(conf.CellSize) {
		return utils.NewConfigValidationError(path, errors.Errorf("cell_size must be positive, got %v", conf.CellSize))
	}
	if !isPositive(conf.RayLength) {
		return utils.NewConfigValidationError(path, errors.Errorf("ray_length must be positive, got %v", conf.RayLength))
	}
	if err := conf.Brush.Validate(fmt.Sprintf("%s.%s", path, "brush")); err != nil {
		return err
	}
	if conf.HistoryDepth <= 0 {
		return utils.NewConfigValidationError(path, errors.Errorf("history_depth must be positive, got %d", conf.HistoryDepth))
	}
	if conf.PaintColor == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "paint_color")
	}
	if conf.HighlightColor == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "highlight_color")
	}
	if _, _, err := conf.Colors(); err != nil {
		return utils.NewConfigValidationError(path, err)
	}
	if !(conf.MinHeight < conf.MaxHeight) {
		return utils.NewConfigValidationError(path,
			errors.Errorf("min_height (%v) must be below max_height (%v)", conf.MinHeight, conf.MaxHeight))
	}
	if _, err := conf.PointColoring(); err != nil {
		return utils.NewConfigValidationError(path, err)
	}
	if _, err := logging.LevelFromString(conf.LogLevel); err != nil {
		return utils.NewConfigValidationError(path, err)
	}
	return nil
}

// Validate ensures the brush limits are ordered and contain the radius.
func (conf *BrushConfig) Validate(path string) error {
	if !isPositive(conf.MinRadius) {
		return utils.NewConfigValidationError(path, errors.Errorf("min_radius must be positive, got %v", conf.MinRadius))
	}
	if !(conf.MaxRadius >= conf.MinRadius) || math.IsInf(conf.MaxRadius, 1) {
		return utils.NewConfigValidationError(path,
			errors.Errorf("max_radius (%v) must be finite and at least min_radius (%v)", conf.MaxRadius, conf.MinRadius))
	}
	if conf.Radius < conf.MinRadius || conf.Radius > conf.MaxRadius {
		return utils.NewConfigValidationError(path,
			errors.Errorf("radius %v is outside [%v, %v]", conf.Radius, conf.MinRadius, conf.MaxRadius))
	}
	return nil
}

// Colors parses the paint and highlight colors.
func (conf *Config) Colors() (paint, highlight color.NRGBA, err error) {
	if paint, err = pointcloud.ParseHexColor(conf.PaintColor); err != nil {
		return color.NRGBA{}, color.NRGBA{}, errors.Wrap(err, "paint_color")
	}
	if highlight, err = pointcloud.ParseHexColor(conf.HighlightColor); err != nil {
		return color.NRGBA{}, color.NRGBA{}, errors.Wrap(err, "highlight_color")
	}
	return paint, highlight, nil
}

// PointColoring returns the load-time coloring named by Coloring.
func (conf *Config) PointColoring() (pointcloud.Coloring, error) {
	return pointcloud.NewColoring(conf.Coloring, conf.MinHeight, conf.MaxHeight)
}

// Level returns the configured log level, INFO when unset or invalid.
func (conf *Config) Level() logging.Level {
	level, err := logging.LevelFromString(conf.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// FromMap decodes attributes over the defaults. Keys matching no field are an error.
func FromMap(attributes map[string]interface{}) (*Config, error) {
	conf := Default()
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:  "json",
		Result:   conf,
		Metadata: &md,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "cannot decode config")
	}
	if len(md.Unused) > 0 {
		return nil, errors.Errorf("unknown config keys %q", md.Unused)
	}
	return conf, nil
}

// Read loads a JSON config file, fills in defaults for missing keys and validates the result.
func Read(path string) (*Config, error) {
	//nolint:gosec
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read config file")
	}
	var attributes map[string]interface{}
	if err := json.Unmarshal(data, &attributes); err != nil {
		return nil, errors.Wrapf(err, "cannot parse config file %q", path)
	}
	conf, err := FromMap(attributes)
	if err != nil {
		return nil, err
	}
	if err := conf.Validate(path); err != nil {
		return nil, err
	}
	return conf, nil
}

func isPositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
