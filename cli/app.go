// Package cli contains the pclabel command line, which runs the labeling core over a point file
// without a renderer.
package cli

import (
	"io"

	"github.com/urfave/cli/v2"
)

const (
	// Flags.
	generalFlagConfig = "config"
	generalFlagDebug  = "debug"

	pickFlagOrigin = "origin"
	pickFlagDir    = "dir"
	pickFlagRadius = "radius"
	pickFlagLength = "length"
	pickFlagLimit  = "limit"

	strokeFlagOrigins = "origins"
	strokeFlagMode    = "mode"
	strokeFlagUndo    = "undo"

	fillFlagPolygon = "polygon"
	fillFlagLabel   = "label"
)

// NewApp returns a new app with the CLI API, Writer set to out, and ErrWriter set to errOut.
// Logs go to errOut.
func NewApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:            "pclabel",
		Usage:           "inspect and label point clouds",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    generalFlagConfig,
				Aliases: []string{"c"},
				Usage:   "load configuration from `FILE`",
			},
			&cli.BoolFlag{
				Name:    generalFlagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "info",
				Usage:     "print point counts, bounds and grid statistics",
				ArgsUsage: "<xyz json file>",
				Action:    InfoAction,
			},
			{
				Name:      "pick",
				Usage:     "list the points near a ray",
				ArgsUsage: "<xyz json file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     pickFlagOrigin,
						Usage:    "ray origin as `x,y,z`",
						Required: true,
					},
					&cli.StringFlag{
						Name:     pickFlagDir,
						Usage:    "ray direction as `x,y,z`",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  pickFlagRadius,
						Usage: "pick radius, defaults to the configured brush radius",
					},
					&cli.Float64Flag{
						Name:  pickFlagLength,
						Usage: "ray length, defaults to the configured ray length",
					},
					&cli.IntFlag{
						Name:  pickFlagLimit,
						Usage: "print at most this many points",
						Value: 20,
					},
				},
				Action: PickAction,
			},
			{
				Name:      "stroke",
				Usage:     "paint or erase along a sequence of parallel rays",
				ArgsUsage: "<xyz json file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     strokeFlagOrigins,
						Usage:    "one ray origin per frame as `x,y,z;x,y,z;...`",
						Required: true,
					},
					&cli.StringFlag{
						Name:     pickFlagDir,
						Usage:    "ray direction as `x,y,z`",
						Required: true,
					},
					&cli.StringFlag{
						Name:  strokeFlagMode,
						Usage: "draw or erase",
						Value: "draw",
					},
					&cli.BoolFlag{
						Name:  strokeFlagUndo,
						Usage: "undo the stroke afterwards and report both states",
					},
				},
				Action: StrokeAction,
			},
			{
				Name:      "fill",
				Usage:     "label every point inside a polygon on the horizontal plane",
				ArgsUsage: "<xyz json file>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     fillFlagPolygon,
						Usage:    "polygon as `x,z;x,z;...`",
						Required: true,
					},
					&cli.StringFlag{
						Name:  fillFlagLabel,
						Usage: "label to fill with: classified or unclassified",
						Value: "classified",
					},
				},
				Action: FillAction,
			},
		},
	}
}
