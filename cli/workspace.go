package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"go.viam.com/pclabel/config"
	"go.viam.com/pclabel/grid"
	"go.viam.com/pclabel/history"
	"go.viam.com/pclabel/logging"
	"go.viam.com/pclabel/pointcloud"
	"go.viam.com/pclabel/polygon"
	"go.viam.com/pclabel/selection"
)

// workspace is everything a labeling session over one point file needs, wired the way an
// interactive front end would wire it.
type workspace struct {
	conf     *config.Config
	logger   logging.Logger
	cloud    *pointcloud.LabeledCloud
	index    *grid.Index
	session  *selection.Session
	history  *history.Stack
	polygons *polygon.Arena
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String(generalFlagConfig)
	if path == "" {
		return config.Default(), nil
	}
	return config.Read(path)
}

func newLogger(c *cli.Context, conf *config.Config) logging.Logger {
	logger := logging.NewBlankLogger("pclabel")
	logger.AddAppender(logging.NewWriterAppender(c.App.ErrWriter))
	logger.SetLevel(conf.Level())
	if c.Bool(generalFlagDebug) {
		logger.SetLevel(logging.DEBUG)
	}
	logging.ReplaceGlobal(logger)
	return logger
}

func newWorkspace(c *cli.Context) (*workspace, error) {
	if c.Args().Len() != 1 {
		return nil, errors.New("expected exactly one xyz json file argument")
	}
	conf, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	logger := newLogger(c, conf)

	path := c.Args().First()
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open point file")
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.Warnw("error closing point file", "path", path, "error", err)
		}
	}()
	positions, err := pointcloud.ReadXYZJSON(f, conf.SwapYZ)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot load %q", path)
	}

	coloring, err := conf.PointColoring()
	if err != nil {
		return nil, err
	}
	paint, highlight, err := conf.Colors()
	if err != nil {
		return nil, err
	}

	ws := &workspace{
		conf:     conf,
		logger:   logger,
		cloud:    pointcloud.NewLabeledCloud(positions, coloring, paint),
		index:    grid.New(conf.CellSize, positions, logger.Sublogger("grid")),
		polygons: polygon.NewArena(conf.PolygonNodeHeight, logger.Sublogger("polygon")),
	}
	brush := selection.NewBrush(conf.Brush.Radius, conf.Brush.MinRadius, conf.Brush.MaxRadius)
	engine := selection.NewEngine(ws.index, brush, conf.RayLength)
	ws.session, err = selection.NewSession(engine, ws.cloud,
		selection.Colors{Paint: paint, Highlight: highlight}, logger.Sublogger("selection"))
	if err != nil {
		return nil, err
	}
	ws.history = history.New(conf.HistoryDepth, ws.cloud)
	logger.Debugw("loaded point file", "path", path, "points", positions.Len())
	return ws, nil
}
