package visualizer

import (
	"os"

	"github.com/pkg/errors"

	"github.com/sartorproj/pageviews/chart"
	"github.com/sartorproj/pageviews/config"
	"github.com/sartorproj/pageviews/internal/vizlog"
	"github.com/sartorproj/pageviews/report"
	"github.com/sartorproj/pageviews/stats"
	"github.com/sartorproj/pageviews/timeseries"
)

// Visualizer draws charts for cleaned series according to a Config.
type Visualizer struct {
	cfg *config.Config
}

// New returns a Visualizer for cfg. A nil cfg selects config.Default().
func New(cfg *config.Config) *Visualizer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Visualizer{cfg: cfg}
}

// Config returns the settings the Visualizer was built with.
func (v *Visualizer) Config() *config.Config { return v.cfg }

// LoadAndCleanData loads path and keeps the observations between the
// configured lower and upper percentiles, bounds included.
func (v *Visualizer) LoadAndCleanData(path string) (*timeseries.Series, error) {
	policy, err := v.cfg.Cleaning.DuplicatePolicy()
	if err != nil {
		return nil, err
	}
	opts := timeseries.DefaultCSVOptions()
	opts.Duplicates = policy

	raw, err := timeseries.LoadCSV(path, opts)
	if err != nil {
		return nil, err
	}

	clean, bounds, err := stats.TrimPercentiles(raw, v.cfg.Cleaning.Lower, v.cfg.Cleaning.Upper)
	if err != nil {
		return nil, errors.Wrapf(err, "clean %s", path)
	}

	vizlog.Zero.Debug().
		Str("file", path).
		Int("rows", raw.Len()).
		Int("kept", clean.Len()).
		Float64("lower", bounds.Lower).
		Float64("upper", bounds.Upper).
		Msg("loaded and cleaned data")
	return clean, nil
}

// DrawLinePlot writes the daily line chart and returns its path.
func (v *Visualizer) DrawLinePlot(s *timeseries.Series) (string, error) {
	path := v.cfg.Output.Path(v.cfg.Output.LinePlot)
	if err := v.prepare(); err != nil {
		return "", err
	}
	if err := chart.Line(s, path); err != nil {
		return "", err
	}
	v.written(path)
	return path, nil
}

// DrawBarPlot writes the monthly mean bar chart and returns its path.
func (v *Visualizer) DrawBarPlot(s *timeseries.Series) (string, error) {
	path := v.cfg.Output.Path(v.cfg.Output.BarPlot)
	if err := v.prepare(); err != nil {
		return "", err
	}
	m, err := stats.MonthlyMeansOf(s)
	if err != nil {
		return "", errors.Wrap(err, "monthly means")
	}
	if err := chart.Bar(m, path); err != nil {
		return "", err
	}
	v.written(path)
	return path, nil
}

// DrawBoxPlot writes the year-wise and month-wise box plots and returns
// the path.
func (v *Visualizer) DrawBoxPlot(s *timeseries.Series) (string, error) {
	path := v.cfg.Output.Path(v.cfg.Output.BoxPlot)
	if err := v.prepare(); err != nil {
		return "", err
	}
	g, err := stats.BoxGroupsOf(s)
	if err != nil {
		return "", errors.Wrap(err, "box groups")
	}
	if err := chart.Box(g, path); err != nil {
		return "", err
	}
	v.written(path)
	return path, nil
}

// ExportSummary writes the monthly means and box summaries to the
// configured workbook and returns its path.
func (v *Visualizer) ExportSummary(s *timeseries.Series) (string, error) {
	path := v.cfg.Output.Path(v.cfg.Output.Summary)
	if err := v.prepare(); err != nil {
		return "", err
	}
	m, err := stats.MonthlyMeansOf(s)
	if err != nil {
		return "", errors.Wrap(err, "monthly means")
	}
	g, err := stats.BoxGroupsOf(s)
	if err != nil {
		return "", errors.Wrap(err, "box groups")
	}
	if err := report.WriteWorkbook(path, m, g); err != nil {
		return "", err
	}
	v.written(path)
	return path, nil
}

func (v *Visualizer) prepare() error {
	dir := v.cfg.Output.Dir
	if dir == "" || dir == "." {
		return nil
	}
	return errors.Wrap(os.MkdirAll(dir, 0o755), "create output dir")
}

func (v *Visualizer) written(path string) {
	vizlog.Zero.Debug().Str("file", path).Msg("written")
}

// LoadAndCleanData loads path with the default settings.
func LoadAndCleanData(path string) (*timeseries.Series, error) {
	return New(nil).LoadAndCleanData(path)
}

// DrawLinePlot writes line_plot.png to the working directory.
func DrawLinePlot(s *timeseries.Series) (string, error) {
	return New(nil).DrawLinePlot(s)
}

// DrawBarPlot writes bar_plot.png to the working directory.
func DrawBarPlot(s *timeseries.Series) (string, error) {
	return New(nil).DrawBarPlot(s)
}

// DrawBoxPlot writes box_plot.png to the working directory.
func DrawBoxPlot(s *timeseries.Series) (string, error) {
	return New(nil).DrawBoxPlot(s)
}
