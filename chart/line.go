package chart

import (
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/pageviews/timeseries"
)

// Line chart labels.
const (
	LineTitle  = "Daily freeCodeCamp Forum Page Views 5/2016-12/2019"
	LineXLabel = "Date"
	LineYLabel = "Page Views"
)

// LinePlot builds a line chart of every observation in s, in date order.
func LinePlot(s *timeseries.Series) (*plot.Plot, error) {
	if s == nil || s.Len() == 0 {
		return nil, errors.New("line plot: empty series")
	}
	s = s.Copy()

	xys := make(plotter.XYs, s.Len())
	for i, ts := range s.Timestamps {
		xys[i].X = float64(ts.Unix())
		xys[i].Y = s.Values[i]
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, errors.Wrap(err, "line plot")
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(1)

	p := newPlot(LineTitle, LineXLabel, LineYLabel)
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01"}
	p.Add(line)
	return p, nil
}

// Line writes the line chart of s to path.
func Line(s *timeseries.Series, path string) error {
	p, err := LinePlot(s)
	if err != nil {
		return err
	}
	return errors.Wrapf(p.Save(LineWidth, LineHeight, path), "save %s", path)
}
