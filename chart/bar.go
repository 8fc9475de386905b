package chart

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/sartorproj/pageviews/stats"
)

// Bar chart labels.
const (
	BarLegendTitle = "Months"
	BarXLabel      = "Years"
	BarYLabel      = "Average Page Views"
)

// barPadding is the horizontal space reserved for axes and legend.
const barPadding = 1.5 * vg.Inch

// barWidth sizes bars so that every year holds twelve bars plus a gap of
// one bar.
func barWidth(years int) vg.Length {
	return (BarWidth - barPadding) / vg.Length(years*(len(stats.Months)+1))
}

// barLayer is the bar series of one month plus its value labels. Labels
// is nil when no year has data for the month.
type barLayer struct {
	Name   string
	Bars   *plotter.BarChart
	Labels *plotter.Labels
}

func barLayers(m *stats.MonthlyMeans) ([]barLayer, error) {
	w := barWidth(len(m.Years))
	colors := monthColors()
	names := m.Columns()

	layers := make([]barLayer, 0, len(stats.Months))
	for mi := range stats.Months {
		heights := make(plotter.Values, len(m.Years))
		var xys plotter.XYs
		var labels []string
		for yi := range m.Years {
			v := m.Values[yi][mi]
			if math.IsNaN(v) {
				continue
			}
			heights[yi] = v
			xys = append(xys, plotter.XY{X: float64(yi), Y: v})
			labels = append(labels, strconv.Itoa(int(math.Round(v))))
		}

		bars, err := plotter.NewBarChart(heights, w)
		if err != nil {
			return nil, errors.Wrapf(err, "bar plot: %s", names[mi])
		}
		offset := vg.Length(float64(mi)-5.5) * w
		bars.Offset = offset
		bars.Color = colors[mi]
		bars.LineStyle.Width = 0
		layer := barLayer{Name: names[mi], Bars: bars}

		if len(xys) > 0 {
			layer.Labels, err = annotations(xys, labels,
				annotationStyle(vertical, draw.XLeft, draw.YCenter),
				vg.Point{X: offset, Y: vg.Points(2)})
			if err != nil {
				return nil, errors.Wrapf(err, "bar labels: %s", names[mi])
			}
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// BarPlot builds a grouped bar chart of m: one cluster per year, one bar
// per month in calendar order. Bars are annotated with their height
// rounded to the nearest integer; missing cells are drawn at zero height
// without a label.
func BarPlot(m *stats.MonthlyMeans) (*plot.Plot, error) {
	if m == nil || len(m.Years) == 0 {
		return nil, errors.New("bar plot: no monthly means")
	}
	layers, err := barLayers(m)
	if err != nil {
		return nil, err
	}

	p := newPlot("", BarXLabel, BarYLabel)
	p.Legend.Top = true
	p.Legend.Add(BarLegendTitle)
	for _, l := range layers {
		p.Add(l.Bars)
		p.Legend.Add(l.Name, l.Bars)
		if l.Labels != nil {
			p.Add(l.Labels)
		}
	}

	years := make([]string, len(m.Years))
	for i, y := range m.Years {
		years[i] = strconv.Itoa(y)
	}
	p.NominalX(years...)
	p.Y.Min = 0
	if top := maxMean(m); top > 0 {
		// Headroom for the rotated labels and the legend.
		p.Y.Max = top * 1.2
	}
	return p, nil
}

func maxMean(m *stats.MonthlyMeans) float64 {
	top := 0.0
	for _, row := range m.Values {
		for _, v := range row {
			if !math.IsNaN(v) {
				top = math.Max(top, v)
			}
		}
	}
	return top
}

// Bar writes the grouped bar chart of m to path.
func Bar(m *stats.MonthlyMeans, path string) error {
	p, err := BarPlot(m)
	if err != nil {
		return err
	}
	return errors.Wrapf(p.Save(BarWidth, BarHeight, path), "save %s", path)
}
