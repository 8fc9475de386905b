package chart

import (
	"image/color"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/sartorproj/pageviews/stats"
)

// Box plot labels.
const (
	YearBoxTitle   = "Year-wise Box Plot (Trend)"
	YearBoxXLabel  = "Year"
	MonthBoxTitle  = "Month-wise Box Plot (Seasonality)"
	MonthBoxXLabel = "Month"
	BoxYLabel      = "Page Views"
)

const (
	yearBoxWidth  = 60 // points
	monthBoxWidth = 30 // points
)

func yearColors(n int) []color.Color {
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Set2", 8)
	if err != nil {
		panic(err)
	}
	base := p.Colors()
	out := make([]color.Color, n)
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}

// boxLayer holds one box per group with data and the median labels.
type boxLayer struct {
	Boxes   []*plotter.BoxPlot
	Medians *plotter.Labels // nil when no group has data
}

// groupLayer places one box per group at x = index, each annotated with
// its median truncated to an integer. Groups without data get neither box
// nor label.
func groupLayer(groups []stats.Group, colors []color.Color, width vg.Length) (boxLayer, error) {
	var layer boxLayer
	var medians plotter.XYs
	var labels []string
	for i, g := range groups {
		if !g.HasData() {
			continue
		}
		b, err := plotter.NewBoxPlot(width, float64(i), plotter.Values(g.Values))
		if err != nil {
			return boxLayer{}, errors.Wrapf(err, "box %s", g.Label)
		}
		b.FillColor = colors[i]
		layer.Boxes = append(layer.Boxes, b)

		medians = append(medians, plotter.XY{X: float64(i), Y: g.Median})
		labels = append(labels, itoa(g.Median))
	}

	if len(medians) > 0 {
		var err error
		layer.Medians, err = annotations(medians, labels,
			annotationStyle(upright, draw.XCenter, draw.YBottom),
			vg.Point{Y: vg.Points(2)})
		if err != nil {
			return boxLayer{}, errors.Wrap(err, "median labels")
		}
	}
	return layer, nil
}

// groupPlot keeps a tick for every group, including empty ones.
func groupPlot(groups []stats.Group, colors []color.Color, width vg.Length, title, xLabel string) (*plot.Plot, error) {
	layer, err := groupLayer(groups, colors, width)
	if err != nil {
		return nil, err
	}

	p := newPlot(title, xLabel, BoxYLabel)
	for _, b := range layer.Boxes {
		p.Add(b)
	}
	if layer.Medians != nil {
		p.Add(layer.Medians)
	}

	names := make([]string, len(groups))
	for i, g := range groups {
		names[i] = g.Label
	}
	if len(names) > 0 {
		p.NominalX(names...)
	}
	p.X.Min = -0.5
	p.X.Max = float64(len(groups)) - 0.5
	return p, nil
}

// BoxPlots builds the year-wise and month-wise box plots of g. The month
// axis always lists January to December.
func BoxPlots(g *stats.BoxGroups) (years, months *plot.Plot, err error) {
	if g == nil || len(g.Years) == 0 {
		return nil, nil, errors.New("box plot: no groups")
	}
	years, err = groupPlot(g.Years, yearColors(len(g.Years)), yearBoxWidth, YearBoxTitle, YearBoxXLabel)
	if err != nil {
		return nil, nil, errors.Wrap(err, "year-wise box plot")
	}
	months, err = groupPlot(g.Months, monthColors(), monthBoxWidth, MonthBoxTitle, MonthBoxXLabel)
	if err != nil {
		return nil, nil, errors.Wrap(err, "month-wise box plot")
	}
	return years, months, nil
}

// Box draws the two box plots side by side and writes the figure to path
// as PNG.
func Box(g *stats.BoxGroups, path string) (err error) {
	years, months, err := BoxPlots(g)
	if err != nil {
		return err
	}

	img := vgimg.New(BoxWidth, BoxHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows:      1,
		Cols:      2,
		PadX:      vg.Millimeter * 8,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
	}
	plots := [][]*plot.Plot{{years, months}}
	canvases := plot.Align(plots, tiles, dc)
	years.Draw(canvases[0][0])
	months.Draw(canvases[0][1])

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create box plot")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}
