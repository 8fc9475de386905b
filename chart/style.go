package chart

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// Default output file names.
const (
	LineFile = "line_plot.png"
	BarFile  = "bar_plot.png"
	BoxFile  = "box_plot.png"
)

// Figure sizes.
const (
	LineWidth, LineHeight = 15 * vg.Inch, 5 * vg.Inch
	BarWidth, BarHeight   = 15 * vg.Inch, 8 * vg.Inch
	BoxWidth, BoxHeight   = 18 * vg.Inch, 6 * vg.Inch
)

var lineColor = color.RGBA{R: 0xff, A: 0xff}

const annotationSize = 8 // points

// monthColors returns one qualitative colour per month.
func monthColors() []color.Color {
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Paired", 12)
	if err != nil {
		// Paired always has a 12-colour variant.
		panic(err)
	}
	return p.Colors()
}

func newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	return p
}

// annotationStyle returns the text style for a value label.
func annotationStyle(rotation float64, xAlign text.XAlignment, yAlign text.YAlignment) text.Style {
	return text.Style{
		Color:    color.Black,
		Font:     font.From(plotter.DefaultFont, vg.Points(annotationSize)),
		Rotation: rotation,
		XAlign:   xAlign,
		YAlign:   yAlign,
		Handler:  plot.DefaultTextHandler,
	}
}

// annotations builds a labels plotter for xys using one shared style.
func annotations(xys plotter.XYs, labels []string, sty text.Style, offset vg.Point) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i] = sty
	}
	l.Offset = offset
	return l, nil
}

// Rotations in radians.
const (
	upright  = 0
	vertical = math.Pi / 2
)

func itoa(v float64) string { return strconv.Itoa(int(v)) }
