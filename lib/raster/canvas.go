// Package raster implements the engine's Canvas on top of go-chart's
// vector renderer, producing PNG or SVG output for hosts without an
// interactive surface (exports, reports, previews).
package raster

import (
	"image/color"
	"io"

	"github.com/golang/freetype/truetype"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	fundchart "github.com/fundlens/fundchart/lib"
)

// A Canvas rasterizes engine draw primitives. It is bound to one output
// surface; create a new one per rendered image.
type Canvas struct {
	r    chart.Renderer
	font *truetype.Font
}

var _ fundchart.Canvas = (*Canvas)(nil)

// NewPNG returns a Canvas backed by a PNG raster surface.
func NewPNG(width, height int) (*Canvas, error) {
	return newCanvas(chart.PNG, width, height)
}

// NewSVG returns a Canvas backed by an SVG vector surface.
func NewSVG(width, height int) (*Canvas, error) {
	return newCanvas(chart.SVG, width, height)
}

func newCanvas(provider func(int, int) (chart.Renderer, error), width, height int) (*Canvas, error) {
	r, err := provider(width, height)
	if err != nil {
		return nil, err
	}

	font, err := chart.GetDefaultFont()
	if err != nil {
		return nil, err
	}

	r.SetDPI(chart.DefaultDPI)
	return &Canvas{r: r, font: font}, nil
}

// Save writes the rendered surface to w.
func (c *Canvas) Save(w io.Writer) error { return c.r.Save(w) }

func (c *Canvas) FillRect(x, y, w, h float64, col color.RGBA) {
	c.r.SetFillColor(toDrawing(col))
	c.r.MoveTo(int(x), int(y))
	c.r.LineTo(int(x+w), int(y))
	c.r.LineTo(int(x+w), int(y+h))
	c.r.LineTo(int(x), int(y+h))
	c.r.Close()
	c.r.Fill()
}

func (c *Canvas) Line(x1, y1, x2, y2 float64, col color.RGBA, width float64, dash []float64) {
	c.stroke(col, width, dash)
	c.r.MoveTo(int(x1), int(y1))
	c.r.LineTo(int(x2), int(y2))
	c.r.Stroke()
}

func (c *Canvas) Polyline(xs, ys []float64, col color.RGBA, width float64, dash []float64) {
	if len(xs) < 2 {
		return
	}
	c.stroke(col, width, dash)
	c.r.MoveTo(int(xs[0]), int(ys[0]))
	for i := 1; i < len(xs); i++ {
		c.r.LineTo(int(xs[i]), int(ys[i]))
	}
	c.r.Stroke()
}

func (c *Canvas) FillPolygon(xs, ys []float64, col color.RGBA) {
	if len(xs) < 3 {
		return
	}
	c.r.SetFillColor(toDrawing(col))
	c.r.MoveTo(int(xs[0]), int(ys[0]))
	for i := 1; i < len(xs); i++ {
		c.r.LineTo(int(xs[i]), int(ys[i]))
	}
	c.r.Close()
	c.r.Fill()
}

func (c *Canvas) Text(s string, x, y float64, col color.RGBA, size float64) {
	c.r.SetFont(c.font)
	c.r.SetFontSize(size)
	c.r.SetFontColor(toDrawing(col))
	c.r.Text(s, int(x), int(y))
}

func (c *Canvas) TextWidth(s string, size float64) float64 {
	c.r.SetFont(c.font)
	c.r.SetFontSize(size)
	return float64(c.r.MeasureText(s).Width())
}

func (c *Canvas) stroke(col color.RGBA, width float64, dash []float64) {
	c.r.SetStrokeColor(toDrawing(col))
	c.r.SetStrokeWidth(width)
	c.r.SetStrokeDashArray(dash)
}

func toDrawing(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
