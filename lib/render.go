package fundchart

import (
	"image/color"
	"strconv"
)

// A Canvas is the drawing surface a render pass paints onto. Coordinates
// are surface pixels with the origin at the top left. Implementations own
// all host concerns (rasterization, DOM, file output); the engine only
// issues primitives.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.RGBA)
	Line(x1, y1, x2, y2 float64, c color.RGBA, width float64, dash []float64)
	Polyline(xs, ys []float64, c color.RGBA, width float64, dash []float64)
	FillPolygon(xs, ys []float64, c color.RGBA)
	Text(s string, x, y float64, c color.RGBA, size float64)
	TextWidth(s string, size float64) float64
}

// Plot margins in pixels.
const (
	marginLeft   = 56
	marginRight  = 16
	marginTop    = 16
	marginBottom = 40

	markerInset    = 10 // glyphs stay this far inside the plot
	markerHalfSize = 5
)

var (
	colorBackground = color.RGBA{0xFA, 0xFA, 0xFA, 0xFF}
	colorGrid       = color.RGBA{0xE0, 0xE0, 0xE0, 0xFF}
	colorText       = color.RGBA{0x39, 0x39, 0x3A, 0xFF}
	colorBuy        = color.RGBA{0x29, 0x73, 0x73, 0xFF}
	colorSell       = color.RGBA{0xCA, 0x4E, 0x3E, 0xFF}
)

// DefaultPalette is copied into each chart at construction so that
// concurrent charts never share mutable color state.
var DefaultPalette = []color.RGBA{
	{0x29, 0x73, 0x73, 0xFF},
	{0x59, 0x3C, 0x8F, 0xFF},
	{0xA1, 0x67, 0x4A, 0xFF},
	{0xDD, 0x62, 0x4E, 0xFF},
	{0x17, 0x17, 0x38, 0xFF},
	{0xA1, 0xCD, 0xF4, 0xFF},
	{0xE9, 0xD7, 0x58, 0xFF},
}

// A Renderer projects a dataset and a viewport onto a Canvas. It holds
// only configuration and mutates neither, so calling Render twice with
// unchanged state paints identical output.
type Renderer struct {
	gridDivisions int
	dateLabels    int
	maxLabelWidth float64
	fontSize      float64
	palette       []color.RGBA
}

func newRenderer(dateLabels int, maxLabelWidth float64, palette []color.RGBA) *Renderer {
	// The label loop spaces dateLabels-1 intervals; anything below 2
	// cannot span the window.
	if dateLabels < 2 {
		dateLabels = 6
	}
	if maxLabelWidth <= 0 {
		maxLabelWidth = 120
	}
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Renderer{
		gridDivisions: 5,
		dateLabels:    dateLabels,
		maxLabelWidth: maxLabelWidth,
		fontSize:      10,
		palette:       append([]color.RGBA(nil), palette...),
	}
}

func (r *Renderer) color(i int) color.RGBA { return r.palette[i%len(r.palette)] }

// plotX returns the horizontal extent of the plot area. It depends only
// on the surface width, so the hit tester can use it without a canvas.
func plotX(width float64) (left, w float64) {
	return marginLeft, width - marginLeft - marginRight
}

// plotArea is the pixel rectangle series are drawn into. The hit tester
// reuses the rectangle of the last render pass so tooltips always agree
// with what is on screen.
type plotArea struct {
	left, top, w, h float64
}

func (p plotArea) contains(x, y float64) bool {
	return x >= p.left && x <= p.left+p.w && y >= p.top && y <= p.top+p.h
}

// Render performs one full clear-and-redraw pass and reports the plot
// area it used. A nil dataset, or one whose primary series is empty,
// paints an explicit placeholder instead.
func (r *Renderer) Render(c Canvas, d *Dataset, vp *Viewport, width, height float64) plotArea {
	left, plotW := plotX(width)

	// A single point cannot span a window; treat it like no data.
	if d == nil || d.Len() < 2 {
		c.FillRect(0, 0, width, height, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
		msg := "no data"
		c.Text(msg, (width-c.TextWidth(msg, r.fontSize+2))/2, height/2, colorText, r.fontSize+2)
		return plotArea{}
	}

	items := r.legendItems(d)
	slots, rows := layoutLegend(items, plotW, r.maxLabelWidth, func(s string) float64 {
		return c.TextWidth(s, r.fontSize)
	})

	top := float64(marginTop)
	plotH := height - top - marginBottom - legendHeight(rows)

	visible := vp.VisibleRange()
	count := visible.Count()
	vmin, vmax := d.ValueRange()

	// Background fill of the plot area.
	c.FillRect(left, top, plotW, plotH, colorBackground)

	// Horizontal grid lines with value labels at equal divisions.
	for i := 0; i <= r.gridDivisions; i++ {
		v := vmin + (vmax-vmin)*float64(i)/float64(r.gridDivisions)
		y := ToPixelY(v, vmin, vmax, top, plotH)
		c.Line(left, y, left+plotW, y, colorGrid, 1, nil)
		label := strconv.FormatFloat(v, 'f', 2, 64)
		c.Text(label, left-c.TextWidth(label, r.fontSize)-6, y+r.fontSize/2, colorText, r.fontSize)
	}

	// Date labels along the visible window.
	for i := 0; i < r.dateLabels; i++ {
		local := i * (count - 1) / (r.dateLabels - 1)
		x := IndexToPixelX(local, count, left, plotW)
		label := d.primary.points[visible.Start+local].When.Format("2006-01-02")
		c.Text(label, x-c.TextWidth(label, r.fontSize)/2, top+plotH+r.fontSize+8, colorText, r.fontSize)
	}

	// Instrument curves, dashed, clipped to their own index domains.
	for i := range d.instruments {
		r.strokeSeries(c, &d.instruments[i], visible, left, top, plotW, plotH, vmin, vmax,
			r.color(2+i), 1, []float64{3, 3})
	}

	// Trade marker glyphs, snapped to stored samples.
	for _, m := range d.markers {
		r.drawMarker(c, d, m, visible, left, top, plotW, plotH, vmin, vmax)
	}

	// Primary portfolio curve, solid and heavier.
	r.strokeSeries(c, &d.primary, visible, left, top, plotW, plotH, vmin, vmax, r.color(0), 2, nil)

	// Benchmark curve, dashed.
	if len(d.benchmark.points) > 0 {
		r.strokeSeries(c, &d.benchmark, visible, left, top, plotW, plotH, vmin, vmax,
			r.color(1), 1, []float64{6, 4})
	}

	// Legend below the date axis.
	r.drawLegend(c, slots, left, top+plotH+marginBottom)

	return plotArea{left: left, top: top, w: plotW, h: plotH}
}

// strokeSeries draws the slice of a curve that intersects the visible
// window. Local pixel positions are computed against the shared window so
// shorter curves stay aligned with the primary one.
func (r *Renderer) strokeSeries(c Canvas, s *series, visible Range, left, top, plotW, plotH, vmin, vmax float64, col color.RGBA, width float64, dash []float64) {
	start, end := visible.Start, visible.End
	if end > len(s.points) {
		end = len(s.points)
	}
	if end-start < 2 {
		return
	}

	count := visible.Count()
	xs := make([]float64, 0, end-start)
	ys := make([]float64, 0, end-start)
	for i := start; i < end; i++ {
		xs = append(xs, IndexToPixelX(i-start, count, left, plotW))
		ys = append(ys, ToPixelY(s.points[i].Value, vmin, vmax, top, plotH))
	}
	c.Polyline(xs, ys, col, width, dash)
}

// drawMarker paints a buy (upward) or sell (downward) triangle at the
// snapped sample position, clamped inside the plot margins so glyphs are
// never clipped.
func (r *Renderer) drawMarker(c Canvas, d *Dataset, m snappedMarker, visible Range, left, top, plotW, plotH, vmin, vmax float64) {
	if m.index < visible.Start || m.index >= visible.End || m.index >= len(m.series.points) {
		return
	}

	x := IndexToPixelX(m.index-visible.Start, visible.Count(), left, plotW)
	y := ToPixelY(m.series.points[m.index].Value, vmin, vmax, top, plotH)
	x = clamp(x, left+markerInset, left+plotW-markerInset)
	y = clamp(y, top+markerInset, top+plotH-markerInset)

	var (
		col color.RGBA
		tip float64
	)
	switch m.kind {
	case Buy:
		col, tip = colorBuy, y-markerHalfSize // apex up
	default:
		col, tip = colorSell, y+markerHalfSize // apex down
	}

	c.FillPolygon(
		[]float64{x, x - markerHalfSize, x + markerHalfSize},
		[]float64{tip, 2*y - tip, 2*y - tip},
		col,
	)
}

func (r *Renderer) legendItems(d *Dataset) []legendItem {
	items := []legendItem{{label: d.primary.label, color: r.color(0)}}
	if len(d.benchmark.points) > 0 {
		items = append(items, legendItem{label: d.benchmark.label, color: r.color(1)})
	}
	for i := range d.instruments {
		items = append(items, legendItem{label: d.instruments[i].label, color: r.color(2 + i)})
	}
	return items
}

func (r *Renderer) drawLegend(c Canvas, slots []legendSlot, left, top float64) {
	for _, s := range slots {
		y := top + legendPad + s.y
		c.FillRect(left+s.x, y+(legendRowHeight-legendSwatch)/2, legendSwatch, legendSwatch, s.color)
		c.Text(s.label, left+s.x+legendSwatch+legendSwatchGap, y+legendRowHeight-r.fontSize/2, colorText, r.fontSize)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
