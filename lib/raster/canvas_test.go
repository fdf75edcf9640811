package raster

import (
	"bytes"
	"image/color"
	"testing"
	"time"

	fundchart "github.com/fundlens/fundchart/lib"
)

var black = color.RGBA{A: 0xFF}

func TestCanvasSavePNG(t *testing.T) {
	c, err := NewPNG(200, 100)
	if err != nil {
		t.Fatal(err)
	}

	c.FillRect(0, 0, 200, 100, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF})
	c.Line(10, 10, 190, 90, black, 1, nil)
	c.Polyline([]float64{10, 50, 90}, []float64{50, 20, 50}, black, 2, []float64{3, 3})
	c.FillPolygon([]float64{100, 95, 105}, []float64{40, 50, 50}, black)
	c.Text("hello", 20, 80, black, 10)

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestCanvasSaveSVG(t *testing.T) {
	c, err := NewSVG(200, 100)
	if err != nil {
		t.Fatal(err)
	}

	c.Line(10, 10, 190, 90, black, 1, nil)

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("<svg")) {
		t.Errorf("output is not an SVG: %.40s", buf.Bytes())
	}
}

func TestCanvasTextWidth(t *testing.T) {
	c, err := NewPNG(200, 100)
	if err != nil {
		t.Fatal(err)
	}

	short := c.TextWidth("io", 10)
	long := c.TextWidth("international orchestra", 10)
	if short <= 0 || long <= short {
		t.Errorf("TextWidth ordering: %g, %g", short, long)
	}
}

func TestCanvasRendersChart(t *testing.T) {
	began := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	points := make([]fundchart.Point, 400)
	for i := range points {
		points[i] = fundchart.Point{When: began.AddDate(0, 0, i), Value: 100 + float64(i%31)}
	}

	chart := fundchart.New()
	chart.SetSize(900, 500)
	if err := chart.Load(points, nil, nil, nil); err != nil {
		t.Fatal(err)
	}

	c, err := NewPNG(900, 500)
	if err != nil {
		t.Fatal(err)
	}
	chart.Render(c)

	var buf bytes.Buffer
	if err := c.Save(&buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Error("rendered chart saved zero bytes")
	}
}
