package fundchart

import (
	"image/color"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// A recordingCanvas captures draw primitives for assertions. Text is
// measured at a fixed 6px per rune so layout is deterministic.
type recordingCanvas struct {
	ops []canvasOp
}

type canvasOp struct {
	Kind   string
	X, Y   float64
	W, H   float64
	Points int
	Dashed bool
	Text   string
	Color  color.RGBA
}

func (rc *recordingCanvas) FillRect(x, y, w, h float64, c color.RGBA) {
	rc.ops = append(rc.ops, canvasOp{Kind: "rect", X: x, Y: y, W: w, H: h, Color: c})
}

func (rc *recordingCanvas) Line(x1, y1, x2, y2 float64, c color.RGBA, width float64, dash []float64) {
	rc.ops = append(rc.ops, canvasOp{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Dashed: dash != nil, Color: c})
}

func (rc *recordingCanvas) Polyline(xs, ys []float64, c color.RGBA, width float64, dash []float64) {
	rc.ops = append(rc.ops, canvasOp{Kind: "polyline", X: xs[0], Y: ys[0], Points: len(xs), Dashed: dash != nil, Color: c})
}

func (rc *recordingCanvas) FillPolygon(xs, ys []float64, c color.RGBA) {
	rc.ops = append(rc.ops, canvasOp{Kind: "polygon", X: xs[0], Y: ys[0], Points: len(xs), Color: c})
}

func (rc *recordingCanvas) Text(s string, x, y float64, c color.RGBA, size float64) {
	rc.ops = append(rc.ops, canvasOp{Kind: "text", X: x, Y: y, Text: s, Color: c})
}

func (rc *recordingCanvas) TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * 6
}

func (rc *recordingCanvas) count(kind string) int {
	var n int
	for _, op := range rc.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func (rc *recordingCanvas) texts() []string {
	var out []string
	for _, op := range rc.ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func testChart(t *testing.T, n int, opts ...Opt) (*Chart, []Point) {
	t.Helper()

	chart := New(append([]Opt{DownsampleThreshold(0)}, opts...)...)
	chart.SetSize(900, 500)

	points := sineSeries(n)
	if err := chart.Load(points, nil, nil, nil); err != nil {
		t.Fatal(err)
	}
	return chart, points
}

func TestRenderPlaceholderWithoutData(t *testing.T) {
	t.Parallel()

	chart := New()
	chart.SetSize(900, 500)

	rc := &recordingCanvas{}
	chart.Render(rc)

	if got := rc.count("polyline"); got != 0 {
		t.Errorf("placeholder drew %d polylines; want 0", got)
	}

	var found bool
	for _, s := range rc.texts() {
		if s == "no data" {
			found = true
		}
	}
	if !found {
		t.Errorf("placeholder text missing; texts: %q", rc.texts())
	}
}

func TestRenderEmptyLoadKeepsPreviousState(t *testing.T) {
	t.Parallel()

	chart, _ := testChart(t, 100)
	if err := chart.Load(nil, nil, nil, nil); err != nil {
		t.Fatalf("empty load: %v", err)
	}

	rc := &recordingCanvas{}
	chart.Render(rc)

	if got := rc.count("polyline"); got == 0 {
		t.Error("previous dataset was discarded by an empty load")
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	t.Parallel()

	chart, _ := testChart(t, 100)
	chart.Viewport().Zoom(2, 300)
	chart.Viewport().Pan(42)

	first := &recordingCanvas{}
	chart.Render(first)
	second := &recordingCanvas{}
	chart.Render(second)

	if diff := cmp.Diff(first.ops, second.ops); diff != "" {
		t.Errorf("two renders of unchanged state differ (-first +second):\n%s", diff)
	}
}

func TestRenderDrawOrderAndCurves(t *testing.T) {
	t.Parallel()

	points := sineSeries(100)
	instrument := Instrument{ID: "VWCE", Label: "All-World", Points: points[:50]}

	chart := New(DownsampleThreshold(0))
	chart.SetSize(900, 500)
	if err := chart.Load(points, points, []Instrument{instrument}, nil); err != nil {
		t.Fatal(err)
	}

	rc := &recordingCanvas{}
	chart.Render(rc)

	var polys []canvasOp
	for _, op := range rc.ops {
		if op.Kind == "polyline" {
			polys = append(polys, op)
		}
	}
	if len(polys) != 3 {
		t.Fatalf("drew %d polylines; want 3 (instrument, primary, benchmark)", len(polys))
	}

	// Shorter instrument curve is clipped to its own domain and drawn
	// beneath the primary and benchmark curves.
	if got := polys[0]; !got.Dashed || got.Points != 50 {
		t.Errorf("instrument polyline = %+v; want dashed with 50 points", got)
	}
	if got := polys[1]; got.Dashed || got.Points != 100 {
		t.Errorf("primary polyline = %+v; want solid with 100 points", got)
	}
	if got := polys[2]; !got.Dashed || got.Points != 100 {
		t.Errorf("benchmark polyline = %+v; want dashed with 100 points", got)
	}

	// 5 grid divisions paint 6 lines, each with a value label, and 6
	// date labels along the window.
	if got := rc.count("line"); got != 6 {
		t.Errorf("drew %d grid lines; want 6", got)
	}

	var dates int
	for _, s := range rc.texts() {
		if len(s) == len("2024-01-02") && s[4] == '-' {
			dates++
		}
	}
	if dates != 6 {
		t.Errorf("drew %d date labels; want 6", dates)
	}
}

func TestRenderSanitizesDateLabelCount(t *testing.T) {
	t.Parallel()

	// One label cannot span the window; the count falls back to the
	// default instead of dividing by zero in the label loop.
	for _, n := range []int{-3, 0, 1} {
		chart, _ := testChart(t, 100, DateLabels(n))

		rc := &recordingCanvas{}
		chart.Render(rc)

		var dates int
		for _, s := range rc.texts() {
			if len(s) == len("2024-01-02") && s[4] == '-' {
				dates++
			}
		}
		if dates != 6 {
			t.Errorf("DateLabels(%d): drew %d date labels; want the default 6", n, dates)
		}
	}
}

func TestRenderMarkers(t *testing.T) {
	t.Parallel()

	points := sineSeries(100)
	markers := []Marker{
		// Snaps to the sample on day 10.
		{When: points[10].When.Add(5 * time.Hour), Kind: Buy, Price: 101},
		// Scenario: no sample exists on this date; dropped, not drawn.
		{When: time.Date(2031, 3, 15, 0, 0, 0, 0, time.UTC), Kind: Sell},
	}

	chart := New(DownsampleThreshold(0))
	chart.SetSize(900, 500)
	if err := chart.Load(points, nil, nil, markers); err != nil {
		t.Fatal(err)
	}

	rc := &recordingCanvas{}
	chart.Render(rc)

	if got := rc.count("polygon"); got != 1 {
		t.Errorf("drew %d marker glyphs; want 1", got)
	}
}

func TestRenderMarkerClampedInsidePlot(t *testing.T) {
	t.Parallel()

	points := sineSeries(100)
	// First sample: its natural x position is the plot's left edge.
	markers := []Marker{{When: points[0].When, Kind: Buy}}

	chart := New(DownsampleThreshold(0))
	chart.SetSize(900, 500)
	if err := chart.Load(points, nil, nil, markers); err != nil {
		t.Fatal(err)
	}

	rc := &recordingCanvas{}
	chart.Render(rc)

	for _, op := range rc.ops {
		if op.Kind != "polygon" {
			continue
		}
		if op.X < marginLeft+markerInset-markerHalfSize {
			t.Errorf("marker glyph at x=%g not clamped inside the plot", op.X)
		}
		return
	}
	t.Fatal("marker glyph not drawn")
}
