package fundchart

import (
	"image/color"
	"time"

	"github.com/charmbracelet/log"
)

// Defaults for the host-overridable configuration values.
const (
	DefaultDownsampleThreshold = 200
	DefaultDownsampleTarget    = 200
)

// An Observer receives engine events for instrumentation. All methods
// are called synchronously from the interaction path and must be cheap.
type Observer interface {
	ObserveRender(elapsed time.Duration)
	ObserveDownsample(before, after int)
	ObserveViewport(visible Range)
	ObserveHover()
}

// Opt is a functional option type for Chart.
type Opt func(*Chart)

// DownsampleThreshold returns an Opt that sets the primary series length
// above which loads are downsampled. Zero disables downsampling.
func DownsampleThreshold(threshold int) Opt {
	return func(c *Chart) { c.threshold = threshold }
}

// DownsampleTarget returns an Opt that sets the point budget downsampled
// series are reduced to.
func DownsampleTarget(target int) Opt {
	return func(c *Chart) { c.target = target }
}

// ZoomBounds returns an Opt that sets the minimum and maximum scale.
func ZoomBounds(min, max float64) Opt {
	return func(c *Chart) { c.minScale, c.maxScale = min, max }
}

// DateLabels returns an Opt that sets how many date labels the renderer
// places along the visible window.
func DateLabels(n int) Opt {
	return func(c *Chart) { c.dateLabels = n }
}

// LegendLabelWidth returns an Opt that sets the pixel budget a legend
// label may occupy before it is truncated with an ellipsis.
func LegendLabelWidth(px float64) Opt {
	return func(c *Chart) { c.maxLabelWidth = px }
}

// Palette returns an Opt that sets the series color cycle. The slice is
// copied; charts never share mutable palette state.
func Palette(colors []color.RGBA) Opt {
	return func(c *Chart) { c.palette = append([]color.RGBA(nil), colors...) }
}

// Logger returns an Opt that sets the logger dropped markers and ignored
// loads are reported to at debug level.
func Logger(l *log.Logger) Opt {
	return func(c *Chart) { c.logger = l }
}

// WithObserver returns an Opt that registers an instrumentation Observer.
func WithObserver(o Observer) Opt {
	return func(c *Chart) { c.obs = o }
}

// A Chart is one fully independent chart instance: it owns its dataset,
// its viewport state and its listener lists, and shares no mutable state
// with other charts. There is no process-wide chart registry; hosts
// address a chart by holding its pointer.
type Chart struct {
	threshold     int
	target        int
	minScale      float64
	maxScale      float64
	dateLabels    int
	maxLabelWidth float64
	palette       []color.RGBA
	logger        *log.Logger
	obs           Observer

	data     *Dataset
	vp       *Viewport
	renderer *Renderer
	input    *InputController

	width, height float64
	plot          plotArea

	viewportListeners []func(Range)
	hoverListeners    []func(*HoverPoint)
}

// New returns a Chart with the given Opts applied over the defaults.
func New(opts ...Opt) *Chart {
	c := &Chart{
		threshold: DefaultDownsampleThreshold,
		target:    DefaultDownsampleTarget,
		minScale:  DefaultMinScale,
		maxScale:  DefaultMaxScale,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.vp = NewViewport(c.minScale, c.maxScale)
	c.renderer = newRenderer(c.dateLabels, c.maxLabelWidth, c.palette)
	c.input = &InputController{chart: c}
	return c
}

// Viewport exposes the chart's viewport model.
func (c *Chart) Viewport() *Viewport { return c.vp }

// Input exposes the controller host pointer events are routed through.
func (c *Chart) Input() *InputController { return c.input }

// Dataset returns the currently loaded dataset, nil before the first load.
func (c *Chart) Dataset() *Dataset { return c.data }

// SetSize records the drawing surface dimensions. Hosts call it at mount
// time and after every container resize, followed by a Render call.
func (c *Chart) SetSize(width, height float64) {
	c.width, c.height = width, height
	if c.data != nil {
		_, w := plotX(width)
		c.vp.SetExtent(c.data.Len(), w)
	}
}

// Load replaces the chart's dataset with a new analysis result,
// downsampling when the primary series exceeds the configured threshold,
// and fully resets the viewport so no stale index range can reference a
// series of a different length.
//
// An empty primary series leaves the previous chart state untouched; the
// next render paints a placeholder only if nothing was ever loaded.
func (c *Chart) Load(primary, benchmark []Point, instruments []Instrument, markers []Marker) error {
	d, err := newDataset(primary, benchmark, instruments, markers, c.threshold, c.target)
	if err == ErrNoData {
		c.debug("ignoring load of empty primary series")
		return nil
	}
	if err != nil {
		return err
	}

	for _, m := range d.dropped {
		c.debug("dropping marker with no matching sample", "kind", m.Kind.String(), "date", dayKey(m.When))
	}
	if c.obs != nil && d.Len() != d.OriginalLen() {
		c.obs.ObserveDownsample(d.OriginalLen(), d.Len())
	}

	c.data = d
	c.vp.Reset()
	_, w := plotX(c.width)
	c.vp.SetExtent(d.Len(), w)
	c.fireViewportChange()
	return nil
}

// Render is the single redraw entry point. It performs one synchronous,
// idempotent render pass of the current state onto the canvas.
func (c *Chart) Render(canvas Canvas) {
	began := time.Now()
	c.plot = c.renderer.Render(canvas, c.data, c.vp, c.width, c.height)
	if c.obs != nil {
		c.obs.ObserveRender(time.Since(began))
	}
}

// OnViewportChange registers a listener fired after every pan or zoom.
func (c *Chart) OnViewportChange(fn func(Range)) {
	c.viewportListeners = append(c.viewportListeners, fn)
}

// OnHover registers a listener fired on pointer movement with the
// resolved hover point, or nil when the pointer leaves the plot.
func (c *Chart) OnHover(fn func(*HoverPoint)) {
	c.hoverListeners = append(c.hoverListeners, fn)
}

func (c *Chart) fireViewportChange() {
	visible := c.vp.VisibleRange()
	if c.obs != nil {
		c.obs.ObserveViewport(visible)
	}
	for _, fn := range c.viewportListeners {
		fn(visible)
	}
}

func (c *Chart) fireHover(hp *HoverPoint) {
	if hp != nil && c.obs != nil {
		c.obs.ObserveHover()
	}
	for _, fn := range c.hoverListeners {
		fn(hp)
	}
}

func (c *Chart) plotLeft() float64 {
	if c.plot.w > 0 {
		return c.plot.left
	}
	left, _ := plotX(c.width)
	return left
}

func (c *Chart) debug(msg string, keyvals ...interface{}) {
	if c.logger != nil {
		c.logger.Debug(msg, keyvals...)
	}
}
