package fundchart

// Fixed-step zoom factors applied per wheel notch. Only the sign of the
// wheel delta is used.
const (
	wheelZoomOut = 0.9
	wheelZoomIn  = 1.1
)

// An InputController translates host pointer and wheel events into
// viewport mutations. It is a two-state machine, idle or dragging; the
// dragging flag doubles as the grabbing-cursor affordance the host UI
// shows during a pan.
type InputController struct {
	chart    *Chart
	dragging bool
	lastX    float64
}

// Grabbing reports whether an active drag is in progress.
func (ic *InputController) Grabbing() bool { return ic.dragging }

// PointerDown starts a drag when the pointer is inside the plot area.
func (ic *InputController) PointerDown(x, y float64) {
	if !ic.inPlot(x, y) {
		return
	}
	ic.dragging = true
	ic.lastX = x
}

// PointerMove pans the viewport while dragging, and resolves the hovered
// sample for tooltip listeners either way. Dragging the pointer left
// moves the window forward through the series.
func (ic *InputController) PointerMove(x, y float64) {
	if ic.dragging {
		dx := x - ic.lastX
		ic.lastX = x
		ic.chart.vp.Pan(-dx)
		ic.chart.fireViewportChange()
	}
	ic.chart.fireHover(ic.chart.NearestPoint(x, y))
}

// PointerUp ends an active drag.
func (ic *InputController) PointerUp(x, y float64) {
	ic.dragging = false
}

// PointerLeave cancels a drag immediately without committing any further
// pan, and clears the hover state.
func (ic *InputController) PointerLeave() {
	ic.dragging = false
	ic.chart.fireHover(nil)
}

// Wheel applies a fixed-step zoom pivoted at the pointer for any wheel
// event with a vertical delta inside the plot bounds. Events outside the
// plot, or with no vertical delta, are no-ops.
func (ic *InputController) Wheel(x, y, deltaY float64) {
	if deltaY == 0 || !ic.inPlot(x, y) {
		return
	}

	factor := wheelZoomIn
	if deltaY > 0 {
		factor = wheelZoomOut
	}
	ic.chart.vp.Zoom(factor, x-ic.chart.plotLeft())
	ic.chart.fireViewportChange()
}

func (ic *InputController) inPlot(x, y float64) bool {
	plot := ic.chart.plot
	if plot.w == 0 {
		left, w := plotX(ic.chart.width)
		plot = plotArea{left: left, top: marginTop, w: w, h: ic.chart.height - marginTop - marginBottom}
	}
	return plot.contains(x, y)
}
