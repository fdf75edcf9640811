package fundchart

import "math"

// Default zoom bounds and the smallest visible window the model allows.
const (
	DefaultMinScale = 0.5
	DefaultMaxScale = 10

	minVisibleCount = 10
)

// A Range is a half-open window [Start, End) of stored sample indices.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Count returns the number of indices in the range.
func (r Range) Count() int { return r.End - r.Start }

// A Viewport owns the horizontal zoom and pan state of one chart. It is
// the only holder of that state: the renderer and the hit tester derive
// the visible window from it on every call, so repeated redraws cannot
// drift apart.
//
// scale is a magnification factor over the full index domain; offsetPx is
// a horizontal shift in surface pixels, clamped so the visible window
// stays within [0, length).
type Viewport struct {
	scale    float64
	offsetPx float64

	minScale, maxScale float64

	length int     // stored samples of the current dataset
	width  float64 // plot area width in pixels
}

// NewViewport returns a settled Viewport with the given zoom bounds.
// Non-positive bounds fall back to the defaults.
func NewViewport(minScale, maxScale float64) *Viewport {
	if minScale <= 0 {
		minScale = DefaultMinScale
	}
	if maxScale <= 0 {
		maxScale = DefaultMaxScale
	}
	return &Viewport{scale: 1, minScale: minScale, maxScale: maxScale}
}

// SetExtent fixes the data length and plot pixel width the viewport maps
// between. Changing the extent re-clamps the current offset but keeps the
// zoom level, so a container resize does not jump the view.
func (v *Viewport) SetExtent(length int, widthPx float64) {
	v.length = length
	v.width = widthPx
	v.offsetPx = v.clampOffset(v.offsetPx)
}

// Reset returns the viewport to the settled full view.
func (v *Viewport) Reset() {
	v.scale = 1
	v.offsetPx = 0
}

// Scale returns the current magnification factor.
func (v *Viewport) Scale() float64 { return v.scale }

// Offset returns the current horizontal pixel shift.
func (v *Viewport) Offset() float64 { return v.offsetPx }

// Zoom multiplies the scale by factor, clamped to the configured bounds.
// The data index under the pivot pixel stays visually stationary; a pivot
// of zero therefore holds the left edge fixed.
func (v *Viewport) Zoom(factor, pivotPx float64) {
	scale := v.scale * factor
	if scale < v.minScale {
		scale = v.minScale
	}
	if scale > v.maxScale {
		scale = v.maxScale
	}
	if scale == v.scale {
		return
	}

	pivotIndex := v.indexAtPixel(pivotPx)
	v.scale = scale
	if v.length > 0 {
		v.offsetPx = v.clampOffset(pivotIndex/float64(v.length)*v.virtualWidth() - pivotPx)
	}
}

// Pan shifts the view by deltaPx surface pixels, clamped so the visible
// window never leaves [0, length).
func (v *Viewport) Pan(deltaPx float64) {
	v.offsetPx = v.clampOffset(v.offsetPx + deltaPx)
}

// VisibleRange derives the visible window of stored sample indices from
// the current state. It is side-effect-free and idempotent: at scale 1
// and offset 0 it always returns {0, length}.
func (v *Viewport) VisibleRange() Range {
	if v.length == 0 {
		return Range{}
	}

	count := v.visibleCount()
	start := 0
	if vw := v.virtualWidth(); vw > 0 {
		start = int(math.Floor(v.offsetPx / vw * float64(v.length)))
	}
	if start > v.length-count {
		start = v.length - count
	}
	if start < 0 {
		start = 0
	}

	end := start + count
	if end > v.length {
		end = v.length
	}
	return Range{Start: start, End: end}
}

// visibleCount returns how many samples the current scale shows, never
// fewer than minVisibleCount so the view cannot degenerate.
func (v *Viewport) visibleCount() int {
	count := int(math.Floor(float64(v.length) / v.scale))
	if count < minVisibleCount {
		count = minVisibleCount
	}
	if count > v.length {
		count = v.length
	}
	return count
}

// virtualWidth is the pixel width the full index domain spans at the
// current scale.
func (v *Viewport) virtualWidth() float64 { return v.width * v.scale }

// indexAtPixel returns the fractional data index under the given plot
// pixel at the current state.
func (v *Viewport) indexAtPixel(px float64) float64 {
	vw := v.virtualWidth()
	if vw == 0 {
		return 0
	}
	return (v.offsetPx + px) / vw * float64(v.length)
}

func (v *Viewport) clampOffset(offset float64) float64 {
	max := v.virtualWidth() - v.width
	if max < 0 {
		max = 0
	}
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
