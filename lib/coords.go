package fundchart

import (
	"fmt"
	"math"
)

// Pure coordinate mapping between data space and the plot pixel
// rectangle. Both the renderer and the hit tester go through these
// functions, so what a tooltip reports always matches what was drawn.

// ToPixelY maps a value onto the vertical pixel axis, inverted so that
// larger values sit higher on the surface.
func ToPixelY(value, valueMin, valueMax, pixelTop, pixelHeight float64) float64 {
	if valueMax <= valueMin {
		panic(fmt.Sprintf("coords: degenerate value range [%g, %g]", valueMin, valueMax))
	}
	return pixelTop + (1-(value-valueMin)/(valueMax-valueMin))*pixelHeight
}

// IndexToPixelX maps a local index within the visible window onto the
// horizontal pixel axis. The window spans the full plot width, so zoomed
// views spread fewer points over the same pixels.
//
// A visibleCount below 2 is a contract violation by a caller that
// bypassed the viewport model, and fails loudly.
func IndexToPixelX(localIndex, visibleCount int, pixelLeft, pixelWidth float64) float64 {
	checkVisible(visibleCount)
	return pixelLeft + float64(localIndex)/float64(visibleCount-1)*pixelWidth
}

// PixelXToIndex is the inverse of IndexToPixelX, rounded to the nearest
// local index and clamped to [0, visibleCount-1].
func PixelXToIndex(x float64, visibleCount int, pixelLeft, pixelWidth float64) int {
	checkVisible(visibleCount)
	idx := int(math.Round((x - pixelLeft) / pixelWidth * float64(visibleCount-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > visibleCount-1 {
		idx = visibleCount - 1
	}
	return idx
}

func checkVisible(visibleCount int) {
	if visibleCount < 2 {
		panic(fmt.Sprintf("coords: degenerate visible count %d", visibleCount))
	}
}
