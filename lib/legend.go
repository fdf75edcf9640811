package fundchart

import "image/color"

// Legend layout constants, in pixels.
const (
	legendSwatch    = 10 // color swatch side
	legendSwatchGap = 4  // swatch to label
	legendItemGap   = 14 // item to next item
	legendRowHeight = 18
	legendPad       = 6 // above the first row
)

type legendItem struct {
	label string
	color color.RGBA
}

// a laid-out legend entry, positioned relative to the legend origin.
type legendSlot struct {
	x, y  float64
	label string
	color color.RGBA
}

// layoutLegend flows swatch+label pairs left to right, wrapping to a new
// row when the next item would overrun the available width. Labels wider
// than maxLabelWidth are truncated with an ellipsis first, so even a
// width narrower than the widest single label lays out without error.
func layoutLegend(items []legendItem, width, maxLabelWidth float64, measure func(string) float64) (slots []legendSlot, rows int) {
	if len(items) == 0 {
		return nil, 0
	}

	var x, y float64
	rows = 1
	for _, it := range items {
		label := truncateLabel(it.label, maxLabelWidth, measure)
		w := legendSwatch + legendSwatchGap + measure(label)

		if x > 0 && x+w > width {
			x, y = 0, y+legendRowHeight
			rows++
		}

		slots = append(slots, legendSlot{x: x, y: y, label: label, color: it.color})
		x += w + legendItemGap
	}
	return slots, rows
}

// truncateLabel cuts runes off the end of label until it fits in maxWidth,
// appending an ellipsis. A budget too small for even one rune yields the
// bare ellipsis.
func truncateLabel(label string, maxWidth float64, measure func(string) float64) string {
	if measure(label) <= maxWidth {
		return label
	}

	runes := []rune(label)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		if s := string(runes) + "…"; measure(s) <= maxWidth {
			return s
		}
	}
	return "…"
}

func legendHeight(rows int) float64 {
	if rows == 0 {
		return 0
	}
	return legendPad + float64(rows)*legendRowHeight
}
