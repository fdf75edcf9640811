package fundchart

// A SeriesValue is one curve's contribution to a hover tooltip. PctChange
// is relative to the curve's first value inside the visible window, so a
// zoomed view reports period-relative performance.
type SeriesValue struct {
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	PctChange float64 `json:"pct_change"`
}

// A HoverPoint is the resolved data under a pointer position. Index is
// the authoritative pre-downsampling index of the primary series; AnchorX
// is the suggested pixel to anchor a host tooltip element at.
type HoverPoint struct {
	Index   int           `json:"index"`
	When    string        `json:"when"`
	AnchorX float64       `json:"anchor_x"`
	Values  []SeriesValue `json:"values"`
}

// NearestPoint maps a pointer pixel position back to the nearest visible
// sample, using the same index mapping the last render pass drew with.
// It returns nil when the pointer is outside the plot bounds; callers
// must then hide their tooltip.
func (c *Chart) NearestPoint(pixelX, pixelY float64) *HoverPoint {
	if c.data == nil || c.data.Len() < 2 {
		return nil
	}

	plot := c.plot
	if plot.w == 0 {
		left, w := plotX(c.width)
		plot = plotArea{left: left, top: marginTop, w: w, h: c.height - marginTop - marginBottom}
	}
	if !plot.contains(pixelX, pixelY) {
		return nil
	}

	visible := c.vp.VisibleRange()
	count := visible.Count()
	local := PixelXToIndex(pixelX, count, plot.left, plot.w)
	idx := visible.Start + local

	hp := &HoverPoint{
		Index:   c.data.OriginalIndex(idx),
		When:    c.data.primary.points[idx].When.Format("2006-01-02"),
		AnchorX: IndexToPixelX(local, count, plot.left, plot.w),
	}

	curves := []*series{&c.data.primary}
	if len(c.data.benchmark.points) > 0 {
		curves = append(curves, &c.data.benchmark)
	}
	for i := range c.data.instruments {
		curves = append(curves, &c.data.instruments[i])
	}

	for _, s := range curves {
		if idx >= len(s.points) || visible.Start >= len(s.points) {
			continue
		}
		base := s.points[visible.Start].Value
		sv := SeriesValue{Label: s.label, Value: s.points[idx].Value}
		if base != 0 {
			sv.PctChange = (s.points[idx].Value - base) / base * 100
		}
		hp.Values = append(hp.Values, sv)
	}

	return hp
}
