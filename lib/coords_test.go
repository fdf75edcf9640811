package fundchart

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestToPixelY(t *testing.T) {
	t.Parallel()

	for ti, tt := range []struct {
		value, min, max float64
		top, height     float64
		want            float64
	}{
		// Larger values map to smaller y.
		{100, 0, 100, 0, 400, 0},
		{0, 0, 100, 0, 400, 400},
		{50, 0, 100, 0, 400, 200},
		{50, 0, 100, 16, 400, 216},
		{75, 50, 100, 0, 200, 100},
	} {
		if got := ToPixelY(tt.value, tt.min, tt.max, tt.top, tt.height); got != tt.want {
			t.Errorf("%d: ToPixelY(%g) = %g; want %g", ti, tt.value, got, tt.want)
		}
	}
}

func TestToPixelYDegenerateRangePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("ToPixelY with empty value range did not panic")
		}
	}()
	ToPixelY(1, 5, 5, 0, 100)
}

func TestPixelXToIndexClamps(t *testing.T) {
	t.Parallel()

	for ti, tt := range []struct {
		x    float64
		want int
	}{
		{-1e6, 0},
		{0, 0},
		{800, 99},
		{1e6, 99},
	} {
		if got := PixelXToIndex(tt.x, 100, 0, 800); got != tt.want {
			t.Errorf("%d: PixelXToIndex(%g) = %d; want %d", ti, tt.x, got, tt.want)
		}
	}
}

func TestDegenerateVisibleCountPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("IndexToPixelX with visibleCount=1 did not panic")
		}
	}()
	IndexToPixelX(0, 1, 0, 800)
}

// Mapping a pixel to an index and back must land within one
// pixel-per-point width of the original pixel.
func TestRoundTripMapping(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		count := rapid.IntRange(2, 5000).Draw(t, "count")
		left := rapid.Float64Range(0, 100).Draw(t, "left")
		width := rapid.Float64Range(50, 4000).Draw(t, "width")
		x := rapid.Float64Range(left, left+width).Draw(t, "x")

		idx := PixelXToIndex(x, count, left, width)
		back := IndexToPixelX(idx, count, left, width)

		perPoint := width / float64(count-1)
		if diff := math.Abs(back - x); diff >= perPoint {
			t.Fatalf("round trip moved %g pixels, want < %g", diff, perPoint)
		}
	})
}
