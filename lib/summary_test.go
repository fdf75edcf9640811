package fundchart

import (
	"math/rand"
	"testing"

	perks "github.com/bmizerany/perks/quantile"
	gk "github.com/dgryski/go-gk"
	"github.com/influxdata/tdigest"
	streadway "github.com/streadway/quantile"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	// Values 101..200: exact order statistics are easy to state.
	points := rampSeries(100, 101)
	s := Summarize("Portfolio", points)

	if s.Label != "Portfolio" || s.Count != 100 {
		t.Errorf("label, count = %q, %d; want Portfolio, 100", s.Label, s.Count)
	}
	if s.Min != 101 || s.Max != 200 {
		t.Errorf("min, max = %g, %g; want 101, 200", s.Min, s.Max)
	}
	if !near(s.Mean, 150.5, 1e-9) {
		t.Errorf("mean = %g; want 150.5", s.Mean)
	}

	// The t-digest estimate over uniform data stays within one value of
	// the exact quantile.
	for _, q := range []struct {
		got, want float64
	}{
		{s.P25, 125.75},
		{s.P50, 150.5},
		{s.P75, 175.25},
		{s.P95, 195.05},
	} {
		if !near(q.got, q.want, 1) {
			t.Errorf("quantile = %g; want %g within 1", q.got, q.want)
		}
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize("Portfolio", nil)
	if s.Count != 0 || s.Min != 0 || s.Max != 0 || s.Mean != 0 {
		t.Errorf("empty summary = %+v; want zero stats", s)
	}
}

func TestSummaries(t *testing.T) {
	t.Parallel()

	p := &Payload{
		Primary:   rampSeries(10, 100),
		Benchmark: rampSeries(10, 200),
		Instruments: []Instrument{
			{ID: "VWCE", Label: "All-World", Points: rampSeries(5, 50)},
			{ID: "AGGH", Points: rampSeries(5, 40)}, // falls back to the ID
		},
	}

	got := Summaries(p)
	want := []string{"Portfolio", "Benchmark", "All-World", "AGGH"}
	if len(got) != len(want) {
		t.Fatalf("got %d summaries; want %d", len(got), len(want))
	}
	for i, label := range want {
		if got[i].Label != label {
			t.Errorf("%d: label = %q; want %q", i, got[i].Label, label)
		}
	}
}

// Compares the quantile estimators considered for Summarize. The t-digest
// won on the accuracy to allocation trade-off for daily fund histories.
func BenchmarkQuantileEstimators(b *testing.B) {
	rng := rand.New(rand.NewSource(0x5EED))
	values := make([]float64, 100000)
	for i := range values {
		values[i] = 100 + 15*rng.NormFloat64()
	}

	b.Run("tdigest", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			td := tdigest.NewWithCompression(100)
			for _, v := range values {
				td.Add(v, 1)
			}
			_ = td.Quantile(0.95)
		}
	})

	b.Run("streadway", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			est := streadway.New(
				streadway.Known(0.25, 0.01),
				streadway.Known(0.50, 0.01),
				streadway.Known(0.75, 0.01),
				streadway.Known(0.95, 0.001),
			)
			for _, v := range values {
				est.Add(v)
			}
			_ = est.Get(0.95)
		}
	})

	b.Run("gk", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			est := gk.New(0.001)
			for _, v := range values {
				est.Insert(v)
			}
			_ = est.Query(0.95)
		}
	})

	b.Run("perks", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			est := perks.NewTargeted(0.25, 0.50, 0.75, 0.95)
			for _, v := range values {
				est.Insert(v)
			}
			_ = est.Query(0.95)
		}
	})
}
