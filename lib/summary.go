package fundchart

import "github.com/influxdata/tdigest"

// A Summary holds the stats computed out of one curve's values, for the
// dashboard's per-fund statistics panel.
type Summary struct {
	Label string  `json:"label"`
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Mean  float64 `json:"mean"`
	P25   float64 `json:"p25"`
	P50   float64 `json:"p50"`
	P75   float64 `json:"p75"`
	P95   float64 `json:"p95"`
}

// Summarize computes value statistics for a slice of points. Quantiles
// are estimated with a t-digest, which keeps memory bounded for long
// daily histories.
func Summarize(label string, points []Point) *Summary {
	s := &Summary{Label: label, Count: len(points)}
	if len(points) == 0 {
		return s
	}

	td := tdigest.NewWithCompression(100)
	s.Min, s.Max = points[0].Value, points[0].Value

	var total float64
	for _, p := range points {
		td.Add(p.Value, 1)
		total += p.Value
		if p.Value < s.Min {
			s.Min = p.Value
		}
		if p.Value > s.Max {
			s.Max = p.Value
		}
	}

	s.Mean = total / float64(len(points))
	s.P25 = td.Quantile(0.25)
	s.P50 = td.Quantile(0.50)
	s.P75 = td.Quantile(0.75)
	s.P95 = td.Quantile(0.95)
	return s
}

// Summaries computes a Summary per curve of a payload, primary first.
func Summaries(p *Payload) []*Summary {
	out := []*Summary{Summarize("Portfolio", p.Primary)}
	if len(p.Benchmark) > 0 {
		out = append(out, Summarize("Benchmark", p.Benchmark))
	}
	for _, in := range p.Instruments {
		label := in.Label
		if label == "" {
			label = in.ID
		}
		out = append(out, Summarize(label, in.Points))
	}
	return out
}
