package fundchart

import (
	"errors"
	"fmt"
	"time"
)

// A Point is a single (date, value) observation. Its position in the
// containing slice is its index; all series loaded together share the same
// index domain, even when shorter ones only cover a prefix of it.
type Point struct {
	When  time.Time `json:"t"`
	Value float64   `json:"v"`
}

// An Instrument is a per-holding curve overlaid on the primary series.
// Its points are aligned to the primary series by index, not by date.
type Instrument struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Points []Point `json:"points"`
}

// A MarkerKind discriminates buy and sell trade markers.
type MarkerKind uint8

const (
	Buy MarkerKind = iota
	Sell
)

func (k MarkerKind) String() string {
	switch k {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return fmt.Sprintf("MarkerKind(%d)", uint8(k))
	}
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *MarkerKind) UnmarshalText(value []byte) error {
	switch string(value) {
	case "buy":
		*k = Buy
	case "sell":
		*k = Sell
	default:
		return fmt.Errorf("bad marker kind: %s", value)
	}
	return nil
}

// A Marker is a discrete trade event to be drawn on the curve of the
// instrument it references, or on the primary curve when the instrument
// is unknown. Price is informational only; zero means not recorded.
type Marker struct {
	Instrument string     `json:"instrument,omitempty"`
	When       time.Time  `json:"t"`
	Kind       MarkerKind `json:"kind"`
	Price      float64    `json:"price,omitempty"`
}

// A Payload is the wire format a dashboard backend ships to the engine:
// one analysis result worth of curves and trade events.
type Payload struct {
	Primary     []Point      `json:"primary"`
	Benchmark   []Point      `json:"benchmark,omitempty"`
	Instruments []Instrument `json:"instruments,omitempty"`
	Markers     []Marker     `json:"markers,omitempty"`
}

// ErrNoData is reported when a payload carries no primary series.
var ErrNoData = errors.New("fundchart: empty primary series")

// A resolved marker has been snapped to a stored sample.
type snappedMarker struct {
	series *series // curve the marker sits on
	index  int     // index into series.points
	kind   MarkerKind
	price  float64
}

// series is one stored curve of a dataset. Points are the (possibly
// downsampled) samples that get drawn; origIndex traces each one back to
// its index in the pre-downsampling input.
type series struct {
	label     string
	points    []Point
	origIndex []int
}

// A Dataset is the immutable, render-ready form of one loaded payload.
// It is constructed once per load and never mutated afterwards.
type Dataset struct {
	primary     series
	benchmark   series
	instruments []series
	markers     []snappedMarker
	dropped     []Marker

	originalLen        int
	valueMin, valueMax float64
}

// Len returns the number of stored (drawable) samples of the primary series.
func (d *Dataset) Len() int { return len(d.primary.points) }

// OriginalLen returns the pre-downsampling length of the primary series.
func (d *Dataset) OriginalLen() int { return d.originalLen }

// ValueRange returns the padded vertical range shared by every redraw.
func (d *Dataset) ValueRange() (min, max float64) { return d.valueMin, d.valueMax }

// OriginalIndex maps a stored sample index back to the authoritative
// pre-downsampling index.
func (d *Dataset) OriginalIndex(i int) int { return d.primary.origIndex[i] }

// newDataset builds a Dataset out of raw host arrays, downsampling the
// shared index domain when the primary series exceeds threshold points.
// The same index selection is applied to every curve so that alignment
// by index survives downsampling.
func newDataset(primary, benchmark []Point, instruments []Instrument, markers []Marker, threshold, target int) (*Dataset, error) {
	if len(primary) == 0 {
		return nil, ErrNoData
	}
	if len(benchmark) > len(primary) {
		return nil, fmt.Errorf("fundchart: benchmark has %d points, primary only %d", len(benchmark), len(primary))
	}
	for _, in := range instruments {
		if len(in.Points) > len(primary) {
			return nil, fmt.Errorf("fundchart: instrument %q has %d points, primary only %d", in.ID, len(in.Points), len(primary))
		}
	}

	d := &Dataset{originalLen: len(primary)}
	d.valueMin, d.valueMax = valueRange(primary, benchmark, instruments)

	var selection []int
	if threshold > 0 && len(primary) > threshold {
		ds := Downsample(primary, target)
		selection = ds.OriginalIndex
		d.primary = series{label: "Portfolio", points: ds.Points, origIndex: ds.OriginalIndex}
	} else {
		selection = identityIndex(len(primary))
		d.primary = series{label: "Portfolio", points: primary, origIndex: selection}
	}

	if len(benchmark) > 0 {
		d.benchmark = project("Benchmark", benchmark, selection)
	}
	for _, in := range instruments {
		label := in.Label
		if label == "" {
			label = in.ID
		}
		s := project(label, in.Points, selection)
		s.points = s.points[:len(s.points):len(s.points)]
		d.instruments = append(d.instruments, s)
	}

	d.markers, d.dropped = snapMarkers(d, instruments, markers)

	return d, nil
}

// project samples a curve at the given original indices, stopping at the
// curve's own (possibly shorter) domain.
func project(label string, points []Point, selection []int) series {
	s := series{label: label}
	for _, idx := range selection {
		if idx >= len(points) {
			break
		}
		s.points = append(s.points, points[idx])
		s.origIndex = append(s.origIndex, idx)
	}
	return s
}

func identityIndex(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// valueRange computes the union min/max over every curve, padded by 10%
// of the spread on each side so the vertical scale stays put while panning.
func valueRange(primary, benchmark []Point, instruments []Instrument) (min, max float64) {
	min, max = primary[0].Value, primary[0].Value
	span := func(points []Point) {
		for _, p := range points {
			if p.Value < min {
				min = p.Value
			}
			if p.Value > max {
				max = p.Value
			}
		}
	}
	span(primary)
	span(benchmark)
	for _, in := range instruments {
		span(in.Points)
	}

	pad := (max - min) * 0.1
	if pad == 0 {
		pad = 1
	}
	return min - pad, max + pad
}

// snapMarkers resolves each marker to the stored sample of its curve whose
// date matches at day granularity. Markers with no matching sample are
// dropped; the caller reports them at debug level.
func snapMarkers(d *Dataset, instruments []Instrument, markers []Marker) ([]snappedMarker, []Marker) {
	type dayIndex map[string]int
	byDay := func(s *series) dayIndex {
		di := make(dayIndex, len(s.points))
		for i := len(s.points) - 1; i >= 0; i-- {
			di[dayKey(s.points[i].When)] = i
		}
		return di
	}

	curves := map[string]*series{"": &d.primary}
	for i := range d.instruments {
		curves[instruments[i].ID] = &d.instruments[i]
	}

	days := map[*series]dayIndex{}
	var (
		snapped []snappedMarker
		dropped []Marker
	)
	for _, m := range markers {
		curve, ok := curves[m.Instrument]
		if !ok {
			curve = &d.primary
		}
		di, ok := days[curve]
		if !ok {
			di = byDay(curve)
			days[curve] = di
		}
		idx, ok := di[dayKey(m.When)]
		if !ok {
			dropped = append(dropped, m)
			continue
		}
		snapped = append(snapped, snappedMarker{series: curve, index: idx, kind: m.Kind, price: m.Price})
	}
	return snapped, dropped
}

func dayKey(t time.Time) string { return t.UTC().Format("2006-01-02") }
