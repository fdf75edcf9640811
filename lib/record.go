package fundchart

import (
	"errors"
	"time"

	tsz "github.com/tsenart/go-tsz"
)

// ErrNonMonotonicTime is reported when a recorded observation moves
// backwards in time.
var ErrNonMonotonicTime = errors.New("fundchart: non monotonically increasing timestamp")

// A Recorder buffers a stream of live valuations (intra-day ticks pushed
// by the backend during a session) with high compression of both
// timestamps and values. It's not safe for concurrent use.
//
// Timestamps carry millisecond precision relative to the first recorded
// observation.
type Recorder struct {
	began  time.Time
	prev   uint64
	data   *tsz.Series
	len    int
	closed bool
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{data: tsz.New(0)}
}

// Record appends one observation. Timestamps must not decrease.
func (r *Recorder) Record(t time.Time, v float64) error {
	if r.closed {
		return errors.New("fundchart: recorder already materialized")
	}
	if r.len == 0 {
		r.began = t
	}

	// A timestamp before began would wrap the uint64 conversion below.
	if t.Before(r.began) {
		return ErrNonMonotonicTime
	}

	ms := uint64(t.Sub(r.began)) / 1e6
	if r.prev > ms {
		return ErrNonMonotonicTime
	}

	r.data.Push(ms, v)
	r.prev = ms
	r.len++
	return nil
}

// Len returns the number of recorded observations.
func (r *Recorder) Len() int { return r.len }

// Points materializes the recorded stream into an immutable point slice
// ready for Chart.Load. It finishes the underlying compressed series, so
// no further observations can be recorded afterwards.
func (r *Recorder) Points() ([]Point, error) {
	if !r.closed {
		r.data.Finish()
		r.closed = true
	}

	points := make([]Point, 0, r.len)
	it := r.data.Iter()
	for it.Next() {
		ms, v := it.Values()
		points = append(points, Point{
			When:  r.began.Add(time.Duration(ms) * time.Millisecond),
			Value: v,
		})
	}
	return points, it.Err()
}
