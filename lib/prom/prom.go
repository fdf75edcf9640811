// Package prom exposes fundchart engine activity as Prometheus metrics.
package prom

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	fundchart "github.com/fundlens/fundchart/lib"
)

// Metrics is a fundchart.Observer with exposition as a Prometheus
// metrics endpoint. Each Metrics owns its registry, so multiple
// instrumented charts in one process do not collide.
type Metrics struct {
	renderSecondsHistogram prometheus.Histogram
	downsampleCounter      prometheus.Counter
	downsampleRatioGauge   prometheus.Gauge
	hoverCounter           prometheus.Counter
	visibleStartGauge      prometheus.Gauge
	visibleEndGauge        prometheus.Gauge
	srv                    *http.Server
	registry               *prometheus.Registry
}

var _ fundchart.Observer = (*Metrics)(nil)

// NewMetrics returns a Metrics without an exposition server, for hosts
// that scrape through their own registry handler.
func NewMetrics() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.renderSecondsHistogram = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "chart_render_seconds",
		Help:    "Duration of full render passes",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
	m.downsampleCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chart_downsample_total",
		Help: "Dataset loads that triggered downsampling",
	})
	m.downsampleRatioGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chart_downsample_ratio",
		Help: "Stored points over original points of the last downsampled load",
	})
	m.hoverCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "chart_hover_lookups_total",
		Help: "Pointer positions resolved to a data sample",
	})
	m.visibleStartGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chart_visible_start_index",
		Help: "Start of the visible sample window",
	})
	m.visibleEndGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chart_visible_end_index",
		Help: "End of the visible sample window",
	})

	m.registry.MustRegister(
		m.renderSecondsHistogram,
		m.downsampleCounter,
		m.downsampleRatioGauge,
		m.hoverCounter,
		m.visibleStartGauge,
		m.visibleEndGauge,
	)

	return m
}

// NewMetricsWithServer additionally serves the exposition endpoint on the
// given bind URL, e.g. "http://0.0.0.0:8880".
func NewMetricsWithServer(bindURL string) (*Metrics, error) {
	p, err := url.Parse(bindURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bindURL %s, must be in format 'http://0.0.0.0:8880': %w", bindURL, err)
	}
	bindHost, bindPort, err := net.SplitHostPort(p.Host)
	if err != nil {
		return nil, fmt.Errorf("invalid bindURL %s, must be in format 'http://0.0.0.0:8880': %w", bindURL, err)
	}

	m := NewMetrics()
	m.srv = &http.Server{
		Addr:    net.JoinHostPort(bindHost, bindPort),
		Handler: promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}),
	}

	go func() {
		m.srv.ListenAndServe()
	}()

	return m, nil
}

// Registry returns the metrics registry for hosts mounting their own
// exposition handler.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Close shuts down the exposition server, if one was started.
func (m *Metrics) Close() error {
	if m.srv == nil {
		return nil
	}
	return m.srv.Shutdown(context.Background())
}

// ObserveRender implements the fundchart.Observer interface.
func (m *Metrics) ObserveRender(elapsed time.Duration) {
	m.renderSecondsHistogram.Observe(elapsed.Seconds())
}

// ObserveDownsample implements the fundchart.Observer interface.
func (m *Metrics) ObserveDownsample(before, after int) {
	m.downsampleCounter.Inc()
	if before > 0 {
		m.downsampleRatioGauge.Set(float64(after) / float64(before))
	}
}

// ObserveViewport implements the fundchart.Observer interface.
func (m *Metrics) ObserveViewport(visible fundchart.Range) {
	m.visibleStartGauge.Set(float64(visible.Start))
	m.visibleEndGauge.Set(float64(visible.End))
}

// ObserveHover implements the fundchart.Observer interface.
func (m *Metrics) ObserveHover() {
	m.hoverCounter.Inc()
}
