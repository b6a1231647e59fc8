package metric

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// RunSample is the subset of a benchmark result exported as metrics.
type RunSample struct {
	RunID        string
	Mode         string
	Clock        string
	Iterations   int
	BytesShifted int64
	Elapsed      time.Duration
	Digest       string
}

// Collector exposes the most recently observed run.
type Collector struct {
	last atomic.Pointer[RunSample]

	elapsed    *prometheus.Desc
	iterations *prometheus.Desc
	throughput *prometheus.Desc
	info       *prometheus.Desc
}

// NewCollector creates a collector with no run recorded.
func NewCollector(namespace string) *Collector {
	return &Collector{
		elapsed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "last_run", "elapsed_seconds"),
			"Elapsed time of the most recent benchmark loop.",
			nil, nil,
		),
		iterations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "last_run", "iterations"),
			"Iterations executed by the most recent benchmark loop.",
			nil, nil,
		),
		throughput: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "last_run", "bytes_per_second"),
			"Shifted bytes per second in the most recent benchmark loop.",
			nil, nil,
		),
		info: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "last_run", "info"),
			"Labels describing the most recent benchmark run.",
			[]string{"run_id", "mode", "clock", "digest"}, nil,
		),
	}
}

// Record replaces the exported run.
func (c *Collector) Record(s RunSample) {
	c.last.Store(&s)
}

// Last returns the exported run, or false if none has been recorded.
func (c *Collector) Last() (RunSample, bool) {
	s := c.last.Load()
	if s == nil {
		return RunSample{}, false
	}
	return *s, true
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.elapsed
	ch <- c.iterations
	ch <- c.throughput
	ch <- c.info
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.last.Load()
	if s == nil {
		return
	}

	seconds := s.Elapsed.Seconds()
	ch <- prometheus.MustNewConstMetric(c.elapsed, prometheus.GaugeValue, seconds)
	ch <- prometheus.MustNewConstMetric(c.iterations, prometheus.GaugeValue, float64(s.Iterations))

	var rate float64
	if seconds > 0 {
		rate = float64(s.BytesShifted) / seconds
	}
	ch <- prometheus.MustNewConstMetric(c.throughput, prometheus.GaugeValue, rate)
	ch <- prometheus.MustNewConstMetric(c.info, prometheus.GaugeValue, 1, s.RunID, s.Mode, s.Clock, s.Digest)
}
