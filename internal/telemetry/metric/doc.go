// Package metric provides Prometheus metrics for encodebench.
//
//   - prometheus.go: the private registry, run counters and textfile export
//   - collector.go: a collector exposing the most recent run
//
// A one-shot process has no scrape endpoint, so metrics are written in the
// text exposition format to a file for node_exporter's textfile collector.
package metric
