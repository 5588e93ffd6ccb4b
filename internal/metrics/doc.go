// Package metrics provides build metrics for sedum.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check. When a metrics file is
// requested, the CLI swaps in a PrometheusRecorder backed by its own registry
// and writes the registry in the Prometheus text format once the build ends
// (suitable for the node_exporter textfile collector).
//
//	reg := prometheus.NewRegistry()
//	rec := metrics.NewPrometheusRecorder(reg)
//	builder := build.New(cfg, build.WithRecorder(rec))
//	...
//	err := metrics.WriteTextfile(path, reg)
package metrics
