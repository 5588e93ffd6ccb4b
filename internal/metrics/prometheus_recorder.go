package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	stageDuration  *prom.HistogramVec
	buildDuration  prom.Histogram
	fileResults    *prom.CounterVec
	settingsStatus *prom.CounterVec
	listedPages    prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg
// (a fresh registry when reg is nil).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		stageDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "sedum",
			Name:      "stage_duration_seconds",
			Help:      "Duration of individual build stages",
			Buckets:   prom.DefBuckets,
		}, []string{"stage"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sedum",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		fileResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sedum",
			Name:      "file_results_total",
			Help:      "Processed files by kind and result",
		}, []string{"kind", "result"}),
		settingsStatus: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sedum",
			Name:      "page_settings_total",
			Help:      "Page settings resolution outcomes",
		}, []string{"status"}),
		listedPages: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sedum",
			Name:      "listed_pages",
			Help:      "Pages in the navigation list of the last build",
		}),
	}
	reg.MustRegister(pr.stageDuration, pr.buildDuration, pr.fileResults, pr.settingsStatus, pr.listedPages)
	return pr
}

func (p *PrometheusRecorder) ObserveStageDuration(stage string, d time.Duration) {
	if p == nil {
		return
	}
	p.stageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncFileResult(kind FileKind, result ResultLabel) {
	if p == nil {
		return
	}
	p.fileResults.WithLabelValues(string(kind), string(result)).Inc()
}

func (p *PrometheusRecorder) IncSettingsStatus(status string) {
	if p == nil {
		return
	}
	p.settingsStatus.WithLabelValues(status).Inc()
}

func (p *PrometheusRecorder) SetListedPages(n int) {
	if p == nil {
		return
	}
	p.listedPages.Set(float64(n))
}
