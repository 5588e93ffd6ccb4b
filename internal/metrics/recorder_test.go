package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.ObserveStageDuration("index", time.Millisecond)
		r.ObserveBuildDuration(time.Millisecond)
		r.IncFileResult(KindAsset, ResultSkipped)
		r.IncSettingsStatus("absent")
		r.SetListedPages(2)
	})
}
