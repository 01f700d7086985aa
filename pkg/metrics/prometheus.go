package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	feedItems    *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	lastChange   *prometheus.GaugeVec
	snapshotSize *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		feedItems: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signaldesk_feed_items_total",
				Help: "Total number of raw feed items ingested per provider",
			},
			[]string{"provider"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "signaldesk_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastChange: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "signaldesk_asset_change_24h_pct",
				Help: "Last observed 24h percentage change per asset",
			},
			[]string{"asset"},
		),
		snapshotSize: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "signaldesk_snapshot_size",
				Help: "Entity counts in the latest published snapshot",
			},
			[]string{"entity"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "signaldesk_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}
}

// RecordFeedItems records the number of raw items fetched from a provider.
func (r *Recorder) RecordFeedItems(provider string, n int) {
	r.feedItems.WithLabelValues(provider).Add(float64(n))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordAssetChange records the last 24h change for an asset.
func (r *Recorder) RecordAssetChange(asset string, pct float64) {
	r.lastChange.WithLabelValues(asset).Set(pct)
}

// RecordSnapshotSize records entity counts in the published snapshot.
func (r *Recorder) RecordSnapshotSize(entity string, n int) {
	r.snapshotSize.WithLabelValues(entity).Set(float64(n))
}

// RecordLatency records stage latency in seconds.
func (r *Recorder) RecordLatency(stage string, seconds float64) {
	r.latency.WithLabelValues(stage).Observe(seconds)
}
