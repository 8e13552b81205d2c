package ingest

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/runhub/activity-pipeline/internal/processing"
)

var (
	ingestedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_pipeline",
		Subsystem: "ingest",
		Name:      "activities_ingested_total",
		Help:      "Number of raw activities standardized and stored.",
	}, []string{"platform", "activity_type"})

	duplicateCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_pipeline",
		Subsystem: "ingest",
		Name:      "duplicates_skipped_total",
		Help:      "Number of raw activities skipped because their fingerprint was already stored.",
	}, []string{"platform", "activity_type"})

	pointsKeptCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_pipeline",
		Subsystem: "ingest",
		Name:      "track_points_kept_total",
		Help:      "Number of track points that survived sanitization and were stored.",
	}, []string{"platform"})

	pointsDroppedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_pipeline",
		Subsystem: "ingest",
		Name:      "track_points_dropped_total",
		Help:      "Number of track points removed during sanitization, by reason.",
	}, []string{"platform", "reason"})

	heartRatesClearedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activity_pipeline",
		Subsystem: "ingest",
		Name:      "heart_rates_cleared_total",
		Help:      "Number of implausible heart-rate samples cleared during sanitization.",
	}, []string{"platform"})
)

func init() {
	prometheus.MustRegister(
		ingestedCounter,
		duplicateCounter,
		pointsKeptCounter,
		pointsDroppedCounter,
		heartRatesClearedCounter,
	)
}

func recordIngested(platform, activityType string, report processing.SanitizeReport, pointsKept int) {
	ingestedCounter.WithLabelValues(platform, activityType).Inc()
	pointsKeptCounter.WithLabelValues(platform).Add(float64(pointsKept))
	if report.InvalidCoordinates > 0 {
		pointsDroppedCounter.WithLabelValues(platform, "invalid_coordinates").Add(float64(report.InvalidCoordinates))
	}
	if report.DuplicateTimestamps > 0 {
		pointsDroppedCounter.WithLabelValues(platform, "duplicate_timestamp").Add(float64(report.DuplicateTimestamps))
	}
	if report.ClearedHeartRates > 0 {
		heartRatesClearedCounter.WithLabelValues(platform).Add(float64(report.ClearedHeartRates))
	}
}

func recordDuplicateSkipped(platform, activityType string) {
	duplicateCounter.WithLabelValues(platform, activityType).Inc()
}
