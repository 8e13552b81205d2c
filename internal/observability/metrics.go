package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var activityStoredGauge = prometheus.NewGauge(prometheus.GaugeOpts{
	Namespace: "activity_pipeline",
	Subsystem: "persistence",
	Name:      "last_activity_stored_timestamp_seconds",
	Help:      "Unix timestamp of the most recent activity persisted to Postgres.",
})

func init() {
	prometheus.MustRegister(activityStoredGauge)
}

// RecordActivityStored updates the persistence watermark gauge.
func RecordActivityStored(ts time.Time) {
	if ts.IsZero() {
		return
	}
	activityStoredGauge.Set(float64(ts.Unix()))
}
