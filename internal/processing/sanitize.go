package processing

import (
	"sort"

	"github.com/runhub/activity-pipeline/internal/domain"
)

// Heart rates outside this band are treated as sensor noise and cleared.
const (
	minPlausibleHeartRate = 30
	maxPlausibleHeartRate = 250
)

// SanitizeReport counts the corrections applied to a track-point sequence so
// the ingestion caller can surface them.
type SanitizeReport struct {
	InvalidCoordinates  int
	DuplicateTimestamps int
	ClearedHeartRates   int
}

// SanitizeTrackPoints validates and orders a raw track-point sequence for a
// single activity. It drops points with out-of-range coordinates, sorts the
// remainder by timestamp, collapses duplicate timestamps keeping the first
// occurrence, clears implausible heart rates without dropping the sample, and
// derives cumulative haversine distance. The step order is a fixed policy:
// changing it changes results. Empty and single-point inputs pass through
// with no derived distance.
func SanitizeTrackPoints(points []domain.TrackPoint) ([]domain.TrackPoint, SanitizeReport) {
	var report SanitizeReport

	kept := points[:0]
	for _, p := range points {
		if p.Latitude < -90 || p.Latitude > 90 || p.Longitude < -180 || p.Longitude > 180 {
			report.InvalidCoordinates++
			continue
		}
		kept = append(kept, p)
	}
	points = kept

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Timestamp.Before(points[j].Timestamp)
	})

	deduped := points[:0]
	for i, p := range points {
		if i > 0 && p.Timestamp.Equal(points[i-1].Timestamp) {
			report.DuplicateTimestamps++
			continue
		}
		deduped = append(deduped, p)
	}
	points = deduped

	for i := range points {
		if hr := points[i].HeartRate; hr != nil {
			if *hr < minPlausibleHeartRate || *hr > maxPlausibleHeartRate {
				points[i].HeartRate = nil
				report.ClearedHeartRates++
			}
		}
	}

	cumulative := 0.0
	for i := 1; i < len(points); i++ {
		prev := points[i-1]
		curr := points[i]
		cumulative += Haversine(prev.Latitude, prev.Longitude, curr.Latitude, curr.Longitude)
		d := cumulative
		points[i].CumulativeDistanceMeters = &d
	}

	return points, report
}
