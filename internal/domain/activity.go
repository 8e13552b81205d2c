// Package domain defines the core records shared across the ingestion pipeline.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is one recorded exercise session. Derived metric fields are
// pointers: nil means the metric was never evidenced by the source data.
type Activity struct {
	ID                  string
	Source              string
	ActivityType        string
	Name                *string
	StartTime           time.Time
	DurationSeconds     int
	DistanceMeters      *float64
	ElevationGainMeters *float64
	ElevationLossMeters *float64
	AvgHeartRate        *int
	MaxHeartRate        *int
	AvgSpeedMPS         *float64
	MaxSpeedMPS         *float64
	Calories            *int
	TrainingStressScore *float64
	Notes               *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// NewActivity constructs an Activity with a fresh ID and all derived fields absent.
func NewActivity(source, activityType string, startTime time.Time) Activity {
	now := time.Now().UTC()
	return Activity{
		ID:           uuid.NewString(),
		Source:       source,
		ActivityType: activityType,
		StartTime:    startTime.UTC(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// PacePerKmSeconds returns the average pace in seconds per kilometre, or nil
// when no distance is recorded.
func (a Activity) PacePerKmSeconds() *float64 {
	if a.DistanceMeters == nil || *a.DistanceMeters <= 0 {
		return nil
	}
	pace := float64(a.DurationSeconds) / (*a.DistanceMeters / 1000.0)
	return &pace
}

// TrackPoint is one timestamped GPS/sensor sample owned by an activity.
// CumulativeDistanceMeters is populated during sanitization, never by sources.
type TrackPoint struct {
	ID                       string
	ActivityID               string
	Timestamp                time.Time
	Latitude                 float64
	Longitude                float64
	AltitudeMeters           *float64
	HeartRate                *int
	Cadence                  *int
	SpeedMPS                 *float64
	PowerWatts               *int
	TemperatureCelsius       *float64
	CumulativeDistanceMeters *float64
}

// NewTrackPoint constructs a TrackPoint with a fresh ID and no sensor fields.
func NewTrackPoint(activityID string, timestamp time.Time, latitude, longitude float64) TrackPoint {
	return TrackPoint{
		ID:         uuid.NewString(),
		ActivityID: activityID,
		Timestamp:  timestamp.UTC(),
		Latitude:   latitude,
		Longitude:  longitude,
	}
}

// PersonalBest is a derived best-pace record for one canonical race distance.
// It is recomputed from the stored activity set and never persisted here.
type PersonalBest struct {
	ID               string
	ActivityType     string
	DistanceMeters   float64
	DurationSeconds  int
	ActivityID       string
	AchievedAt       time.Time
	PacePerKmSeconds float64
}
