// Package ingest orchestrates the standardization pipeline for raw activity
// records: sanitize track points, normalize the activity type, derive summary
// statistics, and store the result unless its fingerprint is already known.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/runhub/activity-pipeline/internal/domain"
	"github.com/runhub/activity-pipeline/internal/processing"
)

// RawTrackPoint is one unvalidated GPS sample as delivered by a platform
// connector or file decoder.
type RawTrackPoint struct {
	Timestamp          time.Time `json:"timestamp"`
	Latitude           float64   `json:"latitude"`
	Longitude          float64   `json:"longitude"`
	AltitudeMeters     *float64  `json:"altitude_meters,omitempty"`
	HeartRate          *int      `json:"heart_rate,omitempty"`
	Cadence            *int      `json:"cadence,omitempty"`
	SpeedMPS           *float64  `json:"speed_mps,omitempty"`
	PowerWatts         *int      `json:"power_watts,omitempty"`
	TemperatureCelsius *float64  `json:"temperature_celsius,omitempty"`
}

// RawActivity is one already-fetched, already-parsed session with unvalidated
// fields, exactly as a connector produced it.
type RawActivity struct {
	Platform        processing.Platform `json:"platform"`
	ActivityType    string              `json:"activity_type"`
	Name            *string             `json:"name,omitempty"`
	StartTime       time.Time           `json:"start_time"`
	DurationSeconds int                 `json:"duration_seconds"`
	Calories        *int                `json:"calories,omitempty"`
	Notes           *string             `json:"notes,omitempty"`
	Points          []RawTrackPoint     `json:"points"`
}

// Outcome reports what the pipeline did with one raw activity.
type Outcome struct {
	Activity    domain.Activity
	Fingerprint string
	Duplicate   bool
	Report      processing.SanitizeReport
	PointsKept  int
}

// Option configures optional behaviour for the Pipeline.
type Option func(*Pipeline)

// WithLogger overrides the logger used to report skipped duplicates.
func WithLogger(logger *log.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// Pipeline wires the processing stages to the storage collaborator.
type Pipeline struct {
	store  domain.ActivityRepository
	logger *log.Logger
}

// NewPipeline constructs a Pipeline backed by the provided repository.
func NewPipeline(store domain.ActivityRepository, opts ...Option) *Pipeline {
	p := &Pipeline{
		store:  store,
		logger: log.New(log.Writer(), "[ingest] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Ingest standardizes one raw activity and stores it. A raw record whose
// fingerprint matches an already-stored activity is skipped, not an error.
func (p *Pipeline) Ingest(ctx context.Context, raw RawActivity) (Outcome, error) {
	canonical := processing.NormalizeActivityType(raw.ActivityType, raw.Platform)

	activity := domain.NewActivity(string(raw.Platform), canonical, raw.StartTime)
	activity.Name = raw.Name
	activity.DurationSeconds = raw.DurationSeconds
	activity.Calories = raw.Calories
	activity.Notes = raw.Notes

	points := make([]domain.TrackPoint, 0, len(raw.Points))
	for _, rp := range raw.Points {
		tp := domain.NewTrackPoint(activity.ID, rp.Timestamp, rp.Latitude, rp.Longitude)
		tp.AltitudeMeters = rp.AltitudeMeters
		tp.HeartRate = rp.HeartRate
		tp.Cadence = rp.Cadence
		tp.SpeedMPS = rp.SpeedMPS
		tp.PowerWatts = rp.PowerWatts
		tp.TemperatureCelsius = rp.TemperatureCelsius
		points = append(points, tp)
	}

	points, report := processing.SanitizeTrackPoints(points)
	processing.AggregateStats(&activity, points)

	fingerprint := processing.Fingerprint(activity)

	outcome := Outcome{
		Activity:    activity,
		Fingerprint: fingerprint,
		Report:      report,
		PointsKept:  len(points),
	}

	existing, err := p.store.FindByFingerprint(ctx, fingerprint)
	if err != nil {
		return Outcome{}, fmt.Errorf("fingerprint lookup: %w", err)
	}
	if existing != nil {
		p.logger.Printf("skipping duplicate activity (platform=%s, type=%s, fingerprint=%s)", raw.Platform, canonical, fingerprint)
		outcome.Duplicate = true
		recordDuplicateSkipped(string(raw.Platform), canonical)
		return outcome, nil
	}

	if err := p.store.Create(ctx, activity, points, fingerprint); err != nil {
		// A concurrent insert of the same session can win the race after the
		// lookup; treat it the same as an up-front fingerprint hit.
		if errors.Is(err, domain.ErrDuplicateActivity) {
			outcome.Duplicate = true
			recordDuplicateSkipped(string(raw.Platform), canonical)
			return outcome, nil
		}
		return Outcome{}, fmt.Errorf("store activity: %w", err)
	}

	recordIngested(string(raw.Platform), canonical, report, len(points))
	return outcome, nil
}

// PersonalBests recomputes running personal-best records from the stored
// activity set. The result is a snapshot: it is only as fresh as the
// repository read that produced it.
func (p *Pipeline) PersonalBests(ctx context.Context) ([]domain.PersonalBest, error) {
	activities, err := p.store.ListByType(ctx, processing.TypeRunning)
	if err != nil {
		return nil, fmt.Errorf("list running activities: %w", err)
	}
	return processing.FindPersonalBests(activities), nil
}
