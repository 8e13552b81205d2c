package domain

import (
	"context"
	"errors"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrDuplicateActivity indicates an activity with the same fingerprint is already stored.
	ErrDuplicateActivity = errors.New("activity already exists for fingerprint")
)

// ActivityRepository captures the storage collaborator the pipeline writes to
// and the personal-best extractor reads from.
type ActivityRepository interface {
	// Create persists the activity, its track points, and its fingerprint in
	// one transaction. Returns ErrDuplicateActivity if the fingerprint is taken.
	Create(ctx context.Context, activity Activity, points []TrackPoint, fingerprint string) error
	// FindByFingerprint returns the stored activity matching the fingerprint,
	// or nil when none exists.
	FindByFingerprint(ctx context.Context, fingerprint string) (*Activity, error)
	Get(ctx context.Context, activityID string) (*Activity, error)
	// ListByType returns the full stored set for one canonical activity type.
	ListByType(ctx context.Context, activityType string) ([]Activity, error)
	// ListRecent returns up to limit activities ordered by start time descending.
	ListRecent(ctx context.Context, limit int) ([]Activity, error)
}
