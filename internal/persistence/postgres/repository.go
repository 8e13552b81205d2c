// Package postgres provides pgx-backed persistence for standardized
// activities and their track points.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/runhub/activity-pipeline/internal/domain"
	"github.com/runhub/activity-pipeline/internal/observability"
)

const activityColumns = `id, source, activity_type, name, start_time, duration_seconds,
        distance_meters, elevation_gain_meters, elevation_loss_meters,
        avg_heart_rate, max_heart_rate, avg_speed_mps, max_speed_mps,
        calories, training_stress_score, notes, created_at, updated_at`

// Repository implements domain.ActivityRepository on top of a pgx pool.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a Repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create persists the activity, its fingerprint, and its track points inside
// a single transaction. A fingerprint collision from a concurrent insert
// surfaces as domain.ErrDuplicateActivity.
func (r *Repository) Create(ctx context.Context, activity domain.Activity, points []domain.TrackPoint, fingerprint string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	const insertActivity = `INSERT INTO activities (id, source, activity_type, name, start_time, duration_seconds,
        distance_meters, elevation_gain_meters, elevation_loss_meters,
        avg_heart_rate, max_heart_rate, avg_speed_mps, max_speed_mps,
        calories, training_stress_score, notes, fingerprint, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)`

	_, err = tx.Exec(ctx, insertActivity,
		activity.ID,
		activity.Source,
		activity.ActivityType,
		activity.Name,
		activity.StartTime,
		activity.DurationSeconds,
		activity.DistanceMeters,
		activity.ElevationGainMeters,
		activity.ElevationLossMeters,
		activity.AvgHeartRate,
		activity.MaxHeartRate,
		activity.AvgSpeedMPS,
		activity.MaxSpeedMPS,
		activity.Calories,
		activity.TrainingStressScore,
		activity.Notes,
		fingerprint,
		activity.CreatedAt,
		activity.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			err = domain.ErrDuplicateActivity
		}
		return err
	}

	if len(points) > 0 {
		batch := &pgx.Batch{}
		const insertPoint = `INSERT INTO track_points (id, activity_id, ts, latitude, longitude,
            altitude_meters, heart_rate, cadence, speed_mps, power_watts,
            temperature_celsius, cumulative_distance_meters)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`

		for _, p := range points {
			batch.Queue(insertPoint,
				p.ID,
				p.ActivityID,
				p.Timestamp,
				p.Latitude,
				p.Longitude,
				p.AltitudeMeters,
				p.HeartRate,
				p.Cadence,
				p.SpeedMPS,
				p.PowerWatts,
				p.TemperatureCelsius,
				p.CumulativeDistanceMeters,
			)
		}

		if err = tx.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	observability.RecordActivityStored(activity.UpdatedAt)
	return nil
}

// FindByFingerprint returns the stored activity with the given fingerprint,
// or nil when no such activity exists.
func (r *Repository) FindByFingerprint(ctx context.Context, fingerprint string) (*domain.Activity, error) {
	const query = `SELECT ` + activityColumns + ` FROM activities WHERE fingerprint=$1`

	row := r.pool.QueryRow(ctx, query, fingerprint)
	activity, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return activity, nil
}

// Get retrieves an activity by ID.
func (r *Repository) Get(ctx context.Context, activityID string) (*domain.Activity, error) {
	const query = `SELECT ` + activityColumns + ` FROM activities WHERE id=$1`

	row := r.pool.QueryRow(ctx, query, activityID)
	activity, err := scanActivity(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrActivityNotFound
		}
		return nil, err
	}
	return activity, nil
}

// ListByType returns all activities for one canonical type ordered by start time.
func (r *Repository) ListByType(ctx context.Context, activityType string) ([]domain.Activity, error) {
	const query = `SELECT ` + activityColumns + ` FROM activities WHERE activity_type=$1 ORDER BY start_time`

	rows, err := r.pool.Query(ctx, query, activityType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectActivities(rows)
}

// ListRecent returns up to limit activities ordered by start time descending.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	const query = `SELECT ` + activityColumns + ` FROM activities ORDER BY start_time DESC, id DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectActivities(rows)
}

// ListTrackPoints returns an activity's track points ordered by timestamp.
func (r *Repository) ListTrackPoints(ctx context.Context, activityID string) ([]domain.TrackPoint, error) {
	const query = `SELECT id, activity_id, ts, latitude, longitude, altitude_meters,
        heart_rate, cadence, speed_mps, power_watts, temperature_celsius,
        cumulative_distance_meters
        FROM track_points WHERE activity_id=$1 ORDER BY ts`

	rows, err := r.pool.Query(ctx, query, activityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []domain.TrackPoint
	for rows.Next() {
		var p domain.TrackPoint
		if err := rows.Scan(
			&p.ID,
			&p.ActivityID,
			&p.Timestamp,
			&p.Latitude,
			&p.Longitude,
			&p.AltitudeMeters,
			&p.HeartRate,
			&p.Cadence,
			&p.SpeedMPS,
			&p.PowerWatts,
			&p.TemperatureCelsius,
			&p.CumulativeDistanceMeters,
		); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func collectActivities(rows pgx.Rows) ([]domain.Activity, error) {
	var activities []domain.Activity
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *activity)
	}
	return activities, rows.Err()
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var a domain.Activity
	if err := row.Scan(
		&a.ID,
		&a.Source,
		&a.ActivityType,
		&a.Name,
		&a.StartTime,
		&a.DurationSeconds,
		&a.DistanceMeters,
		&a.ElevationGainMeters,
		&a.ElevationLossMeters,
		&a.AvgHeartRate,
		&a.MaxHeartRate,
		&a.AvgSpeedMPS,
		&a.MaxSpeedMPS,
		&a.Calories,
		&a.TrainingStressScore,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
