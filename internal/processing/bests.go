package processing

import (
	"math"

	"github.com/google/uuid"

	"github.com/runhub/activity-pipeline/internal/domain"
)

// Canonical race distances for running personal bests, in meters.
var runningDistances = []float64{
	1000,    // 1K
	5000,    // 5K
	10000,   // 10K
	21097.5, // half marathon
	42195,   // marathon
}

// bucketTolerance is the relative deviation allowed when matching a recorded
// distance to a canonical bucket.
const bucketTolerance = 0.05

// FindPersonalBests scans the activity collection and returns the best-pace
// record per canonical distance bucket for running activities. Pace uses the
// activity's actual recorded distance, not the bucket distance. Ties keep the
// first activity encountered. Output order is unspecified.
func FindPersonalBests(activities []domain.Activity) []domain.PersonalBest {
	type best struct {
		pace     float64
		activity domain.Activity
	}
	bests := make(map[float64]best)

	for _, activity := range activities {
		if activity.ActivityType != TypeRunning || activity.DistanceMeters == nil {
			continue
		}
		distance := *activity.DistanceMeters

		for _, target := range runningDistances {
			if math.Abs(distance-target)/target > bucketTolerance {
				continue
			}
			pace := float64(activity.DurationSeconds) / (distance / 1000.0)
			if current, ok := bests[target]; !ok || pace < current.pace {
				bests[target] = best{pace: pace, activity: activity}
			}
		}
	}

	records := make([]domain.PersonalBest, 0, len(bests))
	for target, b := range bests {
		records = append(records, domain.PersonalBest{
			ID:               uuid.NewString(),
			ActivityType:     TypeRunning,
			DistanceMeters:   target,
			DurationSeconds:  b.activity.DurationSeconds,
			ActivityID:       b.activity.ID,
			AchievedAt:       b.activity.StartTime,
			PacePerKmSeconds: b.pace,
		})
	}
	return records
}
