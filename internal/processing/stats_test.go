package processing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runhub/activity-pipeline/internal/domain"
)

func TestAggregateStatsEmptyInputIsNoOp(t *testing.T) {
	activity := domain.NewActivity("garmin", TypeRunning, time.Now().UTC())
	activity.DurationSeconds = 1800

	AggregateStats(&activity, nil)

	require.Equal(t, 1800, activity.DurationSeconds)
	require.Nil(t, activity.DistanceMeters)
	require.Nil(t, activity.AvgHeartRate)
}

func TestAggregateStatsDistanceAndDuration(t *testing.T) {
	base := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeRunning, base)

	points := []domain.TrackPoint{
		point(base, 10, 20),
		point(base.Add(10*time.Minute), 10.01, 20.01),
	}
	points[1].CumulativeDistanceMeters = floatPtr(1543.2)

	AggregateStats(&activity, points)

	require.NotNil(t, activity.DistanceMeters)
	require.Equal(t, 1543.2, *activity.DistanceMeters)
	require.Equal(t, 600, activity.DurationSeconds)
}

func TestAggregateStatsNonPositiveDurationLeavesExistingValue(t *testing.T) {
	base := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeRunning, base)
	activity.DurationSeconds = 2400

	// Identical timestamps produce a zero computed duration.
	points := []domain.TrackPoint{
		point(base, 10, 20),
		point(base, 10.01, 20.01),
	}

	AggregateStats(&activity, points)

	require.Equal(t, 2400, activity.DurationSeconds)
}

func TestAggregateStatsHeartRateTruncatingMean(t *testing.T) {
	base := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeRunning, base)

	points := []domain.TrackPoint{
		point(base, 10, 20),
		point(base.Add(time.Second), 10.001, 20),
		point(base.Add(2*time.Second), 10.002, 20),
	}
	points[0].HeartRate = intPtr(150)
	points[1].HeartRate = intPtr(161)
	points[2].HeartRate = intPtr(170)

	AggregateStats(&activity, points)

	// (150+161+170)/3 = 160 with the fractional remainder truncated.
	require.Equal(t, 160, *activity.AvgHeartRate)
	require.Equal(t, 170, *activity.MaxHeartRate)
}

func TestAggregateStatsHeartRateUnsetWithoutSamples(t *testing.T) {
	base := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeRunning, base)

	points := []domain.TrackPoint{
		point(base, 10, 20),
		point(base.Add(time.Second), 10.001, 20),
	}

	AggregateStats(&activity, points)

	require.Nil(t, activity.AvgHeartRate)
	require.Nil(t, activity.MaxHeartRate)
}

func TestAggregateStatsSpeedFromSamples(t *testing.T) {
	base := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeRunning, base)

	points := []domain.TrackPoint{
		point(base, 10, 20),
		point(base.Add(time.Second), 10.001, 20),
		point(base.Add(2*time.Second), 10.002, 20),
	}
	points[0].SpeedMPS = floatPtr(3.0)
	points[1].SpeedMPS = floatPtr(4.0)
	points[2].SpeedMPS = floatPtr(3.5)

	AggregateStats(&activity, points)

	require.InDelta(t, 3.5, *activity.AvgSpeedMPS, 1e-9)
	require.Equal(t, 4.0, *activity.MaxSpeedMPS)
}

func TestAggregateStatsSpeedFallbackFromDistance(t *testing.T) {
	base := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeRunning, base)

	points := []domain.TrackPoint{
		point(base, 10, 20),
		point(base.Add(500*time.Second), 10.01, 20.01),
	}
	points[1].CumulativeDistanceMeters = floatPtr(1500.0)

	AggregateStats(&activity, points)

	require.InDelta(t, 3.0, *activity.AvgSpeedMPS, 1e-9)
	require.Nil(t, activity.MaxSpeedMPS, "max speed stays unset on the fallback path")
}

func TestAggregateStatsElevation(t *testing.T) {
	base := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeHiking, base)

	points := []domain.TrackPoint{
		point(base, 10, 20),
		point(base.Add(time.Minute), 10.001, 20),
		point(base.Add(2*time.Minute), 10.002, 20),
		point(base.Add(3*time.Minute), 10.003, 20),
	}
	points[0].AltitudeMeters = floatPtr(100)
	points[1].AltitudeMeters = floatPtr(130)
	points[2].AltitudeMeters = floatPtr(115)
	points[3].AltitudeMeters = floatPtr(140)

	AggregateStats(&activity, points)

	require.Equal(t, 55.0, *activity.ElevationGainMeters)
	require.Equal(t, 15.0, *activity.ElevationLossMeters)
}

func TestAggregateStatsFlatTrackLeavesElevationUnset(t *testing.T) {
	base := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeRunning, base)

	points := []domain.TrackPoint{
		point(base, 10, 20),
		point(base.Add(time.Minute), 10.001, 20),
	}
	points[0].AltitudeMeters = floatPtr(50)
	points[1].AltitudeMeters = floatPtr(50)

	AggregateStats(&activity, points)

	require.Nil(t, activity.ElevationGainMeters)
	require.Nil(t, activity.ElevationLossMeters)
}
