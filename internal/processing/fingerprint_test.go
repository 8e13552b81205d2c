package processing

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runhub/activity-pipeline/internal/domain"
)

func baseActivity() domain.Activity {
	start := time.Date(2025, time.March, 9, 7, 0, 0, 0, time.UTC)
	activity := domain.NewActivity("garmin", TypeRunning, start)
	activity.DurationSeconds = 2745
	activity.DistanceMeters = floatPtr(10012.4)
	return activity
}

func TestFingerprintIgnoresIdentityFields(t *testing.T) {
	a := baseActivity()
	b := baseActivity()

	name := "Morning Run (copy)"
	notes := "re-imported from a GPX export"
	b.Name = &name
	b.Notes = &notes

	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintAbsorbsSubMeterDistanceNoise(t *testing.T) {
	a := baseActivity()
	b := baseActivity()
	b.DistanceMeters = floatPtr(10012.6) // rounds to 10013, a different meter

	c := baseActivity()
	c.DistanceMeters = floatPtr(10012.41) // rounds to 10012, same as the base

	require.Equal(t, Fingerprint(a), Fingerprint(c))
	require.NotEqual(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintChangesWithDefiningFields(t *testing.T) {
	a := baseActivity()

	longer := baseActivity()
	longer.DurationSeconds++
	require.NotEqual(t, Fingerprint(a), Fingerprint(longer))

	later := baseActivity()
	later.StartTime = later.StartTime.Add(time.Second)
	require.NotEqual(t, Fingerprint(a), Fingerprint(later))

	cycling := baseActivity()
	cycling.ActivityType = TypeCycling
	require.NotEqual(t, Fingerprint(a), Fingerprint(cycling))
}

func TestFingerprintHandlesMissingDistance(t *testing.T) {
	a := baseActivity()
	a.DistanceMeters = nil
	b := baseActivity()
	b.DistanceMeters = nil

	require.Equal(t, Fingerprint(a), Fingerprint(b))
}

func TestFingerprintForm(t *testing.T) {
	sig := Fingerprint(baseActivity())
	require.Regexp(t, regexp.MustCompile(`^[0-9a-f]{16}$`), sig)
}
