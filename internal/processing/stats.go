package processing

import "github.com/runhub/activity-pipeline/internal/domain"

// AggregateStats derives the activity's summary metrics from its sanitized
// track points. Each rule applies independently when its inputs exist; a rule
// without evidence leaves the corresponding field untouched rather than
// zeroing it. Empty input is a no-op.
func AggregateStats(activity *domain.Activity, points []domain.TrackPoint) {
	if len(points) == 0 {
		return
	}

	last := points[len(points)-1]
	if last.CumulativeDistanceMeters != nil {
		d := *last.CumulativeDistanceMeters
		activity.DistanceMeters = &d
	}

	// A non-positive computed duration must not regress a known-good value.
	duration := int(last.Timestamp.Sub(points[0].Timestamp).Seconds())
	if duration > 0 {
		activity.DurationSeconds = duration
	}

	sumHR, countHR, maxHR := 0, 0, 0
	for _, p := range points {
		if p.HeartRate == nil {
			continue
		}
		sumHR += *p.HeartRate
		if countHR == 0 || *p.HeartRate > maxHR {
			maxHR = *p.HeartRate
		}
		countHR++
	}
	if countHR > 0 {
		avg := sumHR / countHR
		activity.AvgHeartRate = &avg
		m := maxHR
		activity.MaxHeartRate = &m
	}

	sumSpeed, countSpeed, maxSpeed := 0.0, 0, 0.0
	for _, p := range points {
		if p.SpeedMPS == nil {
			continue
		}
		sumSpeed += *p.SpeedMPS
		if countSpeed == 0 || *p.SpeedMPS > maxSpeed {
			maxSpeed = *p.SpeedMPS
		}
		countSpeed++
	}
	if countSpeed > 0 {
		avg := sumSpeed / float64(countSpeed)
		activity.AvgSpeedMPS = &avg
		m := maxSpeed
		activity.MaxSpeedMPS = &m
	} else if activity.DistanceMeters != nil && activity.DurationSeconds > 0 {
		// No per-point speed: back-compute the average, leave max unset.
		avg := *activity.DistanceMeters / float64(activity.DurationSeconds)
		activity.AvgSpeedMPS = &avg
	}

	gain, loss := 0.0, 0.0
	for i := 1; i < len(points); i++ {
		prevAlt := points[i-1].AltitudeMeters
		currAlt := points[i].AltitudeMeters
		if prevAlt == nil || currAlt == nil {
			continue
		}
		diff := *currAlt - *prevAlt
		if diff > 0 {
			gain += diff
		} else {
			loss += -diff
		}
	}
	if gain > 0 {
		g := gain
		activity.ElevationGainMeters = &g
	}
	if loss > 0 {
		l := loss
		activity.ElevationLossMeters = &l
	}
}
