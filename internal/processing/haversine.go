// Package processing standardizes raw activity telemetry: it cleans track
// points, normalizes platform vocabulary, derives summary statistics,
// fingerprints activities for duplicate detection, and extracts personal
// bests from the stored history.
package processing

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// Haversine returns the great-circle distance in meters between two
// coordinates given in degrees. Inputs are assumed to be within valid
// latitude/longitude ranges; out-of-range or NaN inputs propagate into the
// result rather than failing.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}
