package processing

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math"

	"github.com/runhub/activity-pipeline/internal/domain"
)

// Fingerprint produces a deterministic signature over the fields that define
// an activity across re-imports: start time at second resolution, duration,
// distance rounded to the nearest meter, and the canonical type. Identifiers,
// names, and track points are deliberately excluded since they legitimately
// differ between imports of the same session. FNV-1a is unseeded, so the
// signature is stable across runs and platforms.
func Fingerprint(activity domain.Activity) string {
	h := fnv.New64a()

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(activity.StartTime.Unix()))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(activity.DurationSeconds))
	h.Write(buf[:])
	if activity.DistanceMeters != nil {
		// Rounding absorbs floating-point noise between re-imports.
		binary.BigEndian.PutUint64(buf[:], uint64(int64(math.Round(*activity.DistanceMeters))))
		h.Write(buf[:])
	}
	h.Write([]byte(activity.ActivityType))

	return fmt.Sprintf("%016x", h.Sum64())
}
