package processing

import "strings"

// Platform identifies the source platform an activity was fetched from.
type Platform string

const (
	PlatformGarmin Platform = "garmin"
	PlatformCoros  Platform = "coros"
	PlatformKeep   Platform = "keep"
)

// Canonical activity types every platform vocabulary maps onto.
const (
	TypeRunning  = "running"
	TypeCycling  = "cycling"
	TypeSwimming = "swimming"
	TypeWalking  = "walking"
	TypeHiking   = "hiking"
	TypeStrength = "strength"
)

var garminTypes = map[string]string{
	"running":             TypeRunning,
	"run":                 TypeRunning,
	"cycling":             TypeCycling,
	"bike":                TypeCycling,
	"road_biking":         TypeCycling,
	"mountain_biking":     TypeCycling,
	"swimming":            TypeSwimming,
	"pool_swim":           TypeSwimming,
	"open_water_swimming": TypeSwimming,
	"walking":             TypeWalking,
	"casual_walking":      TypeWalking,
	"speed_walking":       TypeWalking,
	"hiking":              TypeHiking,
	"mountaineering":      TypeHiking,
	"strength_training":   TypeStrength,
	"cardio":              TypeStrength,
	"fitness_equipment":   TypeStrength,
}

var corosTypes = map[string]string{
	"跑步":       TypeRunning,
	"running":  TypeRunning,
	"骑行":       TypeCycling,
	"cycling":  TypeCycling,
	"游泳":       TypeSwimming,
	"swimming": TypeSwimming,
	"健走":       TypeWalking,
	"walking":  TypeWalking,
	"登山":       TypeHiking,
	"hiking":   TypeHiking,
}

var keepTypes = map[string]string{
	"跑步":       TypeRunning,
	"running":  TypeRunning,
	"骑行":       TypeCycling,
	"cycling":  TypeCycling,
	"游泳":       TypeSwimming,
	"swimming": TypeSwimming,
	"健走":       TypeWalking,
	"walking":  TypeWalking,
	"登山":       TypeHiking,
	"hiking":   TypeHiking,
	"力量训练":     TypeStrength,
	"strength": TypeStrength,
}

var genericTypes = map[string]string{
	"run":     TypeRunning,
	"jog":     TypeRunning,
	"jogging": TypeRunning,
	"bike":    TypeCycling,
	"biking":  TypeCycling,
	"bicycle": TypeCycling,
	"swim":    TypeSwimming,
	"walk":    TypeWalking,
	"hike":    TypeHiking,
	"gym":     TypeStrength,
	"workout": TypeStrength,
	"fitness": TypeStrength,
}

// NormalizeActivityType maps a platform-specific activity label onto the
// canonical vocabulary. Tokens unknown to the applicable table pass through
// unchanged; this is a best-effort normalization, not a validator.
func NormalizeActivityType(rawType string, platform Platform) string {
	token := strings.TrimSpace(strings.ToLower(rawType))

	var table map[string]string
	switch platform {
	case PlatformGarmin:
		table = garminTypes
	case PlatformCoros:
		table = corosTypes
	case PlatformKeep:
		table = keepTypes
	default:
		table = genericTypes
	}

	if canonical, ok := table[token]; ok {
		return canonical
	}
	return token
}
