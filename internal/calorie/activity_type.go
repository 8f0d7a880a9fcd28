package calorie

import "strings"

// ActivityType identifies the kind of exercise being logged.
type ActivityType string

const (
	Run    ActivityType = "run"
	Cycle  ActivityType = "cycle"
	Pushup ActivityType = "pushup"
	Yoga   ActivityType = "yoga"
	// Other covers every tag outside the known set and is estimated with the fallback coefficient.
	Other ActivityType = "other"
)

// KnownTypes lists the selectable activity types in display order.
var KnownTypes = []ActivityType{Run, Cycle, Pushup, Yoga, Other}

// ParseActivityType normalises a free-text tag. Unknown tags map to Other.
func ParseActivityType(raw string) ActivityType {
	switch t := ActivityType(strings.ToLower(strings.TrimSpace(raw))); t {
	case Run, Cycle, Pushup, Yoga:
		return t
	default:
		return Other
	}
}

func (t ActivityType) String() string {
	return string(t)
}
