package progress

import (
	"fmt"
	"strings"
)

// Alert is the notification a tracker warrants after an add.
type Alert string

const (
	AlertNone      Alert = ""
	AlertProgress  Alert = "progress"
	AlertTargetMet Alert = "target_met"
)

// Policy controls how often the target-met alert fires.
type Policy string

const (
	// PolicyEvery fires target_met on every evaluation at or past the target.
	PolicyEvery Policy = "every"
	// PolicyOnce fires target_met only the first time it is observed.
	PolicyOnce Policy = "once"
)

// ParsePolicy accepts "every" or "once"; the empty string means PolicyEvery.
func ParsePolicy(raw string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return PolicyEvery, nil
	case PolicyEvery, PolicyOnce:
		return p, nil
	default:
		return "", fmt.Errorf("unknown notify policy %q", raw)
	}
}

// Announcer decides which alert to raise after each add.
type Announcer struct {
	policy    Policy
	announced bool
}

// NewAnnouncer constructs an Announcer. Unknown policies behave like PolicyEvery.
func NewAnnouncer(policy Policy) *Announcer {
	if policy != PolicyOnce {
		policy = PolicyEvery
	}
	return &Announcer{policy: policy}
}

// Policy reports the configured policy.
func (a *Announcer) Policy() Policy {
	return a.policy
}

// Evaluate inspects the tracker and returns the alert to show.
func (a *Announcer) Evaluate(t *Tracker) Alert {
	switch t.Status() {
	case StatusTargetMet:
		if a.policy == PolicyOnce && a.announced {
			return AlertNone
		}
		a.announced = true
		return AlertTargetMet
	case StatusInProgress:
		return AlertProgress
	default:
		return AlertNone
	}
}
