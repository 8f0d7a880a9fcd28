// Package progress tracks accumulated exercise minutes against the weekly goal.
package progress

import "math"

// DefaultTargetMinutes is the weekly exercise goal.
const DefaultTargetMinutes = 150.0

// Status describes where the tracker stands relative to its target.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusInProgress Status = "in_progress"
	StatusTargetMet  Status = "target_met"
)

// Tracker accumulates minutes for a single caller-managed period. It never
// resets and is not safe for concurrent use.
type Tracker struct {
	accumulated float64
	target      float64
}

// New returns an empty tracker. A non-positive target uses DefaultTargetMinutes.
func New(targetMinutes float64) *Tracker {
	if targetMinutes <= 0 || math.IsNaN(targetMinutes) {
		targetMinutes = DefaultTargetMinutes
	}
	return &Tracker{target: targetMinutes}
}

// Add increments the accumulated minutes. Negative input is not rejected here.
func (t *Tracker) Add(durationMinutes float64) {
	t.accumulated += durationMinutes
}

// Accumulated returns the uncapped minute total.
func (t *Tracker) Accumulated() float64 {
	return t.accumulated
}

// Target returns the goal in minutes.
func (t *Tracker) Target() float64 {
	return t.target
}

// Percentage returns progress toward the target, capped at 100.
func (t *Tracker) Percentage() float64 {
	return math.Min(100, 100*t.accumulated/t.target)
}

// Status derives the state from the accumulated total.
func (t *Tracker) Status() Status {
	switch {
	case t.accumulated >= t.target:
		return StatusTargetMet
	case t.accumulated > 0:
		return StatusInProgress
	default:
		return StatusNotStarted
	}
}
