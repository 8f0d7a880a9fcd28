package domain

import (
	"time"

	"example.com/exerciselog/internal/calorie"
	"example.com/exerciselog/internal/events"
)

// DateLayout is the calendar-date stamp attached to each record.
const DateLayout = "2006-01-02"

// ActivityRecord is the entry created when an activity is submitted. It is
// journaled and returned to the caller, never stored.
type ActivityRecord struct {
	ID              string
	Type            calorie.ActivityType
	DurationMinutes float64
	WeightKg        float64
	Calories        int
	Date            string
	LoggedAt        time.Time
}

// Event converts the record to its journal payload.
func (r ActivityRecord) Event() events.ActivityLogged {
	return events.ActivityLogged{
		ActivityID:   r.ID,
		ActivityType: r.Type.String(),
		DurationMin:  r.DurationMinutes,
		WeightKg:     r.WeightKg,
		Calories:     r.Calories,
		Date:         r.Date,
		LoggedAt:     r.LoggedAt,
	}
}

// DailyTotals aggregates the current period's minutes and calories for the dashboard.
type DailyTotals struct {
	Minutes  float64
	Calories int
}
