// Package events defines the payloads emitted when activities are logged.
package events

import "time"

// ActivityLogged represents the record written when an activity is accepted.
type ActivityLogged struct {
	ActivityID   string    `json:"activity_id"`
	ActivityType string    `json:"activity_type"`
	DurationMin  float64   `json:"duration_min"`
	WeightKg     float64   `json:"weight_kg"`
	Calories     int       `json:"calories"`
	Date         string    `json:"date"`
	LoggedAt     time.Time `json:"logged_at"`
}
