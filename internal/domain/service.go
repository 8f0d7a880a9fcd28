// Package domain defines the business logic for the exercise log.
package domain

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"example.com/exerciselog/internal/calorie"
	"example.com/exerciselog/internal/events"
	"example.com/exerciselog/internal/notify"
	"example.com/exerciselog/internal/observability"
	"example.com/exerciselog/internal/progress"
)

const (
	// MaxDurationMinutes is the longest single activity accepted: one week.
	MaxDurationMinutes = 7 * 24 * 60
	// MaxWeightKg bounds the submitted body weight.
	MaxWeightKg = 500
)

var (
	// ErrInvalidDuration is returned when a submitted duration is outside (0, MaxDurationMinutes].
	ErrInvalidDuration = errors.New("duration_min must be > 0 and <= 10080")
	// ErrInvalidWeight is returned when a submitted weight is outside [0, MaxWeightKg].
	ErrInvalidWeight = errors.New("weight_kg must be >= 0 and <= 500")
)

// Journal receives every logged activity.
type Journal interface {
	Record(ctx context.Context, event events.ActivityLogged) error
}

// Service orchestrates estimation, journaling and progress tracking. The
// tracker it owns is only touched under mu.
type Service struct {
	estimator calorie.Estimator
	journal   Journal
	now       func() time.Time

	mu        sync.Mutex
	tracker   *progress.Tracker
	announcer *progress.Announcer
	today     DailyTotals
}

// Option configures optional behaviour for the Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp records.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService constructs a Service.
func NewService(estimator calorie.Estimator, tracker *progress.Tracker, announcer *progress.Announcer, journal Journal, opts ...Option) *Service {
	s := &Service{
		estimator: estimator,
		journal:   journal,
		now:       time.Now,
		tracker:   tracker,
		announcer: announcer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EstimateInput carries the raw form values for a live preview.
type EstimateInput struct {
	DurationMinutes float64
	ActivityType    calorie.ActivityType
	WeightKg        float64
}

// Estimate is the live preview result.
type Estimate struct {
	ActivityType calorie.ActivityType
	Coefficient  float64
	Calories     int
}

// Estimate previews calories without recording anything.
func (s *Service) Estimate(input EstimateInput) Estimate {
	observability.RecordPreview()
	return Estimate{
		ActivityType: input.ActivityType,
		Coefficient:  s.estimator.Table.Coefficient(input.ActivityType),
		Calories:     s.estimator.Preview(input.DurationMinutes, input.ActivityType, input.WeightKg),
	}
}

// LogActivityInput captures a form submission. A zero WeightKg means the
// weight was not provided.
type LogActivityInput struct {
	ActivityType    calorie.ActivityType
	DurationMinutes float64
	WeightKg        float64
}

// Validate rejects submissions the core must not see.
func (in LogActivityInput) Validate() error {
	if math.IsNaN(in.DurationMinutes) || in.DurationMinutes <= 0 || in.DurationMinutes > MaxDurationMinutes {
		return ErrInvalidDuration
	}
	if math.IsNaN(in.WeightKg) || in.WeightKg < 0 || in.WeightKg > MaxWeightKg {
		return ErrInvalidWeight
	}
	return nil
}

// LogResult bundles what the page renders after a submission.
type LogResult struct {
	Record        ActivityRecord
	Progress      ProgressSnapshot
	Today         DailyTotals
	Alert         progress.Alert
	Notifications []notify.Notification
}

// LogActivity estimates, journals and accumulates a submitted activity.
func (s *Service) LogActivity(ctx context.Context, input LogActivityInput) (*LogResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	weight := s.estimator.Weight(input.WeightKg)

	now := s.now().UTC()
	record := ActivityRecord{
		ID:              uuid.NewString(),
		Type:            input.ActivityType,
		DurationMinutes: input.DurationMinutes,
		WeightKg:        weight,
		Calories:        s.estimator.Calories(input.DurationMinutes, input.ActivityType, weight),
		Date:            now.Format(DateLayout),
		LoggedAt:        now,
	}

	if err := s.journal.Record(ctx, record.Event()); err != nil {
		return nil, fmt.Errorf("journal activity: %w", err)
	}

	s.mu.Lock()
	s.today.Minutes += record.DurationMinutes
	s.today.Calories += record.Calories
	s.tracker.Add(record.DurationMinutes)
	alert := s.announcer.Evaluate(s.tracker)
	snapshot := s.snapshotLocked()
	today := s.today
	s.mu.Unlock()

	observability.RecordActivityLogged(record.Type.String(), record.Calories)
	observability.RecordProgress(snapshot.AccumulatedMinutes, snapshot.Percentage)
	observability.RecordAlert(string(alert))

	notifications := []notify.Notification{
		notify.ActivityLogged(record.Type.String(), record.DurationMinutes, record.Calories),
	}
	switch alert {
	case progress.AlertTargetMet:
		notifications = append(notifications, notify.TargetMet())
	case progress.AlertProgress:
		notifications = append(notifications, notify.InProgress(snapshot.AccumulatedMinutes))
	}

	return &LogResult{
		Record:        record,
		Progress:      snapshot,
		Today:         today,
		Alert:         alert,
		Notifications: notifications,
	}, nil
}

// ProgressSnapshot is a point-in-time view of the weekly tracker.
type ProgressSnapshot struct {
	AccumulatedMinutes float64
	TargetMinutes      float64
	Percentage         float64
	Label              string
	Status             progress.Status
}

// Progress returns the current weekly progress.
func (s *Service) Progress() ProgressSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Dashboard pairs the current period totals with weekly progress.
type Dashboard struct {
	Today    DailyTotals
	Progress ProgressSnapshot
}

// Dashboard returns totals for the current period.
func (s *Service) Dashboard() Dashboard {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Dashboard{Today: s.today, Progress: s.snapshotLocked()}
}

// TypeCoefficient pairs an activity type with its configured coefficient.
type TypeCoefficient struct {
	ActivityType calorie.ActivityType
	Coefficient  float64
}

// ActivityTypes lists the selectable activity types.
func (s *Service) ActivityTypes() []TypeCoefficient {
	out := make([]TypeCoefficient, 0, len(calorie.KnownTypes))
	for _, t := range calorie.KnownTypes {
		out = append(out, TypeCoefficient{ActivityType: t, Coefficient: s.estimator.Table.Coefficient(t)})
	}
	return out
}

func (s *Service) snapshotLocked() ProgressSnapshot {
	pct := s.tracker.Percentage()
	return ProgressSnapshot{
		AccumulatedMinutes: s.tracker.Accumulated(),
		TargetMinutes:      s.tracker.Target(),
		Percentage:         pct,
		Label:              fmt.Sprintf("%d%%", int(math.Floor(pct+0.5))),
		Status:             s.tracker.Status(),
	}
}
