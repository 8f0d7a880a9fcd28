// Package journal writes logged activities to the structured log.
package journal

import (
	"context"

	"github.com/sirupsen/logrus"

	"example.com/exerciselog/internal/events"
)

// Logger records events as logrus entries. Nothing is retained afterwards.
type Logger struct {
	logger logrus.FieldLogger
}

// Option configures optional behaviour for the Logger.
type Option func(*Logger)

// WithLogger overrides the destination logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(l *Logger) {
		l.logger = logger
	}
}

// New constructs a Logger writing to the standard logrus logger.
func New(opts ...Option) *Logger {
	l := &Logger{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Record writes the event.
func (l *Logger) Record(ctx context.Context, event events.ActivityLogged) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.logger.WithFields(logrus.Fields{
		"activity_id":   event.ActivityID,
		"activity_type": event.ActivityType,
		"duration_min":  event.DurationMin,
		"weight_kg":     event.WeightKg,
		"calories":      event.Calories,
		"date":          event.Date,
		"logged_at":     event.LoggedAt,
	}).Info("activity logged")
	return nil
}
