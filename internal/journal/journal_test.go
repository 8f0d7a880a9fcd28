package journal

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"example.com/exerciselog/internal/events"
)

func TestRecordWritesStructuredEntry(t *testing.T) {
	logger, hook := test.NewNullLogger()
	j := New(WithLogger(logger))

	loggedAt := time.Date(2025, time.October, 27, 8, 30, 0, 0, time.UTC)
	err := j.Record(context.Background(), events.ActivityLogged{
		ActivityID:   "act-1",
		ActivityType: "run",
		DurationMin:  60,
		WeightKg:     70,
		Calories:     560,
		Date:         "2025-10-27",
		LoggedAt:     loggedAt,
	})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, logrus.InfoLevel, entry.Level)
	require.Equal(t, "activity logged", entry.Message)
	require.Equal(t, "act-1", entry.Data["activity_id"])
	require.Equal(t, 560, entry.Data["calories"])
	require.Equal(t, "2025-10-27", entry.Data["date"])
}

func TestRecordHonoursCancelledContext(t *testing.T) {
	logger, hook := test.NewNullLogger()
	j := New(WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := j.Record(ctx, events.ActivityLogged{ActivityID: "act-2"})
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, hook.AllEntries())
}
