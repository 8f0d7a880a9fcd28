// Package notify builds the toast messages shown after an activity is logged.
package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Level selects the styling of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
)

// DismissAfter is how long the page keeps a notification visible.
const DismissAfter = 4500 * time.Millisecond

// Notification is a single message for the page to display.
type Notification struct {
	Level        Level
	Message      string
	DismissAfter time.Duration
}

// ActivityLogged confirms a submitted activity.
func ActivityLogged(activityType string, minutes float64, calories int) Notification {
	return success(fmt.Sprintf("✅ %s minutes of %s logged! (%d kcal)", FormatMinutes(minutes), strings.ToUpper(activityType), calories))
}

// TargetMet congratulates the user on reaching the weekly goal.
func TargetMet() Notification {
	return success("🏆 Congratulations! Your weekly target has been reached!")
}

// InProgress reports the running weekly total.
func InProgress(accumulatedMinutes float64) Notification {
	return success(fmt.Sprintf("🎯 Progress: %s minutes done. Keep it up!", FormatMinutes(accumulatedMinutes)))
}

// FormatMinutes prints minutes without a trailing fraction when whole.
func FormatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}

func success(message string) Notification {
	return Notification{Level: LevelSuccess, Message: message, DismissAfter: DismissAfter}
}
