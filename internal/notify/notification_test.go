package notify

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActivityLoggedMessage(t *testing.T) {
	n := ActivityLogged("yoga", 30, 88)

	require.Equal(t, LevelSuccess, n.Level)
	require.Equal(t, "✅ 30 minutes of YOGA logged! (88 kcal)", n.Message)
	require.Equal(t, DismissAfter, n.DismissAfter)
}

func TestInProgressMessage(t *testing.T) {
	require.Equal(t, "🎯 Progress: 62.5 minutes done. Keep it up!", InProgress(62.5).Message)
}

func TestTargetMetMessage(t *testing.T) {
	n := TargetMet()
	require.Equal(t, LevelSuccess, n.Level)
	require.Contains(t, n.Message, "weekly target")
}

func TestFormatMinutes(t *testing.T) {
	require.Equal(t, "45", FormatMinutes(45))
	require.Equal(t, "12.25", FormatMinutes(12.25))
	require.Equal(t, "0", FormatMinutes(0))
}
