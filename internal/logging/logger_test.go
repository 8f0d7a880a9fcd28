package logging

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, GetLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, GetLevel("WARN"))
	assert.Equal(t, logrus.TraceLevel, GetLevel("trace"))
	assert.Equal(t, logrus.InfoLevel, GetLevel(""))
	assert.Equal(t, logrus.InfoLevel, GetLevel("chatty"))
}

func TestConfigureWritesToFile(t *testing.T) {
	logger := logrus.New()
	path := filepath.Join(t.TempDir(), "exerciselog")

	Configure(logger, LoggerSetupParams{
		LogFileName:   path,
		LogLevel:      "debug",
		LogFormatJSON: true,
	})
	logger.WithField("activity_type", "yoga").Debug("preview served")

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"activity_type":"yoga"`)
	assert.Contains(t, string(data), `"msg":"preview served"`)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestCombinedWriter(t *testing.T) {
	var a, b bytes.Buffer
	cw := NewCombinedWriter(&a, &b)

	n, err := cw.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", a.String())
	assert.Equal(t, "hello", b.String())
}

func TestCombinedWriterKeepsWritingPastFailures(t *testing.T) {
	var ok bytes.Buffer
	cw := NewCombinedWriter(failingWriter{}, &ok, failingWriter{})

	_, err := cw.Write([]byte("entry"))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Equal(t, "entry", ok.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}
