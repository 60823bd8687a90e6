package rclog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Warn)
	l.Infof("should not appear")
	l.Warnf("should appear %d", 1)
	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear 1")
	assert.True(t, strings.Contains(out, "[WARN]"))
}

func TestLoggerSetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Error)
	l.Warnf("hidden")
	assert.Empty(t, buf.String())
	l.SetLevel(Warn)
	l.Warnf("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", Debug.String())
	assert.Equal(t, "UNKNOWN", Level(99).String())
}
