package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(verbose bool) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(&buf, verbose, false)
	l.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC) }
	return l, &buf
}

func TestLogger_Format(t *testing.T) {
	l, buf := newTestLogger(false)

	l.Info("found %d file(s)", 3)

	assert.Equal(t, "[03:04:05.006 INFO] found 3 file(s)\n", buf.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{"debug", []string{"DEBUG", "INFO", "WARN", "ERROR"}},
		{"info", []string{"INFO", "WARN", "ERROR"}},
		{"warning", []string{"WARN", "ERROR"}},
		{"error", []string{"ERROR"}},
		{"off", nil},
		{"bogus", []string{"INFO", "WARN", "ERROR"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			l, buf := newTestLogger(false)
			l.SetLevel(tt.level)

			l.Debug("d")
			l.Info("i")
			l.Warn("w")
			l.Error("e")

			var got []string
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				if line == "" {
					continue
				}
				fields := strings.Fields(strings.Trim(line, "["))
				got = append(got, strings.TrimSuffix(fields[1], "]"))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_VerboseMode(t *testing.T) {
	l, _ := newTestLogger(true)
	assert.True(t, l.VerboseMode)
	assert.Equal(t, LevelDebug, l.Level())

	l.WithLevel(LevelWarn)
	assert.False(t, l.VerboseMode)
	assert.False(t, l.Enabled(LevelInfo))
	assert.True(t, l.Enabled(LevelError))
	assert.False(t, l.Enabled(LevelNone))
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "NONE", LevelNone.String())
}
