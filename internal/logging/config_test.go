package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw    string
		want   zerolog.Level
		wantOK bool
	}{
		{"", zerolog.InfoLevel, false},
		{"debug", zerolog.DebugLevel, true},
		{" WARN ", zerolog.WarnLevel, true},
		{"warning", zerolog.WarnLevel, true},
		{"off", zerolog.Disabled, true},
		{"none", zerolog.Disabled, true},
		{"disabled", zerolog.Disabled, true},
		{"trace", zerolog.TraceLevel, true},
		{"Error", zerolog.ErrorLevel, true},
		{"loud", zerolog.InfoLevel, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := parseLevel(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvLogTimestamp, "false")
	t.Setenv(EnvLogNoColor, "yes")

	cfg := DefaultConfig(ProfileRuntime)
	ApplyEnvOverrides(&cfg)

	assert.Equal(t, zerolog.ErrorLevel, cfg.Level)
	assert.False(t, cfg.Timestamp)
	assert.False(t, cfg.NoColor, "unparsable bool leaves the default")
}

func TestNewWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: zerolog.WarnLevel, NoColor: true}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("field", "birth").Msg("bad birth date")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "bad birth date")
	assert.Contains(t, out, "field=birth")
}

func TestLoggerBeforeConfigureDiscards(t *testing.T) {
	log := Logger()
	assert.NotPanics(t, func() { log.Warn().Msg("dropped") })
}
