package logging

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "trace", level: "trace", want: zerolog.TraceLevel},
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "info", level: "info", want: zerolog.InfoLevel},
		{name: "warn", level: "warn", want: zerolog.WarnLevel},
		{name: "error", level: "error", want: zerolog.ErrorLevel},
		{name: "unknown defaults to info", level: "verbose", want: zerolog.InfoLevel},
		{name: "empty defaults to info", level: "", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.level))
		})
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("RIMEKIT_LOG_LEVEL", "debug")
	t.Setenv("RIMEKIT_LOG_FORMAT", "json")

	log := NewFromEnv()
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())
}

func TestNewFromEnvIgnoresBadFormat(t *testing.T) {
	t.Setenv("RIMEKIT_LOG_LEVEL", "warn")
	t.Setenv("RIMEKIT_LOG_FORMAT", "xml")

	log := NewFromEnv()
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	logger := New(Config{Level: zerolog.ErrorLevel, Format: "json"})

	ctx := WithContext(context.Background(), logger)
	got := FromContext(ctx)
	assert.Equal(t, zerolog.ErrorLevel, got.GetLevel())

	// A bare context yields a usable disabled logger, never nil.
	got = FromContext(context.Background())
	assert.NotNil(t, got)

	child := WithComponent(ctx, "session")
	assert.Equal(t, zerolog.ErrorLevel, FromContext(child).GetLevel())
}
