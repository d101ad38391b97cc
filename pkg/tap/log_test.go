package tap_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/tap/pkg/tap"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := tap.NewLogger(&buf, zerolog.InfoLevel)

	logger.Info().Str("path", "x.txt").Msg("hello")
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("log output missing message: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "lib=tap") {
		t.Errorf("log output missing lib field: %q", buf.String())
	}

	buf.Reset()
	logger.Debug().Msg("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}
}

func TestNewTestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	cases := []struct {
		verbose int
		want    zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
	}
	for _, tc := range cases {
		logger := tap.NewTestLogger(&buf, tc.verbose)
		if logger.GetLevel() != tc.want {
			t.Errorf("NewTestLogger(%d) level = %v, want %v", tc.verbose, logger.GetLevel(), tc.want)
		}
	}
}

func TestLogLevelFromString(t *testing.T) {
	level, err := tap.LogLevelFromString("DEBUG")
	if err != nil {
		t.Fatalf("LogLevelFromString() error = %v", err)
	}
	if level != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", level)
	}

	if _, err := tap.LogLevelFromString("nope"); err == nil {
		t.Error("LogLevelFromString() expected error for unknown level")
	}
}
