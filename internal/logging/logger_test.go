package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

func TestInitLevel(t *testing.T) {
	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"bogus", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			Init(Config{Level: tt.level, Output: &bytes.Buffer{}})
			if got := Logger.GetLevel(); got != tt.want {
				t.Errorf("level for %q: expected %v, got %v", tt.level, tt.want, got)
			}
		})
	}
	Init(DefaultConfig())
}

func TestStageLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	log := Stage("trades")
	log.Info().Int("rows", 300).Msg("Stage complete")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["stage"] != "trades" {
		t.Errorf("expected stage 'trades', got %v", entry["stage"])
	}
	if entry["rows"] != float64(300) {
		t.Errorf("expected rows 300, got %v", entry["rows"])
	}
}

func TestPrettyOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Pretty: true, Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("table", "users").Msg("Table complete")
	if !strings.Contains(buf.String(), "Table complete") {
		t.Errorf("expected message in console output, got %q", buf.String())
	}
}

func TestErrorStack(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "info", Output: &buf})
	defer Init(DefaultConfig())

	err := fmt.Errorf("failed to generate trades: %w", errors.WithStack(io.ErrUnexpectedEOF))
	Error().Stack().Err(err).Msg("Stage failed")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	frames, ok := entry["stack"].([]any)
	if !ok || len(frames) == 0 {
		t.Fatalf("expected a stack trace, got %v", entry["stack"])
	}
	top, _ := frames[0].(map[string]any)
	if top["func"] != "TestErrorStack" {
		t.Errorf("expected top frame TestErrorStack, got %v", top["func"])
	}

	buf.Reset()
	Error().Stack().Err(io.EOF).Msg("plain")
	if strings.Contains(buf.String(), `"stack"`) {
		t.Errorf("plain error should carry no stack: %s", buf.String())
	}
}
