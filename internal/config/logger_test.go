package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevel(t *testing.T) {
	tests := []struct {
		env  string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"warn", log.WarnLevel},
		{"bogus", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Setenv("LOG_LEVEL", tt.env)
		if got := NewLogger(&bytes.Buffer{}, "test").GetLevel(); got != tt.want {
			t.Fatalf("LOG_LEVEL=%q: level = %v, want %v", tt.env, got, tt.want)
		}
	}
}

func TestNewLoggerWrites(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	var buf bytes.Buffer
	logger := NewLogger(&buf, "shootmoop")
	logger.Debug("hidden")
	logger.Info("shown", "tick", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "tick=3") {
		t.Fatalf("output = %q, want the info line with its fields", out)
	}
}
