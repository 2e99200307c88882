package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
		wantErr  bool
	}{
		{"debug", zapcore.DebugLevel, false},
		{"INFO", zapcore.InfoLevel, false},
		{"", zapcore.InfoLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{"error", zapcore.ErrorLevel, false},
		{"verbose", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewVerbosity(t *testing.T) {
	tests := []struct {
		level       string
		wantInfo    bool
		wantVerbose bool
	}{
		{"debug", true, true},
		{"info", true, false},
		{"error", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(tt.level, &buf)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			log.Info("normalized spreadsheet", "rows", 3)
			log.V(1).Info("skipping sheet", "sheet", "Notes")

			out := buf.String()
			if got := strings.Contains(out, "normalized spreadsheet"); got != tt.wantInfo {
				t.Errorf("info logged = %v, expected %v:\n%s", got, tt.wantInfo, out)
			}
			if got := strings.Contains(out, "skipping sheet"); got != tt.wantVerbose {
				t.Errorf("V(1) logged = %v, expected %v:\n%s", got, tt.wantVerbose, out)
			}
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}); err == nil {
		t.Error("expected error for unknown level")
	}
}
