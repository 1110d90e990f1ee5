package common

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestSetupLoggerLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{input: "DEBUG", expected: zerolog.DebugLevel},
		{input: "warn", expected: zerolog.WarnLevel},
		{input: "INFO", expected: zerolog.InfoLevel},
		{input: "bogus", expected: zerolog.InfoLevel},
		{input: "", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		SetupLogger(tt.input, "test")
		if got := zerolog.GlobalLevel(); got != tt.expected {
			t.Errorf("SetupLogger(%q) level = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}
