package services

import (
	"bytes"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/holiman/uint256"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type namedService string

func (n namedService) ID() string { return string(n) }

func TestServiceLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	defer func() { log.Logger = prev }()

	logger := NewServiceLogger(namedService("split-service")).
		Method("SplitBatch").
		Split("batch", uint256.NewInt(1234))
	logger.Info().Msg("done")

	var entry map[string]string
	if err := sonic.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}

	expected := map[string]string{
		"service":   "split-service",
		"method":    "SplitBatch",
		"operation": "batch",
		"amount":    "1234",
		"message":   "done",
	}
	for k, v := range expected {
		if entry[k] != v {
			t.Errorf("%s = %q, expected %q", k, entry[k], v)
		}
	}
}
