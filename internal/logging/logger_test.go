package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewWithWriter_JSONCarriesService(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "production", "info")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug().Msg("hidden")
	logger.Info().Str("provider", "baidu").Msg("ready")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug to be filtered, got %s", out)
	}
	if !strings.Contains(out, `"service":"fusiontranslate"`) || !strings.Contains(out, `"provider":"baidu"`) {
		t.Fatalf("unexpected log line: %s", out)
	}
}

func TestNewWithWriter_LocalUsesConsole(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewWithWriter(&buf, "LOCAL", "debug")
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Debug().Msg("console line")

	out := buf.String()
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected console format, got %s", out)
	}
	if !strings.Contains(out, "console line") {
		t.Fatalf("expected message in output, got %s", out)
	}
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	if _, err := New("local", "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
