package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"watchnext/internal/logging"
)

func TestNewConsoleWritesKeyValueLines(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("playing episode", logging.Int(logging.FieldEpisodeIndex, 2))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("expected level label in output, got %q", line)
	}
	if !strings.Contains(line, "playing episode") {
		t.Fatalf("expected message in output, got %q", line)
	}
	if !strings.Contains(line, "episode_index=2") {
		t.Fatalf("expected attr in output, got %q", line)
	}
}

func TestConsolePromotesComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logging.NewComponentLogger(logger, "session").Info("started")

	line := buf.String()
	if !strings.Contains(line, "session: started") {
		t.Fatalf("expected component prefix, got %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not appear as attr, got %q", line)
	}
}

func TestConsoleOmitsSourceAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "info", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message without caller")

	if strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected no caller information at info level, got %q", buf.String())
	}
}

func TestConsoleIncludesSourceAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("message with caller")

	if !strings.Contains(buf.String(), ".go:") {
		t.Fatalf("expected caller information at debug level, got %q", buf.String())
	}
}

func TestNewJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("json message", logging.String("k", "v"))

	line := buf.String()
	if !strings.Contains(line, `"msg":"json message"`) {
		t.Fatalf("expected JSON message, got %q", line)
	}
	if !strings.Contains(line, `"k":"v"`) {
		t.Fatalf("expected JSON attr, got %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "loud", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be suppressed, got %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("info line should be emitted, got %q", out)
	}
}
