package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func captureLogs(t *testing.T, level string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := Log
	Log = NewWriterLogger(level, &buf)
	t.Cleanup(func() { Log = prev })
	return &buf
}

func TestInfoWithFieldsWritesTopLevelJSONKeys(t *testing.T) {
	buf := captureLogs(t, "info")
	t.Setenv("SERVICE_NAME", "blog-api")

	InfoWithFields("completed request", Fields{"request_id": "req-1", "status": 200})
	DebugWithFields("not emitted at info", nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["message"] != "completed request" {
		t.Fatalf("unexpected message %v", entry["message"])
	}
	if !strings.EqualFold(entry["level"].(string), "info") {
		t.Fatalf("unexpected level %v", entry["level"])
	}
	if entry["request_id"] != "req-1" {
		t.Fatalf("expected request_id field, got %v", entry["request_id"])
	}
	if entry["service_name"] != "blog-api" {
		t.Fatalf("expected service_name from env, got %v", entry["service_name"])
	}
}

func TestDebugLevelEmitsDebug(t *testing.T) {
	buf := captureLogs(t, "debug")

	DebugWithFields("cache miss", Fields{"key": "k"})

	if !strings.Contains(buf.String(), "cache miss") {
		t.Fatalf("expected debug line, got %q", buf.String())
	}
}
