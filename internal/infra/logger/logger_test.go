package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestSetupJSON(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Output: &buf})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer cleanup()

	if err := IsReady(); err != nil {
		t.Fatalf("expected logger ready: %v", err)
	}

	L().Info("process.done", "sheets", 2)

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec); err != nil {
		t.Fatalf("expected one json record, got %q: %v", buf.String(), err)
	}
	if rec["msg"] != "process.done" {
		t.Fatalf("unexpected msg %v", rec["msg"])
	}
	if ts, _ := rec["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got %v", rec["time"])
	}
}

func TestSetupDebugText(t *testing.T) {
	var buf bytes.Buffer
	cleanup, err := Setup(Config{Output: &buf, Format: "text", Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer cleanup()

	L().Debug("deck.pack.done", "sheets", 1)
	if !strings.Contains(buf.String(), "msg=deck.pack.done") {
		t.Fatalf("expected debug text record, got %q", buf.String())
	}
}

func TestSetupUnknownFormat(t *testing.T) {
	if _, err := Setup(Config{Format: "xml"}); err == nil {
		t.Fatalf("expected error")
	}
	if err := IsReady(); err == nil {
		t.Fatalf("expected logger to be reset")
	}
}

func TestCleanupResets(t *testing.T) {
	cleanup, err := Setup(Config{Output: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if err := IsReady(); err == nil {
		t.Fatalf("expected logger to be reset")
	}
}
