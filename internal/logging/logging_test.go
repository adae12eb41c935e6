package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for raw, want := range tests {
		got, err := ParseLevel(raw)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", raw, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q): expected %s, got %s", raw, want, got)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}

func TestNew_JSON(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger, _, err := New("info", "json", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	// Act
	logger.Info("served", "path", "/settings")

	// Assert
	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Expected a JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "served" || entry["path"] != "/settings" {
		t.Errorf("Unexpected entry: %v", entry)
	}
}

func TestNew_LevelVarFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, levelVar, err := New("warn", "text", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("Expected info to be filtered at warn, got %q", buf.String())
	}

	levelVar.Set(slog.LevelDebug)
	logger.Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Errorf("Expected debug line after lowering the level, got %q", buf.String())
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, _, err := New("info", "xml", &bytes.Buffer{}); err == nil {
		t.Error("Expected an error for an unknown format")
	}
}
