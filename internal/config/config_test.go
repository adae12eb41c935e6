package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate points HOME at an empty directory so no user config is picked up.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SIGNSPEECH_CONFIG", "")
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Server.Addr != ":8080" {
		t.Errorf("Expected addr ':8080', got %q", c.Server.Addr)
	}
	if c.Server.WasmDir != "" {
		t.Errorf("Expected empty wasm dir, got %q", c.Server.WasmDir)
	}
	if c.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("Expected shutdown timeout 10s, got %s", c.Server.ShutdownTimeout)
	}
	if c.Site.Language != "en" {
		t.Errorf("Expected language 'en', got %q", c.Site.Language)
	}
	if c.Log.Level != "info" || c.Log.Format != "text" {
		t.Errorf("Expected info/text logging, got %s/%s", c.Log.Level, c.Log.Format)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("SIGNSPEECH_SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("SIGNSPEECH_SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("SIGNSPEECH_LOG_FORMAT", "json")

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if c.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Expected addr from env, got %q", c.Server.Addr)
	}
	if c.Server.ShutdownTimeout != 3*time.Second {
		t.Errorf("Expected shutdown timeout 3s, got %s", c.Server.ShutdownTimeout)
	}
	if c.Log.Format != "json" {
		t.Errorf("Expected json format, got %q", c.Log.Format)
	}
}

func TestLoad_File(t *testing.T) {
	// Arrange
	isolate(t)
	path := filepath.Join(t.TempDir(), "signspeech.toml")
	content := `
[server]
addr = ":7070"
wasm_dir = "dist"

[site]
language = "es"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	// Act
	c, err := Load(path)

	// Assert
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Server.Addr != ":7070" {
		t.Errorf("Expected addr ':7070', got %q", c.Server.Addr)
	}
	if c.Server.WasmDir != "dist" {
		t.Errorf("Expected wasm dir 'dist', got %q", c.Server.WasmDir)
	}
	if c.Site.Language != "es" {
		t.Errorf("Expected language 'es', got %q", c.Site.Language)
	}
	// Keys absent from the file keep their defaults.
	if c.Log.Level != "info" {
		t.Errorf("Expected default log level, got %q", c.Log.Level)
	}
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "signspeech.toml")
	if err := os.WriteFile(path, []byte("[server]\naddr = \":7070\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SIGNSPEECH_SERVER_ADDR", ":6060")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Server.Addr != ":6060" {
		t.Errorf("Expected env to win, got %q", c.Server.Addr)
	}
}

func TestLoad_ConfigEnvVar(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "signspeech.toml")
	if err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("SIGNSPEECH_CONFIG", path)

	c, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if c.Log.Level != "debug" {
		t.Errorf("Expected level from SIGNSPEECH_CONFIG file, got %q", c.Log.Level)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	isolate(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Error("Expected an error for a missing config file")
	}
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	isolate(t)
	t.Setenv("SIGNSPEECH_SERVER_SHUTDOWN_TIMEOUT", "0s")

	_, err := Load("")
	if err == nil {
		t.Error("Expected an error for a zero shutdown timeout")
	}
}
