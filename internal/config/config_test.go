package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigFile, filepath.Join(t.TempDir(), "nope.yaml"))
	t.Setenv("HOTELX_BACKEND_URL", "")
	t.Setenv("HOTELX_LOG_LEVEL", "")
	t.Setenv("HOTELX_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestLoadFileAndEnvLayering(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "backend_url: https://file.example\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigFile, path)
	t.Setenv("HOTELX_BACKEND_URL", "https://env.example")
	t.Setenv("HOTELX_LOG_LEVEL", "")
	t.Setenv("HOTELX_LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BackendURL != "https://env.example" {
		t.Errorf("BackendURL = %q, want env override", cfg.BackendURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want file value debug", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("LogFormat = %q, want default text", cfg.LogFormat)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(": not yaml : ["), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigFile, path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoadServerOverrides(t *testing.T) {
	t.Setenv("HOTELX_DEV_ADDR", ":9999")
	t.Setenv("HOTELX_DEV_DB", "/tmp/hotelx.db")
	t.Setenv("HOTELX_DEV_ACCESS_TTL_MIN", "42")
	t.Setenv("HOTELX_DEV_REFRESH_TTL_DAYS", "")
	t.Setenv("HOTELX_DEV_JWT_SECRET", "")
	t.Setenv("HOTELX_LOG_LEVEL", "")
	t.Setenv("HOTELX_LOG_FORMAT", "")

	cfg := LoadServer()
	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	if cfg.DBPath != "/tmp/hotelx.db" {
		t.Errorf("DBPath = %q", cfg.DBPath)
	}
	if cfg.AccessTTLMin != 42 {
		t.Errorf("AccessTTLMin = %d", cfg.AccessTTLMin)
	}
	if cfg.RefreshTTLDays != DefaultServerConfig().RefreshTTLDays {
		t.Errorf("RefreshTTLDays = %d, want default", cfg.RefreshTTLDays)
	}
}
