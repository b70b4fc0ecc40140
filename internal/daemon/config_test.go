package daemon

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8090 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8090)
	}
	if cfg.Engine.HonestyMinimum != 80 {
		t.Errorf("Engine.HonestyMinimum = %d, want 80", cfg.Engine.HonestyMinimum)
	}
	if cfg.Engine.LockInDays != 7 {
		t.Errorf("Engine.LockInDays = %d, want 7", cfg.Engine.LockInDays)
	}
}

func TestLoadConfig_NoFile(t *testing.T) {
	t.Setenv("RESOLVE_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 8090 {
		t.Errorf("API.Port = %d, want default 8090", cfg.API.Port)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("RESOLVE_HOME", t.TempDir())
	t.Setenv("RESOLVE_PORT", "9999")
	t.Setenv("RESOLVE_HOST", "0.0.0.0")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.API.Port != 9999 {
		t.Errorf("API.Port = %d, want 9999", cfg.API.Port)
	}
	if cfg.API.Host != "0.0.0.0" {
		t.Errorf("API.Host = %q, want 0.0.0.0", cfg.API.Host)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("RESOLVE_HOME", dir)

	cfg := DefaultConfig()
	cfg.API.Port = 7777
	cfg.Engine.LockInDays = 3
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if loaded.API.Port != 7777 {
		t.Errorf("API.Port = %d, want 7777", loaded.API.Port)
	}
	if loaded.Engine.LockInDays != 3 {
		t.Errorf("Engine.LockInDays = %d, want 3", loaded.Engine.LockInDays)
	}

	want := filepath.Join(dir, "config.toml")
	if Home() != dir {
		t.Errorf("Home() = %q, want %q (config at %s)", Home(), dir, want)
	}
}
