package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fractured_config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerAddress != DefaultServerAddress {
		t.Fatalf("address = %q, want default", cfg.ServerAddress)
	}
	if cfg.DatabasePath != DefaultDatabasePath || cfg.LogLevel != DefaultLogLevel {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.RunIdleTTL != DefaultRunIdleTTL {
		t.Fatalf("idle TTL = %v, want default", cfg.RunIdleTTL)
	}
}

func TestLoadConfigReadsFields(t *testing.T) {
	path := writeTempConfig(t, `{
		"server": {"address": ":9090"},
		"database": {"path": "/tmp/test.db"},
		"log_level": "debug",
		"run_idle_minutes": 5,
		"boss_dialogue_once_per_process": true
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ServerAddress != ":9090" || cfg.DatabasePath != "/tmp/test.db" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.RunIdleTTL != 5*time.Minute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if !cfg.BossDialogueOncePerProcess {
		t.Fatal("boss dialogue flag not read")
	}
}

func TestLoadConfigRejectsBadJSON(t *testing.T) {
	path := writeTempConfig(t, `{"server":`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed JSON must fail")
	}
}

func TestLoadConfigRejectsDuplicateCatalogIDs(t *testing.T) {
	// laudanum is built in; re-registering it must fail startup
	path := writeTempConfig(t, `{
		"extra_items": [{"id": "laudanum", "name": "Laudanum", "kind": "heal", "value": 5}]
	}`)
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("duplicate item id must fail")
	}
}
