package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/catalog"
)

// Defaults applied when the config file is absent or fields are omitted.
const (
	DefaultServerAddress = ":8080"
	DefaultDatabasePath  = "./fractured_mind.db"
	DefaultLogLevel      = "info"
	DefaultRunIdleTTL    = 30 * time.Minute
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	Database *struct {
		Path string `json:"path"`
	} `json:"database"`
	LogLevel string `json:"log_level"`
	// RunIdleMinutes is the inactivity window after which a run is
	// abandoned by the session reaper.
	RunIdleMinutes int `json:"run_idle_minutes"`
	// BossDialogueOncePerProcess suppresses repeated boss low-health
	// dialogue across encounters for the server lifetime.
	BossDialogueOncePerProcess bool `json:"boss_dialogue_once_per_process"`

	// Optional extra content merged into the built-in catalog.
	ExtraAbilities []catalog.Ability `json:"extra_abilities"`
	ExtraEnemies   []catalog.Enemy   `json:"extra_enemies"`
	ExtraItems     []catalog.Item    `json:"extra_items"`
}

// LoadedConfig is the validated runtime configuration.
type LoadedConfig struct {
	ServerAddress              string
	DatabasePath               string
	LogLevel                   string
	RunIdleTTL                 time.Duration
	BossDialogueOncePerProcess bool
}

// LoadConfig reads the configuration file at path, registers any extra
// catalog content it declares and returns the server settings. A missing
// file is not an error; defaults apply.
func LoadConfig(path string) (*LoadedConfig, error) {
	out := &LoadedConfig{
		ServerAddress: DefaultServerAddress,
		DatabasePath:  DefaultDatabasePath,
		LogLevel:      DefaultLogLevel,
		RunIdleTTL:    DefaultRunIdleTTL,
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.Database != nil && rc.Database.Path != "" {
		out.DatabasePath = rc.Database.Path
	}
	if rc.LogLevel != "" {
		out.LogLevel = rc.LogLevel
	}
	if rc.RunIdleMinutes > 0 {
		out.RunIdleTTL = time.Duration(rc.RunIdleMinutes) * time.Minute
	}
	out.BossDialogueOncePerProcess = rc.BossDialogueOncePerProcess

	// Abilities first so enemies and items can reference them; a bad entry
	// fails startup instead of mid-combat.
	for _, a := range rc.ExtraAbilities {
		if err := catalog.RegisterAbility(a); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	for _, e := range rc.ExtraEnemies {
		if err := catalog.RegisterEnemy(e); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	for _, it := range rc.ExtraItems {
		if err := catalog.RegisterItem(it); err != nil {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
	}
	return out, nil
}
