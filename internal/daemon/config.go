// Package daemon manages the Resolve daemon lifecycle and configuration.
package daemon

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all daemon configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Engine  EngineConfig  `toml:"engine"`
}

// APIConfig controls the HTTP API server.
type APIConfig struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Metrics bool   `toml:"metrics"`
}

// StorageConfig controls where state lives.
type StorageConfig struct {
	Dir string `toml:"dir"`
}

// EngineConfig tunes the scoring engine's policy knobs.
type EngineConfig struct {
	HonestyMinimum int `toml:"honesty_minimum"`
	LockInDays     int `toml:"lock_in_days"`
}

// DefaultConfig returns a sensible default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			Host:    "127.0.0.1",
			Port:    8090,
			Metrics: true,
		},
		Storage: StorageConfig{
			Dir: resolveHome(),
		},
		Engine: EngineConfig{
			HonestyMinimum: 80,
			LockInDays:     7,
		},
	}
}

// LoadConfig reads config from $RESOLVE_HOME/config.toml, falling back to
// defaults. A .env file in the working directory is loaded first so
// RESOLVE_HOME and RESOLVE_PORT can be set per deployment.
func LoadConfig() (Config, error) {
	_ = godotenv.Load() // No .env file is fine

	cfg := DefaultConfig()
	path := filepath.Join(resolveHome(), "config.toml")

	if _, err := os.Stat(path); os.IsNotExist(err) {
		applyEnv(&cfg)
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

// applyEnv lets environment variables override file values.
func applyEnv(cfg *Config) {
	if port := os.Getenv("RESOLVE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.API.Port = p
		}
	}
	if host := os.Getenv("RESOLVE_HOST"); host != "" {
		cfg.API.Host = host
	}
	if cfg.Storage.Dir == "" {
		cfg.Storage.Dir = resolveHome()
	}
}

// SaveConfig writes the config to $RESOLVE_HOME/config.toml.
func SaveConfig(cfg Config) error {
	path := filepath.Join(resolveHome(), "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// resolveHome returns the Resolve data directory.
func resolveHome() string {
	if env := os.Getenv("RESOLVE_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".resolve")
}

// Home is exported for use by other packages.
func Home() string {
	return resolveHome()
}
