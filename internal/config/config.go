package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where Load looks when no -config flag is given.
const DefaultConfigPath = "config.yml"

// Load reads the YAML config at path, fills defaults, and applies
// environment overrides. A missing file is not an error: the defaults
// describe a self-contained development setup.
func Load(path string) (*AppConfig, error) {
	cfg := defaults()

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	normalize(cfg)
	return cfg, nil
}

func defaults() *AppConfig {
	return &AppConfig{
		Port:       2323,
		Env:        "development",
		DataPath:   "data/msadmin.db",
		JWTSecret:  "msadmin-secret-change-me",
		SessionTTL: 24 * 7,
		Admin: AdminConfig{
			Email:    "sayan@microsoftadmin.in",
			Name:     "Sayan Ghosh",
			Password: "admin123",
		},
		Lockout: LockoutConfig{
			MaxAttempts:   3,
			WindowMinutes: 30,
		},
	}
}

func applyEnv(cfg *AppConfig) {
	if v := os.Getenv("MSADMIN_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("MSADMIN_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("MSADMIN_DATA"); v != "" {
		cfg.DataPath = v
	}
	if v := os.Getenv("MSADMIN_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
}

func normalize(cfg *AppConfig) {
	if cfg.Port <= 0 {
		cfg.Port = 2323
	}
	if cfg.DataPath == "" {
		cfg.DataPath = "data/msadmin.db"
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * 7
	}
	if cfg.Lockout.MaxAttempts <= 0 {
		cfg.Lockout.MaxAttempts = 3
	}
	if cfg.Lockout.WindowMinutes <= 0 {
		cfg.Lockout.WindowMinutes = 30
	}
}
