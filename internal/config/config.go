// Package config loads the console's configuration: defaults first, then an
// optional YAML file, then environment overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/leadgrid/leadgrid/internal/auth"
	"github.com/leadgrid/leadgrid/internal/observability"
)

// Config is the full console configuration.
type Config struct {
	Listen     string `yaml:"listen"`
	APIBaseURL string `yaml:"api_base_url"`
	LogLevel   string `yaml:"log_level"`

	Auth    AuthConfig                  `yaml:"auth"`
	Redis   RedisConfig                 `yaml:"redis"`
	Tracing observability.TracingConfig `yaml:"tracing"`
}

// AuthConfig configures the development token checker and the auth
// capabilities handed to the navigation shell. Production deployments
// replace the checker in code; the static token exists so the console is
// usable out of the box.
type AuthConfig struct {
	Token      string   `yaml:"token"`
	LogoutPath string   `yaml:"logout_path"`
	User       *DevUser `yaml:"user"`
}

// DevUser is the user the development token resolves to.
type DevUser struct {
	SuperAdmin  bool              `yaml:"super_admin"`
	Roles       map[string]string `yaml:"roles"`
	DisplayName string            `yaml:"display_name"`
	Email       string            `yaml:"email"`
}

// User converts the YAML shape to the auth user.
func (d *DevUser) User() *auth.User {
	if d == nil {
		return nil
	}
	return &auth.User{
		IsSuperAdmin: d.SuperAdmin,
		Roles:        d.Roles,
		DisplayName:  d.DisplayName,
		Email:        d.Email,
	}
}

// RedisConfig configures the optional tenant-list cache. An empty Addr
// disables it.
type RedisConfig struct {
	Addr string        `yaml:"addr"`
	TTL  time.Duration `yaml:"ttl"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Listen:     ":8080",
		APIBaseURL: "http://localhost:9000",
		LogLevel:   "info",
		Auth: AuthConfig{
			LogoutPath: "/logout",
		},
		Redis: RedisConfig{
			TTL: 5 * time.Minute,
		},
		Tracing: observability.TracingConfig{
			ServiceName: "leadgrid-console",
			SampleRate:  1,
		},
	}
}

// Load builds the configuration: Default, overlaid with the YAML file at
// path when non-empty, overlaid with environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyEnv(&cfg)

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("LEADGRID_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("LEADGRID_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("LEADGRID_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LEADGRID_AUTH_TOKEN"); v != "" {
		cfg.Auth.Token = v
	}
	if v := os.Getenv("LEADGRID_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
}
