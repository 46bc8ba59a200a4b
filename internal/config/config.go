// Package config loads service configuration from an optional YAML file
// with environment-variable overrides layered on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Billing  Billing  `yaml:"billing"`
	Policy   Policy   `yaml:"policy"`
}

type Server struct {
	Addr          string `yaml:"addr"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type Database struct {
	Path string `yaml:"path"`
}

type Billing struct {
	// Provider is "mock" until a live payment integration is configured.
	Provider      string `yaml:"provider"`
	WebhookSecret string `yaml:"webhook_secret"`
}

type Policy struct {
	// Narrative attaches an LLM-written executive summary to document
	// responses when enabled.
	Narrative bool `yaml:"narrative"`
}

// Default returns the configuration used when nothing is provided.
func Default() Config {
	return Config{
		Server: Server{
			Addr:          ":8080",
			PublicBaseURL: "http://localhost:8080",
		},
		Database: Database{Path: "compligenie.db"},
		Billing:  Billing{Provider: "mock"},
	}
}

// Merge overlays non-zero values from the override onto the receiver.
func (c Config) Merge(override Config) Config {
	result := c
	if strings.TrimSpace(override.Server.Addr) != "" {
		result.Server.Addr = strings.TrimSpace(override.Server.Addr)
	}
	if strings.TrimSpace(override.Server.PublicBaseURL) != "" {
		result.Server.PublicBaseURL = strings.TrimSpace(override.Server.PublicBaseURL)
	}
	if strings.TrimSpace(override.Database.Path) != "" {
		result.Database.Path = strings.TrimSpace(override.Database.Path)
	}
	if strings.TrimSpace(override.Billing.Provider) != "" {
		result.Billing.Provider = strings.TrimSpace(override.Billing.Provider)
	}
	if strings.TrimSpace(override.Billing.WebhookSecret) != "" {
		result.Billing.WebhookSecret = strings.TrimSpace(override.Billing.WebhookSecret)
	}
	if override.Policy.Narrative {
		result.Policy.Narrative = true
	}
	return result
}

// Load reads the YAML file at path, overlays it onto the defaults, then
// overlays environment variables on top. A missing file is not an error
// when the path is empty or the default location.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// fall through to env overlays
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
			cfg = cfg.Merge(fileCfg)
		}
	}
	return cfg.Merge(fromEnv()), nil
}

func fromEnv() Config {
	var env Config
	env.Server.Addr = os.Getenv("COMPLIGENIE_ADDR")
	env.Server.PublicBaseURL = os.Getenv("COMPLIGENIE_PUBLIC_BASE_URL")
	env.Database.Path = os.Getenv("COMPLIGENIE_DB_PATH")
	env.Billing.Provider = os.Getenv("COMPLIGENIE_BILLING_PROVIDER")
	env.Billing.WebhookSecret = os.Getenv("COMPLIGENIE_WEBHOOK_SECRET")
	if raw := os.Getenv("COMPLIGENIE_NARRATIVE"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			env.Policy.Narrative = v
		}
	}
	return env
}
