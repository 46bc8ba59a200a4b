package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":8080" || cfg.Database.Path != "compligenie.db" {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Billing.Provider != "mock" {
		t.Errorf("billing provider = %q, want mock", cfg.Billing.Provider)
	}
}

func TestLoadFileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := []byte("server:\n  addr: \":9090\"\ndatabase:\n  path: /tmp/test.db\npolicy:\n  narrative: true\n")
	if err := os.WriteFile(path, body, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("file overlay not applied: %+v", cfg)
	}
	if !cfg.Policy.Narrative {
		t.Error("narrative flag not applied")
	}
	// Values the file omits keep their defaults.
	if cfg.Server.PublicBaseURL != "http://localhost:8080" {
		t.Errorf("public base url = %q", cfg.Server.PublicBaseURL)
	}
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("COMPLIGENIE_ADDR", ":7070")
	t.Setenv("COMPLIGENIE_WEBHOOK_SECRET", "whsec_test")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Addr != ":7070" {
		t.Errorf("env override lost: %q", cfg.Server.Addr)
	}
	if cfg.Billing.WebhookSecret != "whsec_test" {
		t.Errorf("webhook secret = %q", cfg.Billing.WebhookSecret)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed yaml should be rejected")
	}
}
