package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Name != "feedback-service" {
		t.Fatalf("expected default app name, got %s", cfg.App.Name)
	}
	if cfg.Auth.AdminEmail != "admin@gmail.com" {
		t.Fatalf("expected default admin email, got %s", cfg.Auth.AdminEmail)
	}
	if cfg.Auth.LoginDelay() != 1500*time.Millisecond {
		t.Fatalf("expected default login delay, got %s", cfg.Auth.LoginDelay())
	}
	if cfg.Gemini.Model != "gemini-3-pro-preview" {
		t.Fatalf("expected default model, got %s", cfg.Gemini.Model)
	}
	if cfg.Gemini.Temperature != 0.7 {
		t.Fatalf("expected default temperature, got %f", cfg.Gemini.Temperature)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_ADMIN_EMAIL", "root@example.com")
	t.Setenv("AUTH_LOGIN_DELAY_MILLIS", "0")
	t.Setenv("GEMINI_MODEL", "gemini-test")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Addr() != "0.0.0.0:9090" {
		t.Fatalf("expected APP_PORT override, got %s", cfg.App.Addr())
	}
	if cfg.Auth.AdminEmail != "root@example.com" {
		t.Fatalf("expected AUTH_ADMIN_EMAIL override, got %s", cfg.Auth.AdminEmail)
	}
	if cfg.Auth.LoginDelay() != 0 {
		t.Fatalf("expected zero login delay, got %s", cfg.Auth.LoginDelay())
	}
	if cfg.Gemini.Model != "gemini-test" || cfg.Gemini.APIKey != "k" {
		t.Fatalf("expected gemini overrides, got %+v", cfg.Gemini)
	}
}

func TestLoadRejectsBadTemperature(t *testing.T) {
	t.Setenv("GEMINI_TEMPERATURE", "warm")
	if _, err := Load(); err == nil {
		t.Fatalf("expected invalid temperature to error")
	}
}
