package config

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadConfigReadsEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	setEnvWithCleanup(t, "MONOBANK_TOKEN", "env-token")
	setEnvWithCleanup(t, "WEBHOOK_BASE_URL", "https://hooks.example.com")
	setEnvWithCleanup(t, "SERVER_PORT", "9000")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.MonobankToken != "env-token" {
		t.Fatalf("expected token from env, got %q", cfg.MonobankToken)
	}
	if cfg.WebhookBaseURL != "https://hooks.example.com" {
		t.Fatalf("expected webhook base URL from env, got %q", cfg.WebhookBaseURL)
	}
	if cfg.ServerPort != "9000" {
		t.Fatalf("expected port from env, got %q", cfg.ServerPort)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	unsetEnvWithCleanup(t, "SERVER_PORT")
	unsetEnvWithCleanup(t, "STATEMENT_EXCHANGE")
	unsetEnvWithCleanup(t, "RABBITMQ_URL")

	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.ServerPort != "8822" {
		t.Fatalf("expected default port 8822, got %q", cfg.ServerPort)
	}
	if cfg.StatementExchange != "statement_events" {
		t.Fatalf("expected default exchange name, got %q", cfg.StatementExchange)
	}
	if cfg.RabbitMQURL != "" {
		t.Fatalf("expected the relay to be disabled by default, got %q", cfg.RabbitMQURL)
	}
}

func TestLoadConfigReadsDotEnvFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	unsetEnvWithCleanup(t, "MONOBANK_TOKEN")

	dir := t.TempDir()
	if err := os.WriteFile(dir+"/.env", []byte("MONOBANK_TOKEN=file-token\n"), 0o600); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.MonobankToken != "file-token" {
		t.Fatalf("expected token from .env file, got %q", cfg.MonobankToken)
	}
}

func setEnvWithCleanup(t *testing.T, key string, value string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Setenv(key, value); err != nil {
		t.Fatalf("failed to set env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}

func unsetEnvWithCleanup(t *testing.T, key string) {
	t.Helper()
	prev, hadPrev := os.LookupEnv(key)
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("failed to unset env %s: %v", key, err)
	}
	t.Cleanup(func() {
		if hadPrev {
			_ = os.Setenv(key, prev)
			return
		}
		_ = os.Unsetenv(key)
	})
}
