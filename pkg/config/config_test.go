package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const validYAML = `
environment: test
server:
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 5s
metrics:
  enabled: true
  path: /metrics
rules:
  path: ""
chat:
  typing_delay: 900ms
  rate_burst: 5
  rate_per_sec: 1
cache:
  rank_ttl: 5m
  redis:
    enabled: false
    addr: localhost:6379
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment != "test" {
		t.Errorf("environment = %q", cfg.Environment)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Chat.TypingDelay != 900*time.Millisecond {
		t.Errorf("typing delay = %v", cfg.Chat.TypingDelay)
	}
	if cfg.Cache.RankTTL != 5*time.Minute {
		t.Errorf("rank ttl = %v", cfg.Cache.RankTTL)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing environment", "server:\n  port: 8080\n"},
		{"bad port", "environment: test\nserver:\n  port: 0\n"},
		{"port too large", "environment: test\nserver:\n  port: 70000\n"},
		{"negative typing delay", "environment: test\nserver:\n  port: 8080\nchat:\n  typing_delay: -1s\n"},
		{"redis enabled without addr", "environment: test\nserver:\n  port: 8080\ncache:\n  redis:\n    enabled: true\n"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("RULES_PATH", "/tmp/rules.yaml")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_PASSWORD", "secret")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}

	if cfg.Rules.Path != "/tmp/rules.yaml" {
		t.Errorf("rules path = %q", cfg.Rules.Path)
	}
	if !cfg.Cache.Redis.Enabled {
		t.Error("REDIS_ADDR should enable redis")
	}
	if cfg.Cache.Redis.Addr != "redis:6379" {
		t.Errorf("redis addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.Password != "secret" {
		t.Errorf("redis password = %q", cfg.Cache.Redis.Password)
	}
}

func TestLoadWithEnv_NoOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadWithEnv(writeConfig(t, validYAML))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Cache.Redis.Enabled {
		t.Error("redis should stay disabled without REDIS_ADDR")
	}
}
