package environment

import (
	"testing"
	"time"
)

type testConfig struct {
	Port        string        `env:"PORT" default:":8080"`
	MaxConns    int           `env:"MAX_CONNS" default:"10"`
	Debug       bool          `env:"DEBUG" default:"false"`
	ReadTimeout time.Duration `env:"READ_TIMEOUT" default:"30s"`
	Origins     []string      `env:"ORIGINS" default:"*" separator:","`
	Ignored     string
}

func TestParseEnvTagsDefaults(t *testing.T) {
	var cfg testConfig
	if err := ParseEnvTags("TEST", &cfg); err != nil {
		t.Fatalf("ParseEnvTags: unexpected error: %v", err)
	}

	if cfg.Port != ":8080" {
		t.Errorf("Port: got %q, want :8080", cfg.Port)
	}
	if cfg.MaxConns != 10 {
		t.Errorf("MaxConns: got %d, want 10", cfg.MaxConns)
	}
	if cfg.Debug {
		t.Error("Debug: got true, want false")
	}
	if cfg.ReadTimeout != 30*time.Second {
		t.Errorf("ReadTimeout: got %v, want 30s", cfg.ReadTimeout)
	}
	if len(cfg.Origins) != 1 || cfg.Origins[0] != "*" {
		t.Errorf("Origins: got %v, want [*]", cfg.Origins)
	}
}

func TestParseEnvTagsOverrides(t *testing.T) {
	t.Setenv("TEST_PORT", ":9999")
	t.Setenv("TEST_MAX_CONNS", "50")
	t.Setenv("TEST_DEBUG", "true")
	t.Setenv("TEST_READ_TIMEOUT", "1m30s")
	t.Setenv("TEST_ORIGINS", "https://a.example, https://b.example")

	var cfg testConfig
	if err := ParseEnvTags("TEST", &cfg); err != nil {
		t.Fatalf("ParseEnvTags: unexpected error: %v", err)
	}

	if cfg.Port != ":9999" {
		t.Errorf("Port: got %q, want :9999", cfg.Port)
	}
	if cfg.MaxConns != 50 {
		t.Errorf("MaxConns: got %d, want 50", cfg.MaxConns)
	}
	if !cfg.Debug {
		t.Error("Debug: got false, want true")
	}
	if cfg.ReadTimeout != 90*time.Second {
		t.Errorf("ReadTimeout: got %v, want 1m30s", cfg.ReadTimeout)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Origins) != 2 || cfg.Origins[0] != want[0] || cfg.Origins[1] != want[1] {
		t.Errorf("Origins: got %v, want %v", cfg.Origins, want)
	}
}

func TestParseEnvTagsNoPrefix(t *testing.T) {
	t.Setenv("PORT", ":7777")

	var cfg testConfig
	if err := ParseEnvTags("", &cfg); err != nil {
		t.Fatalf("ParseEnvTags: unexpected error: %v", err)
	}
	if cfg.Port != ":7777" {
		t.Errorf("Port: got %q, want :7777", cfg.Port)
	}
}

func TestParseEnvTagsRequired(t *testing.T) {
	type requiredConfig struct {
		DatabaseURL string `env:"DATABASE_URL" required:"true"`
	}

	var cfg requiredConfig
	if err := ParseEnvTags("TEST", &cfg); err == nil {
		t.Fatal("ParseEnvTags: expected error for unset required variable")
	}

	t.Setenv("TEST_DATABASE_URL", "postgres://localhost/db")
	if err := ParseEnvTags("TEST", &cfg); err != nil {
		t.Fatalf("ParseEnvTags: unexpected error: %v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost/db" {
		t.Errorf("DatabaseURL: got %q", cfg.DatabaseURL)
	}
}

func TestParseEnvTagsBadValue(t *testing.T) {
	t.Setenv("TEST_MAX_CONNS", "not-a-number")

	var cfg testConfig
	if err := ParseEnvTags("TEST", &cfg); err == nil {
		t.Fatal("ParseEnvTags: expected error for invalid int")
	}
}

func TestParseEnvTagsRejectsNonPointer(t *testing.T) {
	var cfg testConfig
	if err := ParseEnvTags("TEST", cfg); err == nil {
		t.Fatal("ParseEnvTags: expected error for non-pointer")
	}
}
