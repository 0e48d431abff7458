package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port   int    `env:"TEST_PORT" envDefault:"123"`
	Letter string `env:"TEST_CASE" envDefault:"upper"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Letter != "upper" {
		t.Fatalf("expected default case upper, got %q", cfg.Letter)
	}
}

func TestParseEnvUsesPrefix(t *testing.T) {
	t.Setenv("TEST_CASE", "ignored")
	t.Setenv("ARITHMOS_TEST_CASE", "lower")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Letter != "lower" {
		t.Fatalf("expected prefixed value lower, got %q", cfg.Letter)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("ARITHMOS_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
