package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/benchstats/internal/domain"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := NewLoader().LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Input != "logs/results-2013-05.txt" {
		t.Fatalf("expected input from file, got %q", cfg.Input)
	}
	if cfg.DecimalSeparator != ";" {
		t.Fatalf("expected ; separator, got %q", cfg.DecimalSeparator)
	}
	if len(cfg.Rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(cfg.Rules))
	}
	if cfg.Rules[0].Action != domain.ActionEcho {
		t.Fatalf("expected echo for rule without field block, got %q", cfg.Rules[0].Action)
	}
	if cfg.Rules[1].Action != domain.ActionField || cfg.Rules[1].Field.TrimRight != "\r\n" {
		t.Fatalf("unexpected file rule %+v", cfg.Rules[1])
	}
	ratio := cfg.Rules[2]
	if !ratio.Field.DropLast || !ratio.Field.Localize || !ratio.BlankAfter || ratio.Field.Index != 3 {
		t.Fatalf("unexpected ratio rule %+v", ratio)
	}
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("testdata", "config_partial.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Input != "other.txt" {
		t.Fatalf("expected other.txt, got %q", cfg.Input)
	}
	if cfg.DecimalSeparator != domain.DefaultDecimalSeparator {
		t.Fatalf("expected default separator, got %q", cfg.DecimalSeparator)
	}
	if len(cfg.Rules) != len(domain.DefaultRules()) {
		t.Fatalf("expected default rules, got %d", len(cfg.Rules))
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join("testdata", "config_invalid.yaml")
	_, err := LoadConfig(path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "rules[1].field.sep") {
		t.Fatalf("expected field in error, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadConfigMalformedYAML(t *testing.T) {
	_, err := LoadConfig(filepath.Join("testdata", "config_malformed.yaml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestLoadConfigDirectoryIsIOError(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(dir)
	if err == nil {
		t.Fatalf("expected error")
	}
	if domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("existing directory must not be reported as not found: %v", err)
	}
	if !domain.IsKind(err, domain.KindIO) {
		t.Fatalf("expected KindIO, got %v", err)
	}
	if !strings.Contains(err.Error(), dir) {
		t.Fatalf("expected path in error, got %v", err)
	}
}
