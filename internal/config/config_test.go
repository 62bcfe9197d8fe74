package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"numem/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.InitialCapacity != 4 || cfg.DumpFormat != "text" || cfg.Prompt != ">>> " || !cfg.ColorEnabled() {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	src := `
initial_capacity: 16
dump_format: yaml
color: false
`
	cfg, err := config.Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.InitialCapacity != 16 {
		t.Errorf("expected capacity 16, got %d", cfg.InitialCapacity)
	}
	if cfg.DumpFormat != "yaml" {
		t.Errorf("expected yaml, got %s", cfg.DumpFormat)
	}
	if cfg.ColorEnabled() {
		t.Errorf("expected color disabled")
	}
	if cfg.Prompt != ">>> " {
		t.Errorf("expected default prompt to survive, got %q", cfg.Prompt)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := config.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InitialCapacity != 4 {
		t.Errorf("expected default capacity, got %d", cfg.InitialCapacity)
	}
}

func TestValidation(t *testing.T) {
	_, err := config.Parse(strings.NewReader("initial_capacity: 0\ndump_format: xml\n"))

	var verr *config.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Issues) != 2 {
		t.Errorf("expected 2 issues, got %v", verr.Issues)
	}
}

func TestUnknownField(t *testing.T) {
	if _, err := config.Parse(strings.NewReader("capacity: 8\n")); err == nil {
		t.Errorf("expected error for unknown field")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numem.yml")
	if err := os.WriteFile(path, []byte("initial_capacity: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := config.Load(path)

	var verr *config.ValidationError
	if !errors.As(err, &verr) || verr.Path != path {
		t.Fatalf("expected ValidationError for %s, got %v", path, err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected path in message, got %q", err.Error())
	}

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
