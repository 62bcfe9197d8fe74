package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"numem/pkg/memory"
)

// Config holds the shell settings read from a YAML file.
type Config struct {
	InitialCapacity int    `yaml:"initial_capacity"`
	Prompt          string `yaml:"prompt"`
	HistoryFile     string `yaml:"history_file"`
	DumpFormat      string `yaml:"dump_format"`
	Color           *bool  `yaml:"color"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	color := true
	return &Config{
		InitialCapacity: memory.DefaultCapacity,
		Prompt:          ">>> ",
		HistoryFile:     ".numem_history",
		DumpFormat:      "text",
		Color:           &color,
	}
}

// ValidationError aggregates config validation failures.
type ValidationError struct {
	Path   string
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "config: invalid configuration"
	}

	var b strings.Builder
	b.WriteString("config validation failed")
	if e.Path != "" {
		b.WriteString(" (")
		b.WriteString(e.Path)
		b.WriteString(")")
	}
	b.WriteString(":")
	for _, issue := range e.Issues {
		b.WriteString("\n  - ")
		b.WriteString(issue)
	}
	return b.String()
}

// Load reads path, or returns Default when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Path = path
		}
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of the defaults and validates the result.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	var issues []string

	if c.InitialCapacity < 1 {
		issues = append(issues, fmt.Sprintf("initial_capacity must be at least 1, got %d", c.InitialCapacity))
	}

	switch c.DumpFormat {
	case "text", "yaml":
	default:
		issues = append(issues, fmt.Sprintf("dump_format must be text or yaml, got %q", c.DumpFormat))
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}

	return nil
}

// ColorEnabled reports the color setting, defaulting to true.
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}
