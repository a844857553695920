package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// AppConfig holds the converter settings. Defaults match the classic
// *.pgn → *.epd layout; everything can be adjusted through an optional
// YAML file (PGN2EPD_CONFIG) and PGN2EPD_* environment variables.
type AppConfig struct {
	Dir          string `yaml:"dir"`
	InputSuffix  string `yaml:"input_suffix"`
	OutputSuffix string `yaml:"output_suffix"`

	IncludeStartingPosition bool `yaml:"include_starting_position"`
}

func Load() (*AppConfig, error) {
	cfg := &AppConfig{
		Dir:                     ".",
		InputSuffix:             ".pgn",
		OutputSuffix:            ".epd",
		IncludeStartingPosition: true,
	}

	if path := strings.TrimSpace(os.Getenv("PGN2EPD_CONFIG")); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("PGN2EPD_DIR")); v != "" {
		cfg.Dir = v
	}
	if v := strings.TrimSpace(os.Getenv("PGN2EPD_INPUT_SUFFIX")); v != "" {
		cfg.InputSuffix = v
	}
	if v := strings.TrimSpace(os.Getenv("PGN2EPD_OUTPUT_SUFFIX")); v != "" {
		cfg.OutputSuffix = v
	}
	if v := strings.TrimSpace(os.Getenv("PGN2EPD_INCLUDE_STARTING_POSITION")); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.IncludeStartingPosition = b
		}
	}

	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if err := validSuffix(cfg.InputSuffix); err != nil {
		return nil, fmt.Errorf("input suffix: %w", err)
	}
	if err := validSuffix(cfg.OutputSuffix); err != nil {
		return nil, fmt.Errorf("output suffix: %w", err)
	}
	if cfg.InputSuffix == cfg.OutputSuffix {
		return nil, errors.New("input and output suffixes must differ")
	}

	return cfg, nil
}

func validSuffix(s string) error {
	if s == "" {
		return errors.New("must not be empty")
	}
	if !strings.HasPrefix(s, ".") {
		return fmt.Errorf("%q must start with a dot", s)
	}
	if len(s) < 2 {
		return fmt.Errorf("%q has no extension body", s)
	}
	return nil
}
