package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PGN2EPD_CONFIG",
		"PGN2EPD_DIR",
		"PGN2EPD_INPUT_SUFFIX",
		"PGN2EPD_OUTPUT_SUFFIX",
		"PGN2EPD_INCLUDE_STARTING_POSITION",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "." || cfg.InputSuffix != ".pgn" || cfg.OutputSuffix != ".epd" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.IncludeStartingPosition {
		t.Fatal("starting position should be included by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PGN2EPD_DIR", "/tmp/fixtures")
	t.Setenv("PGN2EPD_OUTPUT_SUFFIX", ".fen")
	t.Setenv("PGN2EPD_INCLUDE_STARTING_POSITION", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "/tmp/fixtures" || cfg.OutputSuffix != ".fen" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.IncludeStartingPosition {
		t.Fatal("env override should disable the starting position")
	}
}

func TestLoadYAMLFileWithEnvPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "pgn2epd.yaml")
	body := "dir: /data/pgn\ninput_suffix: .txt\ninclude_starting_position: false\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PGN2EPD_CONFIG", path)
	t.Setenv("PGN2EPD_INPUT_SUFFIX", ".games") // env wins over the file

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != "/data/pgn" {
		t.Fatalf("yaml dir not applied: %+v", cfg)
	}
	if cfg.InputSuffix != ".games" {
		t.Fatalf("env should override the file: %+v", cfg)
	}
	if cfg.IncludeStartingPosition {
		t.Fatal("yaml should disable the starting position")
	}
}

func TestLoadRejectsBadSuffixes(t *testing.T) {
	clearEnv(t)
	t.Setenv("PGN2EPD_INPUT_SUFFIX", "pgn")
	if _, err := Load(); err == nil {
		t.Fatal("suffix without a leading dot should be rejected")
	}

	clearEnv(t)
	t.Setenv("PGN2EPD_OUTPUT_SUFFIX", ".pgn")
	if _, err := Load(); err == nil {
		t.Fatal("identical input and output suffixes should be rejected")
	}
}
