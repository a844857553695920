package obslog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Process-wide logger. Starts as a nop so library code can log before
// InitFromEnv runs (e.g. in tests).
var globalLogger *zap.Logger = zap.NewNop()

// L returns the global logger.
func L() *zap.Logger { return globalLogger }

// InitFromEnv builds the global zap logger from PGN2EPD_LOG_* variables.
// Console output is on by default; file output is opt-in since the tool
// is usually run interactively inside a fixture directory.
func InitFromEnv() error {
	level := parseLevel(getenvDefault("PGN2EPD_LOG_LEVEL", "info"))
	console := strings.EqualFold(getenvDefault("PGN2EPD_LOG_TO_CONSOLE", "true"), "true")
	toFile := strings.EqualFold(getenvDefault("PGN2EPD_LOG_TO_FILE", "false"), "true")
	format := strings.ToLower(strings.TrimSpace(getenvDefault("PGN2EPD_LOG_FORMAT", "console")))
	if format != "console" && format != "json" {
		format = "console"
	}

	var cores []zapcore.Core

	if console {
		cores = append(cores, zapcore.NewCore(newEncoder(format), zapcore.AddSync(os.Stderr), level))
	}

	if toFile {
		filePath := strings.TrimSpace(getenvDefault("PGN2EPD_LOG_FILE", filepath.Join("logs", "pgn2epd.log")))
		if err := ensureDir(filepath.Dir(filePath)); err != nil {
			return err
		}
		f, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(newEncoder(format), zapcore.AddSync(f), level))
	}

	if len(cores) == 0 {
		cores = append(cores, zapcore.NewCore(newEncoder("console"), zapcore.AddSync(os.Stderr), level))
	}

	globalLogger = zap.New(zapcore.NewTee(cores...), zap.AddStacktrace(zapcore.ErrorLevel))
	return nil
}

func newEncoder(format string) zapcore.Encoder {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		return zapcore.NewJSONEncoder(cfg)
	}
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func ensureDir(dir string) error {
	if strings.TrimSpace(dir) == "" || dir == "." {
		return nil
	}
	if _, err := os.Stat(dir); err == nil {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func getenvDefault(k, def string) string {
	v := os.Getenv(k)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
