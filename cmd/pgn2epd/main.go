package main

import (
	"flag"
	"log"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appcfg "github.com/park285/pgn2epd/internal/config"
	"github.com/park285/pgn2epd/internal/discover"
	"github.com/park285/pgn2epd/internal/extract"
	"github.com/park285/pgn2epd/internal/obslog"
)

func main() {
	noStart := flag.Bool("no-starting-position", false,
		"skip each game's starting position (only emit positions after moves)")
	flag.Parse()

	cfg, err := appcfg.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}
	if err := obslog.InitFromEnv(); err != nil {
		log.Fatalf("logger init error: %v", err)
	}
	logger := obslog.L().With(zap.String("run", shortID(uuid.NewString())))
	defer func() { _ = logger.Sync() }()

	includeStart := cfg.IncludeStartingPosition
	if *noStart {
		includeStart = false
	}

	jobs, err := discover.Jobs(cfg.Dir, cfg.InputSuffix, cfg.OutputSuffix)
	if err != nil {
		logger.Fatal("discovery failed", zap.Error(err))
	}
	if len(jobs) == 0 {
		logger.Error("no input files found",
			zap.String("dir", cfg.Dir),
			zap.String("suffix", cfg.InputSuffix))
		os.Exit(1)
	}

	names := make([]string, len(jobs))
	for i, j := range jobs {
		names[i] = j.Input
	}
	logger.Info("found input files", zap.Int("count", len(jobs)), zap.Strings("files", names))

	var totalGames, totalPositions int
	for _, job := range jobs {
		logger.Info("processing", zap.String("input", job.Input), zap.String("output", job.Output))
		res, err := extract.ConvertFile(job, includeStart)
		if err != nil {
			// First failure aborts the whole run; remaining jobs do not run.
			logger.Fatal("job failed", zap.String("input", job.Input), zap.Error(err))
		}
		logger.Info("job done",
			zap.String("output", job.Output),
			zap.Int("games", res.Games),
			zap.Int("positions", res.Positions))
		totalGames += res.Games
		totalPositions += res.Positions
	}

	logger.Info("run complete",
		zap.Int("jobs", len(jobs)),
		zap.Int("games", totalGames),
		zap.Int("positions", totalPositions))
}

func shortID(s string) string {
	if len(s) <= 8 {
		return s
	}
	return s[:8]
}
