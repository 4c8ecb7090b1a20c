package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ekaya-inc/genre-ratings/pkg/charts"
	"github.com/ekaya-inc/genre-ratings/pkg/config"
	"github.com/ekaya-inc/genre-ratings/pkg/logging"
	"github.com/ekaya-inc/genre-ratings/pkg/report"
	"github.com/ekaya-inc/genre-ratings/pkg/services"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Configuration loaded",
		zap.String("version", Version),
		zap.String("env", cfg.Env),
		zap.String("movies", cfg.Input.MoviesPath),
		zap.String("ratings", cfg.Input.RatingsPath),
		zap.String("chart_dir", cfg.Charts.Dir))

	renderer := charts.NewRenderer(cfg.Charts, logger)
	svc := services.NewAnalysisService(cfg, renderer, logger)

	result, err := svc.Run(context.Background())
	if err != nil {
		logger.Error("Analysis failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	if err := report.Write(os.Stdout, report.Build(result)); err != nil {
		logger.Error("Failed to write report", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
