package main

import (
	"log"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"icd11-hierarchy/application/services"
	"icd11-hierarchy/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Every run gets its own id so log lines of concurrent or repeated
	// runs can be told apart.
	logger = logger.With(zap.String("runID", uuid.NewString()))

	pipeline := services.NewPipeline(services.PipelinePaths{
		Input:     cfg.Pipeline.InputPath,
		Formatted: cfg.Pipeline.FormattedPath,
		Hierarchy: cfg.Pipeline.HierarchyPath,
	}, logger)

	report, err := pipeline.Run()
	if err != nil {
		logger.Fatal("Pipeline failed", zap.Error(err))
	}

	logger.Info("Pipeline finished",
		zap.Int("recordsLoaded", report.RecordsLoaded),
		zap.Int("recordsNormalized", report.RecordsNormalized),
		zap.Int("hierarchyNodes", report.HierarchyNodes),
	)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
