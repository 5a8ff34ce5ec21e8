package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"icd11-hierarchy/application/services"
	"icd11-hierarchy/domain/core/entities"
	"icd11-hierarchy/domain/core/valueobjects"
	"icd11-hierarchy/infrastructure/config"
	"icd11-hierarchy/infrastructure/persistence/jsonstore"
	"icd11-hierarchy/interfaces/http/rest"
	"icd11-hierarchy/pkg/observability"
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

	var metrics *observability.Collector
	if cfg.Server.EnableMetrics {
		metrics = observability.NewCollector("icd11")
	}

	queryService := services.NewHierarchyQueryService(logger)
	if err := loadHierarchy(cfg.Pipeline.HierarchyPath, queryService, metrics); err != nil {
		logger.Fatal("Failed to load hierarchy", zap.Error(err))
	}

	// Rebuild the graph when the pipeline rewrites the hierarchy file.
	if cfg.Server.WatchHierarchy {
		watcher, err := jsonstore.NewDocumentWatcher(cfg.Pipeline.HierarchyPath, logger)
		if err != nil {
			logger.Fatal("Failed to create hierarchy watcher", zap.Error(err))
		}
		watcher.OnChange(func(path string) {
			if err := loadHierarchy(path, queryService, metrics); err != nil {
				logger.Error("Hierarchy reload failed, keeping current graph", zap.Error(err))
				return
			}
			if metrics != nil {
				metrics.HierarchyReloads.Inc()
			}
		})
		watcher.Start()
		defer watcher.Stop()
	}

	router := rest.NewRouter(queryService, metrics, cfg.Server, logger)
	handler := router.Setup()

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting server",
			zap.String("address", cfg.Server.Address),
			zap.String("environment", cfg.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}
}

func loadHierarchy(path string, queryService *services.HierarchyQueryService, metrics *observability.Collector) error {
	hierarchy, err := jsonstore.Load[valueobjects.ShortID, entities.HierarchyNode](path)
	if err != nil {
		return err
	}

	queryService.Build(hierarchy)

	if metrics != nil {
		if stats, err := queryService.Stats(); err == nil {
			metrics.SetGraphSize(stats.Nodes, stats.Edges)
		}
	}
	return nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
