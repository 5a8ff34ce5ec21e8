package services

import (
	"go.uber.org/zap"

	"icd11-hierarchy/domain/core/entities"
	"icd11-hierarchy/infrastructure/persistence/jsonstore"
	pkgerrors "icd11-hierarchy/pkg/errors"
)

// PipelinePaths names the files the pipeline reads and writes.
type PipelinePaths struct {
	Input     string
	Formatted string
	Hierarchy string
}

// PipelineReport summarizes one pipeline run.
type PipelineReport struct {
	RecordsLoaded     int
	RecordsNormalized int
	HierarchyNodes    int
}

// Pipeline sequences the batch run: load the raw dump, normalize it,
// persist the normalized collection, derive the hierarchy, persist it.
// Data flows one way through the stages; each produces a new structure.
type Pipeline struct {
	normalizer *RecordNormalizer
	builder    *HierarchyBuilder
	paths      PipelinePaths
	logger     *zap.Logger
}

// NewPipeline creates a pipeline over the given file paths.
func NewPipeline(paths PipelinePaths, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		normalizer: NewRecordNormalizer(logger),
		builder:    NewHierarchyBuilder(logger),
		paths:      paths,
		logger:     logger,
	}
}

// Run executes the full pipeline and reports what it produced.
func (p *Pipeline) Run() (*PipelineReport, error) {
	raw, err := jsonstore.Load[string, entities.RawEntry](p.paths.Input)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "load raw records")
	}

	records := p.normalizer.Normalize(raw)
	if err := jsonstore.Save(p.paths.Formatted, records); err != nil {
		return nil, pkgerrors.Wrap(err, "save normalized records")
	}
	p.logger.Info("Saved normalized records", zap.String("path", p.paths.Formatted))

	hierarchy := p.builder.Build(records)
	if err := jsonstore.Save(p.paths.Hierarchy, hierarchy); err != nil {
		return nil, pkgerrors.Wrap(err, "save hierarchy")
	}
	p.logger.Info("Saved hierarchy", zap.String("path", p.paths.Hierarchy))

	return &PipelineReport{
		RecordsLoaded:     len(raw),
		RecordsNormalized: len(records),
		HierarchyNodes:    len(hierarchy),
	}, nil
}
