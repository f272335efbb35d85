package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/ghostedit/internal/application/port"
	"github.com/bnema/ghostedit/internal/domain/document"
	"github.com/bnema/ghostedit/internal/domain/entity"
	"github.com/bnema/ghostedit/internal/domain/schema"
	"github.com/bnema/ghostedit/internal/logging"
)

const defaultCheckConcurrency = 4

// CheckConfigUseCase parses config files read-only and reports their warnings.
type CheckConfigUseCase struct {
	schema *schema.Schema
	store  port.ConfigFileStore
}

// NewCheckConfigUseCase creates a new CheckConfigUseCase.
func NewCheckConfigUseCase(s *schema.Schema, store port.ConfigFileStore) *CheckConfigUseCase {
	return &CheckConfigUseCase{schema: s, store: store}
}

// CheckConfigInput lists the files to check.
type CheckConfigInput struct {
	Paths       []string
	Concurrency int
}

// FileReport is the result for one file.
type FileReport struct {
	Path     string           `json:"path" yaml:"path"`
	Keys     int              `json:"keys" yaml:"keys"`
	Warnings []entity.Warning `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	// Flagged lists keys whose stored values failed validation
	Flagged []string `json:"flagged,omitempty" yaml:"flagged,omitempty"`
	// Error is set when the file could not be read
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Clean reports whether the file was read and produced no warnings.
func (r FileReport) Clean() bool {
	return r.Error == "" && len(r.Warnings) == 0
}

// CheckConfigOutput holds one report per checked file, in input order.
type CheckConfigOutput struct {
	Reports []FileReport
}

// Clean reports whether every file is clean.
func (o *CheckConfigOutput) Clean() bool {
	for _, r := range o.Reports {
		if !r.Clean() {
			return false
		}
	}
	return true
}

// Execute checks every path concurrently. Unreadable files are reported, not
// returned as errors; only context cancellation fails the whole run.
func (uc *CheckConfigUseCase) Execute(ctx context.Context, in CheckConfigInput) (*CheckConfigOutput, error) {
	start := time.Now()
	reports, err := uc.checkAll(ctx, in.Paths, in.Concurrency)
	if err != nil {
		return nil, err
	}

	log := logging.FromContext(ctx)
	logging.Since(log, "check", start)
	log.Debug().Int("files", len(reports)).Msg("config files checked")
	return &CheckConfigOutput{Reports: reports}, nil
}

func (uc *CheckConfigUseCase) checkAll(ctx context.Context, paths []string, limit int) ([]FileReport, error) {
	if limit <= 0 {
		limit = defaultCheckConcurrency
	}

	reports := make([]FileReport, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fileCtx := logging.With(gctx, map[string]any{"path": path, "index": i})
			reports[i] = uc.checkOne(fileCtx, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("check interrupted: %w", err)
	}
	return reports, nil
}

func (uc *CheckConfigUseCase) checkOne(ctx context.Context, path string) FileReport {
	log := logging.FromContext(ctx)
	report := FileReport{Path: path}

	data, err := uc.store.Read(ctx, path)
	if err != nil {
		log.Debug().Err(err).Msg("config file unreadable")
		report.Error = err.Error()
		return report
	}

	doc := document.Parse(string(data), uc.schema)
	report.Keys = doc.Values.Len()
	report.Warnings = doc.Warnings
	report.Flagged = doc.Values.Flagged()
	return report
}
