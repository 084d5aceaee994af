package batch

import (
	"context"
	"customer-catalog/internal/domain/customer"
	"customer-catalog/internal/infrastructure/monitoring"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

var ErrCatalogChanged = errors.New("catalog fingerprint changed since startup")

// CatalogIntegrityJob re-reads the catalog and compares it with the
// fingerprint taken when the job was created.
type CatalogIntegrityJob struct {
	store    customer.Store
	baseline uint64
	count    int
	logger   *slog.Logger
}

func NewCatalogIntegrityJob(ctx context.Context, store customer.Store, logger *slog.Logger) *CatalogIntegrityJob {
	if store == nil || logger == nil {
		panic("CatalogIntegrityJob dependencies cannot be nil")
	}
	snapshot := store.FindAll(ctx)
	monitoring.RecordCatalogSize(len(snapshot))
	monitoring.RecordIntegrity(true)
	return &CatalogIntegrityJob{
		store:    store,
		baseline: customer.Fingerprint(snapshot),
		count:    len(snapshot),
		logger:   logger.With("job", "CatalogIntegrity"),
	}
}

func (j *CatalogIntegrityJob) Baseline() uint64 {
	return j.baseline
}

func (j *CatalogIntegrityJob) Run(ctx context.Context) error {
	startTime := time.Now()
	j.logger.DebugContext(ctx, "Starting catalog integrity check.")

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("integrity check not started: %w", err)
	}

	snapshot := j.store.FindAll(ctx)
	monitoring.RecordCatalogSize(len(snapshot))

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("integrity check interrupted: %w", err)
	}

	current := customer.Fingerprint(snapshot)
	if current != j.baseline || len(snapshot) != j.count {
		monitoring.RecordIntegrity(false)
		j.logger.ErrorContext(ctx, "Catalog integrity check failed.",
			slog.Int("expected_count", j.count),
			slog.Int("count", len(snapshot)),
			slog.String("expected_fingerprint", fmt.Sprintf("%016x", j.baseline)),
			slog.String("fingerprint", fmt.Sprintf("%016x", current)),
		)
		return ErrCatalogChanged
	}

	monitoring.RecordIntegrity(true)
	j.logger.InfoContext(ctx, "Catalog integrity check passed.",
		slog.Int("count", len(snapshot)),
		slog.Duration("duration", time.Since(startTime)),
	)
	return nil
}
