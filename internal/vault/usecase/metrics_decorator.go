package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abderrahimghazali/vault-api/internal/metrics"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
)

// vaultUseCaseWithMetrics decorates VaultUseCase with metrics instrumentation.
type vaultUseCaseWithMetrics struct {
	next    VaultUseCase
	metrics metrics.VaultMetrics
}

// NewVaultUseCaseWithMetrics wraps a VaultUseCase with metrics recording.
func NewVaultUseCaseWithMetrics(useCase VaultUseCase, m metrics.VaultMetrics) VaultUseCase {
	return &vaultUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (v *vaultUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	v.metrics.RecordOperation(ctx, "vault", operation, status)
	v.metrics.RecordDuration(ctx, "vault", operation, time.Since(start), status)
}

// Create records metrics for record creation.
func (v *vaultUseCaseWithMetrics) Create(ctx context.Context, text string) (*vaultDomain.Record, error) {
	start := time.Now()
	record, err := v.next.Create(ctx, text)
	v.record(ctx, "record_create", start, err)
	return record, err
}

// CreateMany records metrics for batch record creation.
func (v *vaultUseCaseWithMetrics) CreateMany(ctx context.Context, texts []string) ([]*vaultDomain.Record, error) {
	start := time.Now()
	records, err := v.next.CreateMany(ctx, texts)
	v.record(ctx, "record_create_many", start, err)
	return records, err
}

// Get records metrics for record retrieval.
func (v *vaultUseCaseWithMetrics) Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	start := time.Now()
	record, err := v.next.Get(ctx, id)
	v.record(ctx, "record_get", start, err)
	return record, err
}

// Search records metrics for similarity search, including the size of a successful result set.
func (v *vaultUseCaseWithMetrics) Search(
	ctx context.Context,
	text string,
	limit int,
) ([]*vaultDomain.SearchResult, error) {
	start := time.Now()
	results, err := v.next.Search(ctx, text, limit)
	v.record(ctx, "record_search", start, err)
	if err == nil {
		v.metrics.RecordSearchResults(ctx, len(results))
	}
	return results, err
}
