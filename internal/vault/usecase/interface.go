// Package usecase defines the interfaces and implementations for the vault retrieval pipeline.
// Use cases orchestrate the encoder, the cipher engine and the record store: writes are
// embedded then sealed then persisted, reads are fetched then opened, and searches are
// ranked by the store before only the ranked candidates are decrypted.
package usecase

import (
	"context"

	"github.com/google/uuid"

	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
)

// RecordRepository defines the interface for Record persistence and similarity ranking.
type RecordRepository interface {
	Create(ctx context.Context, record *vaultDomain.Record) error
	Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error)
	// Search returns at most limit candidates ordered by ascending cosine distance, ties
	// broken by id. Candidate records carry no embedding.
	Search(ctx context.Context, query []float32, limit int) ([]vaultDomain.Candidate, error)
}

// VaultUseCase defines the interface for the vault business logic.
type VaultUseCase interface {
	Create(ctx context.Context, text string) (*vaultDomain.Record, error)
	// CreateMany embeds every text before writing and stores all records in one transaction.
	CreateMany(ctx context.Context, texts []string) ([]*vaultDomain.Record, error)
	// Get retrieves and decrypts a record by id.
	//
	// Security Note: The returned Record contains plaintext data in the Plaintext field.
	// Callers MUST zero this data after use by calling cryptoDomain.Zero(record.Plaintext).
	Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error)
	Search(ctx context.Context, text string, limit int) ([]*vaultDomain.SearchResult, error)
}
