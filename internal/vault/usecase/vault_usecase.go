package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
	cryptoService "github.com/abderrahimghazali/vault-api/internal/crypto/service"
	"github.com/abderrahimghazali/vault-api/internal/database"
	embeddingService "github.com/abderrahimghazali/vault-api/internal/embedding/service"
	apperrors "github.com/abderrahimghazali/vault-api/internal/errors"
	"github.com/abderrahimghazali/vault-api/internal/metrics"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
)

// vaultUseCase implements the VaultUseCase interface.
type vaultUseCase struct {
	txManager  database.TxManager
	recordRepo RecordRepository
	cipher     cryptoService.Cipher
	encoder    embeddingService.Encoder
	dimensions int
	policy     vaultDomain.EmbeddingFailurePolicy
	metrics    metrics.SearchMetrics
	logger     *slog.Logger
}

// Create embeds, encrypts and stores a single text.
func (v *vaultUseCase) Create(ctx context.Context, text string) (*vaultDomain.Record, error) {
	embedding, err := v.encoder.Embed(ctx, text)
	if err != nil {
		return nil, embeddingFailure(err)
	}
	if err := v.checkDimensions(embedding); err != nil {
		return nil, err
	}

	record, err := v.seal(text, embedding)
	if err != nil {
		return nil, err
	}

	if err := v.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// CreateMany embeds every text up front, then writes all records inside one transaction.
func (v *vaultUseCase) CreateMany(ctx context.Context, texts []string) ([]*vaultDomain.Record, error) {
	if len(texts) == 0 {
		return nil, vaultDomain.ErrEmptyBatch
	}

	embeddings, err := v.encoder.EmbedMany(ctx, texts)
	if err != nil {
		return nil, embeddingFailure(err)
	}
	if len(embeddings) != len(texts) {
		return nil, fmt.Errorf(
			"%w: expected %d embeddings, got %d",
			apperrors.ErrEmbeddingFailed,
			len(texts),
			len(embeddings),
		)
	}

	records := make([]*vaultDomain.Record, 0, len(texts))
	for i, text := range texts {
		if err := v.checkDimensions(embeddings[i]); err != nil {
			return nil, err
		}
		record, err := v.seal(text, embeddings[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	err = v.txManager.WithTx(ctx, func(txCtx context.Context) error {
		for _, record := range records {
			if err := v.recordRepo.Create(txCtx, record); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Get retrieves a record by id and decrypts it.
func (v *vaultUseCase) Get(ctx context.Context, id uuid.UUID) (*vaultDomain.Record, error) {
	record, err := v.recordRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	plaintext, err := v.cipher.Decrypt(record.Ciphertext, record.Nonce, record.Tag)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", vaultDomain.ErrCorruptedRecord, err)
	}

	record.Plaintext = plaintext

	return record, nil
}

// Search ranks stored records against the query text and decrypts only the ranked candidates.
// A candidate that fails authentication is logged and skipped.
func (v *vaultUseCase) Search(ctx context.Context, text string, limit int) ([]*vaultDomain.SearchResult, error) {
	if limit < 1 || limit > vaultDomain.MaxSearchLimit {
		return nil, vaultDomain.ErrInvalidLimit
	}

	query, err := v.encoder.Embed(ctx, text)
	if err == nil {
		err = v.checkDimensions(query)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if v.policy == vaultDomain.EmbeddingFailureError {
			return nil, embeddingFailure(err)
		}
		v.logger.Warn("search query embedding failed, returning no results", slog.Any("error", err))
		v.metrics.RecordSearchDegraded(ctx, metrics.DegradeReasonEmbeddingFailed)
		return []*vaultDomain.SearchResult{}, nil
	}

	candidates, err := v.recordRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]*vaultDomain.SearchResult, 0, len(candidates))
	for _, candidate := range candidates {
		record := candidate.Record
		plaintext, err := v.cipher.Decrypt(record.Ciphertext, record.Nonce, record.Tag)
		if err != nil {
			v.logger.Error(
				"skipping search candidate that failed decryption",
				slog.String("record_id", record.ID.String()),
				slog.Any("error", err),
			)
			v.metrics.RecordSkippedCandidate(ctx, metrics.SkipReasonDecryptFailed)
			continue
		}

		results = append(results, &vaultDomain.SearchResult{
			ID:         record.ID,
			Text:       string(plaintext),
			Similarity: vaultDomain.Similarity(candidate.Distance),
			CreatedAt:  record.CreatedAt,
		})
		cryptoDomain.Zero(plaintext)
	}

	return results, nil
}

// seal encrypts text into a new record carrying the given embedding.
func (v *vaultUseCase) seal(text string, embedding []float32) (*vaultDomain.Record, error) {
	plaintext := []byte(text)
	defer cryptoDomain.Zero(plaintext)

	ciphertext, nonce, tag, err := v.cipher.Encrypt(plaintext)
	if err != nil {
		return nil, err
	}

	return &vaultDomain.Record{
		ID:         uuid.Must(uuid.NewV7()),
		Ciphertext: ciphertext,
		Nonce:      nonce,
		Tag:        tag,
		Embedding:  embedding,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

func (v *vaultUseCase) checkDimensions(embedding []float32) error {
	if len(embedding) != v.dimensions {
		return fmt.Errorf(
			"%w: %w: expected %d, got %d",
			apperrors.ErrEmbeddingFailed,
			vaultDomain.ErrDimensionMismatch,
			v.dimensions,
			len(embedding),
		)
	}
	return nil
}

// embeddingFailure makes sure encoder errors carry ErrEmbeddingFailed.
func embeddingFailure(err error) error {
	if apperrors.Is(err, apperrors.ErrEmbeddingFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", apperrors.ErrEmbeddingFailed, err)
}

// NewVaultUseCase creates a new VaultUseCase. An unknown policy falls back to returning
// an empty result set when a search query cannot be embedded. searchMetrics may be nil.
func NewVaultUseCase(
	txManager database.TxManager,
	recordRepo RecordRepository,
	cipher cryptoService.Cipher,
	encoder embeddingService.Encoder,
	dimensions int,
	policy vaultDomain.EmbeddingFailurePolicy,
	searchMetrics metrics.SearchMetrics,
	logger *slog.Logger,
) VaultUseCase {
	if policy != vaultDomain.EmbeddingFailureError {
		policy = vaultDomain.EmbeddingFailureEmpty
	}
	if searchMetrics == nil {
		searchMetrics = metrics.NewNoOpBusinessMetrics()
	}
	return &vaultUseCase{
		txManager:  txManager,
		recordRepo: recordRepo,
		cipher:     cipher,
		encoder:    encoder,
		dimensions: dimensions,
		policy:     policy,
		metrics:    searchMetrics,
		logger:     logger,
	}
}
