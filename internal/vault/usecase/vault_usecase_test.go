package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
	cryptoServiceMocks "github.com/abderrahimghazali/vault-api/internal/crypto/service/mocks"
	databaseMocks "github.com/abderrahimghazali/vault-api/internal/database/mocks"
	embeddingServiceMocks "github.com/abderrahimghazali/vault-api/internal/embedding/service/mocks"
	apperrors "github.com/abderrahimghazali/vault-api/internal/errors"
	"github.com/abderrahimghazali/vault-api/internal/metrics"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
	vaultUsecaseMocks "github.com/abderrahimghazali/vault-api/internal/vault/usecase/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testDeps struct {
	txManager *databaseMocks.MockTxManager
	repo      *vaultUsecaseMocks.MockRecordRepository
	cipher    *cryptoServiceMocks.MockCipher
	encoder   *embeddingServiceMocks.MockEncoder
}

func newTestDeps(t *testing.T) testDeps {
	return testDeps{
		txManager: databaseMocks.NewMockTxManager(t),
		repo:      vaultUsecaseMocks.NewMockRecordRepository(t),
		cipher:    cryptoServiceMocks.NewMockCipher(t),
		encoder:   embeddingServiceMocks.NewMockEncoder(t),
	}
}

func (d testDeps) useCase(dimensions int, policy vaultDomain.EmbeddingFailurePolicy) VaultUseCase {
	return NewVaultUseCase(d.txManager, d.repo, d.cipher, d.encoder, dimensions, policy, nil, discardLogger())
}

func TestVaultUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		deps := newTestDeps(t)
		embedding := []float32{0.1, 0.2, 0.3}
		ciphertext := []byte("ciphertext")
		nonce := make([]byte, cryptoDomain.NonceSize)
		tag := make([]byte, cryptoDomain.TagSize)

		deps.encoder.EXPECT().Embed(ctx, "hello vault").Return(embedding, nil).Once()
		deps.cipher.EXPECT().Encrypt([]byte("hello vault")).Return(ciphertext, nonce, tag, nil).Once()
		deps.repo.EXPECT().
			Create(ctx, mock.MatchedBy(func(r *vaultDomain.Record) bool {
				return r.ID.Version() == 7 &&
					string(r.Ciphertext) == "ciphertext" &&
					len(r.Embedding) == 3 &&
					r.Plaintext == nil
			})).
			Return(nil).
			Once()

		record, err := deps.useCase(3, vaultDomain.EmbeddingFailureEmpty).Create(ctx, "hello vault")

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, record.ID)
		assert.Equal(t, ciphertext, record.Ciphertext)
		assert.Equal(t, nonce, record.Nonce)
		assert.Equal(t, tag, record.Tag)
		assert.Equal(t, embedding, record.Embedding)
		assert.Equal(t, time.UTC, record.CreatedAt.Location())
		assert.WithinDuration(t, time.Now(), record.CreatedAt, time.Minute)
	})

	t.Run("EmbeddingFailure_NoStoreWrite", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().Embed(ctx, "hello").Return(nil, errors.New("provider down")).Once()

		record, err := deps.useCase(3, vaultDomain.EmbeddingFailureEmpty).Create(ctx, "hello")

		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrEmbeddingFailed)
		deps.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		deps.cipher.AssertNotCalled(t, "Encrypt", mock.Anything)
	})

	t.Run("DimensionMismatch_NoStoreWrite", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().Embed(ctx, "hello").Return([]float32{1, 0}, nil).Once()

		record, err := deps.useCase(3, vaultDomain.EmbeddingFailureEmpty).Create(ctx, "hello")

		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrEmbeddingFailed)
		assert.ErrorIs(t, err, vaultDomain.ErrDimensionMismatch)
		deps.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("EncryptionFailure", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().Embed(ctx, "hello").Return([]float32{1, 0}, nil).Once()
		deps.cipher.EXPECT().Encrypt([]byte("hello")).Return(nil, nil, nil, cryptoDomain.ErrRandomSource).Once()

		record, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Create(ctx, "hello")

		assert.Nil(t, record)
		assert.ErrorIs(t, err, cryptoDomain.ErrRandomSource)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		deps := newTestDeps(t)
		storeErr := apperrors.Wrap(apperrors.ErrStoreFailure, "insert failed")
		deps.encoder.EXPECT().Embed(ctx, "hello").Return([]float32{1, 0}, nil).Once()
		deps.cipher.EXPECT().Encrypt(mock.Anything).Return([]byte("c"), []byte("n"), []byte("t"), nil).Once()
		deps.repo.EXPECT().Create(ctx, mock.Anything).Return(storeErr).Once()

		record, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Create(ctx, "hello")

		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
	})
}

func TestVaultUseCase_CreateMany(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_InsertsInOrderInsideTransaction", func(t *testing.T) {
		deps := newTestDeps(t)
		texts := []string{"first", "second"}
		embeddings := [][]float32{{1, 0}, {0, 1}}

		deps.encoder.EXPECT().EmbedMany(ctx, texts).Return(embeddings, nil).Once()
		deps.cipher.EXPECT().Encrypt([]byte("first")).Return([]byte("c1"), []byte("n1"), []byte("t1"), nil).Once()
		deps.cipher.EXPECT().Encrypt([]byte("second")).Return([]byte("c2"), []byte("n2"), []byte("t2"), nil).Once()
		deps.txManager.EXPECT().
			WithTx(ctx, mock.AnythingOfType("func(context.Context) error")).
			RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			}).
			Once()

		var inserted []string
		deps.repo.EXPECT().
			Create(ctx, mock.Anything).
			Run(func(_ context.Context, r *vaultDomain.Record) {
				inserted = append(inserted, string(r.Ciphertext))
			}).
			Return(nil).
			Times(2)

		records, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).CreateMany(ctx, texts)

		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, []string{"c1", "c2"}, inserted)
		assert.Equal(t, []float32{1, 0}, records[0].Embedding)
		assert.Equal(t, []float32{0, 1}, records[1].Embedding)
		assert.Less(t, records[0].ID.String(), records[1].ID.String())
	})

	t.Run("EmptyBatch", func(t *testing.T) {
		deps := newTestDeps(t)

		records, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).CreateMany(ctx, nil)

		assert.Nil(t, records)
		assert.ErrorIs(t, err, vaultDomain.ErrEmptyBatch)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("EmbeddingFailure_NoInserts", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().EmbedMany(ctx, []string{"a", "b"}).Return(nil, errors.New("timeout")).Once()

		records, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).CreateMany(ctx, []string{"a", "b"})

		assert.Nil(t, records)
		assert.ErrorIs(t, err, apperrors.ErrEmbeddingFailed)
		deps.txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
	})

	t.Run("ShortEmbeddingBatch", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().EmbedMany(ctx, []string{"a", "b"}).Return([][]float32{{1, 0}}, nil).Once()

		_, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).CreateMany(ctx, []string{"a", "b"})

		assert.ErrorIs(t, err, apperrors.ErrEmbeddingFailed)
	})

	t.Run("DimensionMismatchInBatch_NoInserts", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().EmbedMany(ctx, []string{"a", "b"}).Return([][]float32{{1, 0}, {1, 0, 0}}, nil).Once()
		deps.cipher.EXPECT().Encrypt([]byte("a")).Return([]byte("c"), []byte("n"), []byte("t"), nil).Once()

		_, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).CreateMany(ctx, []string{"a", "b"})

		assert.ErrorIs(t, err, vaultDomain.ErrDimensionMismatch)
		deps.txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
	})

	t.Run("TransactionFailure", func(t *testing.T) {
		deps := newTestDeps(t)
		storeErr := apperrors.Wrap(apperrors.ErrStoreFailure, "insert failed")
		deps.encoder.EXPECT().EmbedMany(ctx, []string{"a"}).Return([][]float32{{1, 0}}, nil).Once()
		deps.cipher.EXPECT().Encrypt([]byte("a")).Return([]byte("c"), []byte("n"), []byte("t"), nil).Once()
		deps.txManager.EXPECT().WithTx(ctx, mock.Anything).Return(storeErr).Once()

		records, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).CreateMany(ctx, []string{"a"})

		assert.Nil(t, records)
		assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
	})
}

func TestVaultUseCase_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV7())

	t.Run("Success", func(t *testing.T) {
		deps := newTestDeps(t)
		stored := &vaultDomain.Record{
			ID:         id,
			Ciphertext: []byte("c"),
			Nonce:      []byte("n"),
			Tag:        []byte("t"),
			CreatedAt:  time.Now().UTC(),
		}
		deps.repo.EXPECT().Get(ctx, id).Return(stored, nil).Once()
		deps.cipher.EXPECT().Decrypt([]byte("c"), []byte("n"), []byte("t")).Return([]byte("plain"), nil).Once()

		record, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Get(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, record.ID)
		assert.Equal(t, []byte("plain"), record.Plaintext)
	})

	t.Run("NotFound", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.repo.EXPECT().Get(ctx, id).Return(nil, vaultDomain.ErrRecordNotFound).Once()

		record, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Get(ctx, id)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("AuthenticationFailure_Corrupted", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.repo.EXPECT().Get(ctx, id).Return(&vaultDomain.Record{ID: id}, nil).Once()
		deps.cipher.EXPECT().
			Decrypt(mock.Anything, mock.Anything, mock.Anything).
			Return(nil, cryptoDomain.ErrAuthenticationFailed).
			Once()

		record, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Get(ctx, id)

		assert.Nil(t, record)
		assert.ErrorIs(t, err, vaultDomain.ErrCorruptedRecord)
		assert.ErrorIs(t, err, cryptoDomain.ErrAuthenticationFailed)
		assert.ErrorIs(t, err, apperrors.ErrCorrupted)
	})
}

func TestVaultUseCase_Search(t *testing.T) {
	ctx := context.Background()

	candidate := func(text string, distance float64) vaultDomain.Candidate {
		return vaultDomain.Candidate{
			Record: &vaultDomain.Record{
				ID:         uuid.Must(uuid.NewV7()),
				Ciphertext: []byte(text),
				Nonce:      []byte("n"),
				Tag:        []byte("t"),
				CreatedAt:  time.Now().UTC(),
			},
			Distance: distance,
		}
	}

	t.Run("Success_ConvertsDistanceToSimilarity", func(t *testing.T) {
		deps := newTestDeps(t)
		query := []float32{1, 0}
		candidates := []vaultDomain.Candidate{candidate("a", 0), candidate("c", 0.0061), candidate("b", 1)}

		deps.encoder.EXPECT().Embed(ctx, "query").Return(query, nil).Once()
		deps.repo.EXPECT().Search(ctx, query, 3).Return(candidates, nil).Once()
		deps.cipher.EXPECT().
			Decrypt(mock.Anything, []byte("n"), []byte("t")).
			RunAndReturn(func(ciphertext, _, _ []byte) ([]byte, error) {
				return append([]byte("plain-"), ciphertext...), nil
			}).
			Times(3)

		results, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Search(ctx, "query", 3)

		require.NoError(t, err)
		require.Len(t, results, 3)
		assert.Equal(t, "plain-a", results[0].Text)
		assert.Equal(t, "plain-c", results[1].Text)
		assert.Equal(t, "plain-b", results[2].Text)
		assert.InDelta(t, 1.0, results[0].Similarity, 1e-9)
		assert.InDelta(t, 0.9939, results[1].Similarity, 1e-9)
		assert.InDelta(t, 0.0, results[2].Similarity, 1e-9)
		assert.Equal(t, candidates[0].Record.ID, results[0].ID)
	})

	t.Run("PartialFailure_SkipsCorruptedCandidate", func(t *testing.T) {
		deps := newTestDeps(t)
		query := []float32{1, 0}
		candidates := []vaultDomain.Candidate{candidate("a", 0.1), candidate("bad", 0.2), candidate("c", 0.3)}

		deps.encoder.EXPECT().Embed(ctx, "query").Return(query, nil).Once()
		deps.repo.EXPECT().Search(ctx, query, 10).Return(candidates, nil).Once()
		deps.cipher.EXPECT().Decrypt([]byte("a"), mock.Anything, mock.Anything).Return([]byte("A"), nil).Once()
		deps.cipher.EXPECT().
			Decrypt([]byte("bad"), mock.Anything, mock.Anything).
			Return(nil, cryptoDomain.ErrAuthenticationFailed).
			Once()
		deps.cipher.EXPECT().Decrypt([]byte("c"), mock.Anything, mock.Anything).Return([]byte("C"), nil).Once()
		searchMetrics := &mockBusinessMetrics{}
		searchMetrics.On("RecordSkippedCandidate", ctx, metrics.SkipReasonDecryptFailed).Return().Once()

		uc := NewVaultUseCase(deps.txManager, deps.repo, deps.cipher, deps.encoder, 2,
			vaultDomain.EmbeddingFailureEmpty, searchMetrics, discardLogger())
		results, err := uc.Search(ctx, "query", 10)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "A", results[0].Text)
		assert.Equal(t, "C", results[1].Text)
		searchMetrics.AssertExpectations(t)
	})

	t.Run("EmbeddingFailure_EmptyPolicy", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().Embed(ctx, "query").Return(nil, errors.New("provider down")).Once()
		searchMetrics := &mockBusinessMetrics{}
		searchMetrics.On("RecordSearchDegraded", ctx, metrics.DegradeReasonEmbeddingFailed).Return().Once()

		uc := NewVaultUseCase(deps.txManager, deps.repo, deps.cipher, deps.encoder, 2,
			vaultDomain.EmbeddingFailureEmpty, searchMetrics, discardLogger())
		results, err := uc.Search(ctx, "query", 10)

		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
		deps.repo.AssertNotCalled(t, "Search", mock.Anything, mock.Anything, mock.Anything)
		searchMetrics.AssertExpectations(t)
	})

	t.Run("EmbeddingFailure_ErrorPolicy", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().Embed(ctx, "query").Return(nil, errors.New("provider down")).Once()

		results, err := deps.useCase(2, vaultDomain.EmbeddingFailureError).Search(ctx, "query", 10)

		assert.Nil(t, results)
		assert.ErrorIs(t, err, apperrors.ErrEmbeddingFailed)
	})

	t.Run("DimensionMismatch_ErrorPolicy", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.encoder.EXPECT().Embed(ctx, "query").Return([]float32{1, 0, 0}, nil).Once()

		_, err := deps.useCase(2, vaultDomain.EmbeddingFailureError).Search(ctx, "query", 10)

		assert.ErrorIs(t, err, vaultDomain.ErrDimensionMismatch)
	})

	t.Run("CancelledContext_SurfacesCancellation", func(t *testing.T) {
		deps := newTestDeps(t)
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		deps.encoder.EXPECT().Embed(cancelled, "query").Return(nil, cancelled.Err()).Once()

		_, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Search(cancelled, "query", 10)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("InvalidLimit", func(t *testing.T) {
		for _, limit := range []int{0, -1, vaultDomain.MaxSearchLimit + 1} {
			deps := newTestDeps(t)

			results, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Search(ctx, "query", limit)

			assert.Nil(t, results)
			assert.ErrorIs(t, err, vaultDomain.ErrInvalidLimit)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		}
	})

	t.Run("StoreFailure", func(t *testing.T) {
		deps := newTestDeps(t)
		storeErr := apperrors.Wrap(apperrors.ErrStoreFailure, "query failed")
		deps.encoder.EXPECT().Embed(ctx, "query").Return([]float32{1, 0}, nil).Once()
		deps.repo.EXPECT().Search(ctx, []float32{1, 0}, 10).Return(nil, storeErr).Once()

		_, err := deps.useCase(2, vaultDomain.EmbeddingFailureEmpty).Search(ctx, "query", 10)

		assert.ErrorIs(t, err, apperrors.ErrStoreFailure)
	})
}

func TestNewVaultUseCase_UnknownPolicyDefaultsToEmpty(t *testing.T) {
	deps := newTestDeps(t)

	uc := NewVaultUseCase(deps.txManager, deps.repo, deps.cipher, deps.encoder, 2, "bogus", nil, discardLogger())

	assert.Equal(t, vaultDomain.EmbeddingFailureEmpty, uc.(*vaultUseCase).policy)
}
