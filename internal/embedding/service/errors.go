package service

import (
	apperrors "github.com/abderrahimghazali/vault-api/internal/errors"
)

var (
	// ErrProviderUnavailable indicates the embedding provider could not be reached or kept failing.
	ErrProviderUnavailable = apperrors.Wrap(apperrors.ErrEmbeddingFailed, "provider unavailable")

	// ErrProviderRejected indicates the provider refused the request with a non-retryable status.
	ErrProviderRejected = apperrors.Wrap(apperrors.ErrEmbeddingFailed, "provider rejected request")

	// ErrMalformedResponse indicates the provider answered with missing, duplicate or
	// wrongly sized vectors.
	ErrMalformedResponse = apperrors.Wrap(apperrors.ErrEmbeddingFailed, "malformed provider response")
)
