// Package domain defines core domain models and errors for the vault.
package domain

import (
	"github.com/abderrahimghazali/vault-api/internal/errors"
)

// Vault-specific error definitions.
var (
	// ErrRecordNotFound indicates no record exists with the given id.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

	// ErrCorruptedRecord indicates a stored record failed authenticated decryption.
	ErrCorruptedRecord = errors.Wrap(errors.ErrCorrupted, "record corrupted")

	// ErrDimensionMismatch indicates an embedding does not have the configured dimensionality.
	ErrDimensionMismatch = errors.Wrap(errors.ErrInvalidInput, "embedding dimension mismatch")

	// ErrInvalidLimit indicates a search limit outside 1..MaxSearchLimit.
	ErrInvalidLimit = errors.Wrap(errors.ErrInvalidInput, "search limit out of range")

	// ErrEmptyBatch indicates a batch write with no texts.
	ErrEmptyBatch = errors.Wrap(errors.ErrInvalidInput, "batch is empty")
)
