// Package repository implements data persistence for vault records.
//
// PostgreSQL ranks with pgvector inside the database. MySQL and SQLite store embeddings
// as float32 blobs and rank through an in-process IVF index warmed from the table.
package repository

import (
	"fmt"

	apperrors "github.com/abderrahimghazali/vault-api/internal/errors"
)

// storeFailure tags err as ErrStoreFailure while keeping it in the chain.
func storeFailure(err error, message string) error {
	return fmt.Errorf("%w: %s: %w", apperrors.ErrStoreFailure, message, err)
}
