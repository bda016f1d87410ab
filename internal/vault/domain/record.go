// Package domain defines the core domain models and types for the encrypted vault.
// A record pairs an AEAD-sealed text with the embedding of its plaintext; records are
// immutable once written and are found either by id or by similarity search.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Record represents one encrypted text and its embedding.
type Record struct {
	// ID is a UUIDv7; its time ordering doubles as insertion order for search tie-breaks.
	ID uuid.UUID
	// Ciphertext contains the encrypted text without the authentication tag.
	Ciphertext []byte
	// Nonce is the random 12-byte value used for this record's encryption.
	Nonce []byte
	// Tag is the 16-byte AEAD authentication tag.
	Tag []byte
	// Embedding is the vector computed from the plaintext before encryption.
	Embedding []float32
	// CreatedAt is the UTC timestamp when the record was written.
	CreatedAt time.Time
	// Plaintext holds the decrypted text in memory only; must be zeroed after use.
	Plaintext []byte `json:"-"`
}

// Candidate is a stored record ranked by a similarity search, before decryption.
// Candidate records carry no embedding.
type Candidate struct {
	Record   *Record
	Distance float64
}

// SearchResult is a decrypted search hit.
type SearchResult struct {
	ID         uuid.UUID
	Text       string
	Similarity float64
	CreatedAt  time.Time
}

// Similarity converts a cosine distance into the score returned to callers.
func Similarity(distance float64) float64 {
	return 1 - distance
}
