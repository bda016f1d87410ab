// Package service provides the cipher engine that seals and opens vault records.
// Implements AEAD ciphers (AES-256-GCM, ChaCha20-Poly1305) with the tag kept apart from the ciphertext.
package service

import (
	"context"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
)

// AEAD defines authenticated encryption that returns the nonce and tag separately.
type AEAD interface {
	// Seal encrypts plaintext under a fresh random nonce.
	Seal(plaintext []byte) (ciphertext, nonce, tag []byte, err error)

	// Open verifies tag and decrypts ciphertext. No plaintext is returned on failure.
	Open(ciphertext, nonce, tag []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// Cipher is the record-level encryption contract consumed by the retrieval pipeline.
type Cipher interface {
	Encrypt(plaintext []byte) (ciphertext, nonce, tag []byte, err error)
	Decrypt(ciphertext, nonce, tag []byte) ([]byte, error)
}

// KMSService opens KMS keepers used to unwrap the encryption key at startup.
type KMSService interface {
	// OpenKeeper opens a secrets.Keeper for the configured KMS provider.
	// Returns an error if the KMS provider URI is invalid or connection fails.
	OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error)
}
