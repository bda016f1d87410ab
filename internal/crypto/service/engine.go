package service

import (
	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
)

// CipherEngine seals and opens record payloads under the single process-wide key.
//
// It is immutable after construction and safe for concurrent use.
type CipherEngine struct {
	aead      AEAD
	algorithm cryptoDomain.Algorithm
}

// NewCipherEngine builds an engine for alg using key. The caller may zero key afterwards;
// the underlying cipher keeps its own expanded copy.
func NewCipherEngine(manager AEADManager, key []byte, alg cryptoDomain.Algorithm) (*CipherEngine, error) {
	aead, err := manager.CreateCipher(key, alg)
	if err != nil {
		return nil, err
	}
	return &CipherEngine{aead: aead, algorithm: alg}, nil
}

// Algorithm returns the AEAD algorithm the engine was built with.
func (e *CipherEngine) Algorithm() cryptoDomain.Algorithm {
	return e.algorithm
}

// Encrypt seals plaintext with a fresh nonce. It fails with ErrRandomSource rather than
// reusing or weakening a nonce when the entropy source errors.
func (e *CipherEngine) Encrypt(plaintext []byte) (ciphertext, nonce, tag []byte, err error) {
	return e.aead.Seal(plaintext)
}

// Decrypt verifies and opens a record payload. Any mismatch among ciphertext, nonce, tag
// or key yields ErrAuthenticationFailed.
func (e *CipherEngine) Decrypt(ciphertext, nonce, tag []byte) ([]byte, error) {
	return e.aead.Open(ciphertext, nonce, tag)
}
