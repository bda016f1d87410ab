package service

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
)

// ChaCha20Poly1305Cipher implements the AEAD interface using ChaCha20-Poly1305 (RFC 8439).
//
// It shares the storage layout of AESGCMCipher: 32-byte key, 12-byte nonce and
// 16-byte tag. Prefer it on hardware without AES acceleration, where it runs in
// constant time and faster than software AES.
type ChaCha20Poly1305Cipher struct {
	detachedAEAD
}

// NewChaCha20Poly1305 creates a new ChaCha20-Poly1305 cipher instance.
func NewChaCha20Poly1305(key []byte) (*ChaCha20Poly1305Cipher, error) {
	if len(key) != cryptoDomain.KeySize {
		return nil, cryptoDomain.ErrInvalidKeySize
	}

	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create ChaCha20-Poly1305 cipher: %w", err)
	}

	return &ChaCha20Poly1305Cipher{detachedAEAD{aead: aead, rand: rand.Reader}}, nil
}
