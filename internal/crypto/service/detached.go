package service

import (
	"crypto/cipher"
	"fmt"
	"io"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
)

// detachedAEAD adapts a cipher.AEAD so that the authentication tag travels in its own column.
type detachedAEAD struct {
	aead cipher.AEAD
	rand io.Reader
}

func (d detachedAEAD) Seal(plaintext []byte) (ciphertext, nonce, tag []byte, err error) {
	nonce = make([]byte, d.aead.NonceSize())
	if _, err := io.ReadFull(d.rand, nonce); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", cryptoDomain.ErrRandomSource, err)
	}

	sealed := d.aead.Seal(nil, nonce, plaintext, nil)
	split := len(sealed) - d.aead.Overhead()

	// Copy the tag out so ciphertext does not alias it through spare capacity.
	tag = make([]byte, d.aead.Overhead())
	copy(tag, sealed[split:])
	return sealed[:split:split], nonce, tag, nil
}

func (d detachedAEAD) Open(ciphertext, nonce, tag []byte) ([]byte, error) {
	if len(nonce) != d.aead.NonceSize() || len(tag) != d.aead.Overhead() {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := d.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return nil, cryptoDomain.ErrAuthenticationFailed
	}
	return plaintext, nil
}
