package domain

import (
	"github.com/abderrahimghazali/vault-api/internal/errors"
)

// Cryptographic error definitions.
//
// Key and algorithm errors wrap ErrInvalidConfiguration because they can only arise
// from process configuration and must stop the service before it accepts requests.
var (
	// ErrUnsupportedAlgorithm indicates the configured AEAD algorithm is unknown.
	// Supported algorithms: AESGCM (AES-256-GCM), ChaCha20 (ChaCha20-Poly1305).
	ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrInvalidConfiguration, "unsupported algorithm")

	// ErrInvalidKeySize indicates the encryption key did not decode to exactly 32 bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidConfiguration, "invalid key size")

	// ErrInvalidKeyEncoding indicates the encryption key is neither base64 nor hex.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrInvalidConfiguration, "invalid key encoding")

	// ErrEncryptionKeyNotSet indicates ENCRYPTION_KEY is empty.
	ErrEncryptionKeyNotSet = errors.Wrap(errors.ErrInvalidConfiguration, "encryption key not set")

	// ErrAuthenticationFailed indicates AEAD tag verification failed.
	//
	// This can mean the ciphertext, nonce or tag was altered, the record was written
	// with a different key or algorithm, or the stored bytes are truncated. The
	// specific cause is deliberately not distinguished and no plaintext is returned.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrCorrupted, "authentication failed")

	// ErrRandomSource indicates the secure random source could not produce a nonce.
	ErrRandomSource = errors.New("secure random source unavailable")
)
