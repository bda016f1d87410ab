package domain

// Algorithm represents the AEAD algorithm used by the cipher engine.
//
// Both supported algorithms use a 256-bit key, a 96-bit nonce and a 128-bit
// authentication tag, so records share one storage layout regardless of the choice.
// The algorithm is process-wide: records written under one algorithm cannot be
// opened under the other.
type Algorithm string

const (
	// AESGCM represents AES-256 in Galois/Counter Mode. Hardware accelerated on
	// CPUs with AES-NI or ARMv8 crypto extensions.
	AESGCM Algorithm = "aes-gcm"

	// ChaCha20 represents ChaCha20-Poly1305 (RFC 8439). Constant-time in software.
	ChaCha20 Algorithm = "chacha20-poly1305"
)

const (
	// KeySize is the required encryption key length in bytes.
	KeySize = 32

	// NonceSize is the nonce length in bytes for every supported algorithm.
	NonceSize = 12

	// TagSize is the authentication tag length in bytes for every supported algorithm.
	TagSize = 16
)

// ParseAlgorithm converts a configuration value into an Algorithm.
func ParseAlgorithm(value string) (Algorithm, error) {
	switch Algorithm(value) {
	case AESGCM, "":
		return AESGCM, nil
	case ChaCha20:
		return ChaCha20, nil
	default:
		return "", ErrUnsupportedAlgorithm
	}
}
