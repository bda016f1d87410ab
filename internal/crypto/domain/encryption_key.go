package domain

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// KMSKeeper is the subset of *secrets.Keeper used to unwrap a KMS-protected encryption key.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.URLEncoding,
	base64.RawStdEncoding,
	base64.RawURLEncoding,
}

// ParseEncryptionKey decodes the process encryption key and checks it is exactly KeySize bytes.
//
// Base64 variants are tried first, then hex, and the first decoding that yields KeySize
// bytes wins. A 64-character hex key is also valid base64 (decoding to 48 bytes), so the
// length decides between the two. Rejected buffers are zeroed before returning.
func ParseEncryptionKey(encoded string) ([]byte, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, ErrEncryptionKeyNotSet
	}

	decodedAny := false
	for _, enc := range base64Encodings {
		key, err := enc.DecodeString(encoded)
		if err != nil {
			continue
		}
		if len(key) == KeySize {
			return key, nil
		}
		decodedAny = true
		Zero(key)
	}

	key, err := hex.DecodeString(encoded)
	if err == nil {
		if len(key) == KeySize {
			return key, nil
		}
		decodedAny = true
		Zero(key)
	}

	if decodedAny {
		return nil, ErrInvalidKeySize
	}
	return nil, ErrInvalidKeyEncoding
}
