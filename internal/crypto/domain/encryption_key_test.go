package domain

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/abderrahimghazali/vault-api/internal/errors"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	return b
}

func TestParseEncryptionKey(t *testing.T) {
	raw := randomBytes(t, KeySize)

	tests := []struct {
		name    string
		encoded string
	}{
		{"standard base64", base64.StdEncoding.EncodeToString(raw)},
		{"url base64", base64.URLEncoding.EncodeToString(raw)},
		{"raw base64", base64.RawStdEncoding.EncodeToString(raw)},
		{"hex lowercase", hex.EncodeToString(raw)},
		{"hex uppercase", strings.ToUpper(hex.EncodeToString(raw))},
		{"surrounding whitespace", "  " + base64.StdEncoding.EncodeToString(raw) + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseEncryptionKey(tt.encoded)
			require.NoError(t, err)
			assert.Equal(t, raw, key)
		})
	}
}

func TestParseEncryptionKey_Errors(t *testing.T) {
	t.Run("31 bytes base64", func(t *testing.T) {
		_, err := ParseEncryptionKey(base64.StdEncoding.EncodeToString(randomBytes(t, 31)))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
		assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)
	})

	t.Run("33 bytes base64", func(t *testing.T) {
		_, err := ParseEncryptionKey(base64.StdEncoding.EncodeToString(randomBytes(t, 33)))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("31 bytes hex", func(t *testing.T) {
		_, err := ParseEncryptionKey(hex.EncodeToString(randomBytes(t, 31)))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("33 bytes hex", func(t *testing.T) {
		_, err := ParseEncryptionKey(hex.EncodeToString(randomBytes(t, 33)))
		assert.ErrorIs(t, err, ErrInvalidKeySize)
	})

	t.Run("neither base64 nor hex", func(t *testing.T) {
		_, err := ParseEncryptionKey("not a key!*")
		assert.ErrorIs(t, err, ErrInvalidKeyEncoding)
		assert.ErrorIs(t, err, apperrors.ErrInvalidConfiguration)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseEncryptionKey("   ")
		assert.ErrorIs(t, err, ErrEncryptionKeyNotSet)
	})
}

func TestParseAlgorithm(t *testing.T) {
	alg, err := ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, AESGCM, alg)

	alg, err = ParseAlgorithm("chacha20-poly1305")
	require.NoError(t, err)
	assert.Equal(t, ChaCha20, alg)

	_, err = ParseAlgorithm("des")
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
