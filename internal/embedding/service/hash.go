package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	apperrors "github.com/abderrahimghazali/vault-api/internal/errors"
)

// Compile-time interface check.
var _ Encoder = (*HashEncoder)(nil)

// HashEncoder is a deterministic, offline encoder based on signed feature hashing.
//
// Each lowercased word and each adjacent word pair is hashed with FNV-1a into one of
// Dimensions buckets; a hash bit picks the sign. The result is L2-normalised, so
// texts sharing vocabulary land close in cosine distance. Text with no words encodes
// to the zero vector. Intended for local development and tests, not for semantic quality.
type HashEncoder struct {
	dimensions int
}

// NewHashEncoder creates a HashEncoder producing vectors of the given size.
func NewHashEncoder(dimensions int) *HashEncoder {
	if dimensions <= 0 {
		dimensions = DefaultDimensions
	}
	return &HashEncoder{dimensions: dimensions}
}

// Dimensions returns the output dimensionality.
func (h *HashEncoder) Dimensions() int {
	return h.dimensions
}

// Embed hashes text into a normalised vector.
func (h *HashEncoder) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", apperrors.ErrEmbeddingFailed, err)
	}

	vector := make([]float32, h.dimensions)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	for i, word := range words {
		h.add(vector, word, 1)
		if i > 0 {
			h.add(vector, words[i-1]+" "+word, 0.5)
		}
	}

	normalize(vector)
	return vector, nil
}

// EmbedMany embeds each text in turn.
func (h *HashEncoder) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		v, err := h.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		vectors[i] = v
	}
	return vectors, nil
}

func (h *HashEncoder) add(vector []float32, feature string, weight float32) {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(feature))
	sum := hasher.Sum64()

	bucket := sum % uint64(h.dimensions)
	if sum>>63 == 1 {
		weight = -weight
	}
	vector[bucket] += weight
}

func normalize(v []float32) {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	if norm == 0 {
		return
	}
	inv := float32(1 / math.Sqrt(norm))
	for i := range v {
		v[i] *= inv
	}
}
