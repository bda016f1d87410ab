// Package service provides vector encoders that map text to fixed-dimension embeddings.
package service

import "context"

// Encoder maps text to embedding vectors of a fixed dimensionality.
//
// Implementations must be safe for concurrent use. Every failure wraps
// errors.ErrEmbeddingFailed; callers treat it as terminal for the current
// write or search and never retry it themselves.
type Encoder interface {
	// Embed returns the embedding for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedMany returns one embedding per input text, in input order.
	EmbedMany(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the length of every vector the encoder produces.
	Dimensions() int
}
