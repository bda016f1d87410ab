package domain

const (
	// DefaultSearchLimit is used when a search request does not specify a limit.
	DefaultSearchLimit = 10

	// MaxSearchLimit bounds the number of results a single search may return.
	MaxSearchLimit = 100

	// MaxBatchSize bounds the number of texts accepted by a single batch write.
	MaxBatchSize = 100
)

// EmbeddingFailurePolicy selects how search reacts when the query cannot be embedded.
type EmbeddingFailurePolicy string

const (
	// EmbeddingFailureEmpty returns an empty result set and logs the failure.
	EmbeddingFailureEmpty EmbeddingFailurePolicy = "empty"

	// EmbeddingFailureError surfaces the failure to the caller.
	EmbeddingFailureError EmbeddingFailurePolicy = "error"
)
