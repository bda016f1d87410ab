package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/abderrahimghazali/vault-api/internal/errors"
)

// Compile-time interface check.
var _ Encoder = (*OpenAIEncoder)(nil)

const (
	DefaultOpenAIBaseURL = "https://api.openai.com/v1"
	DefaultOpenAIModel   = "text-embedding-3-small"
	DefaultDimensions    = 1536

	maxErrorBodyBytes = 4 << 10
)

// OpenAIConfig holds the settings for an OpenAI-compatible embeddings endpoint.
type OpenAIConfig struct {
	BaseURL     string
	APIKey      string
	Model       string
	Dimensions  int
	Timeout     time.Duration
	MaxRetries  int
	BatchSize   int
	Concurrency int

	// InitialBackoff is the first retry delay; it doubles on each attempt up to MaxBackoff.
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// OpenAIEncoder implements Encoder against the OpenAI /embeddings API or any server
// that speaks the same protocol.
type OpenAIEncoder struct {
	cfg    OpenAIConfig
	client *http.Client
	logger *slog.Logger
}

// NewOpenAIEncoder creates an encoder. Zero values in cfg fall back to defaults.
func NewOpenAIEncoder(cfg OpenAIConfig, logger *slog.Logger) *OpenAIEncoder {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.Dimensions <= 0 {
		cfg.Dimensions = DefaultDimensions
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 500 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 8 * time.Second
	}

	return &OpenAIEncoder{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Dimensions returns the configured output dimensionality.
func (e *OpenAIEncoder) Dimensions() int {
	return e.cfg.Dimensions
}

// Embed returns the embedding for a single text.
func (e *OpenAIEncoder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedMany(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}

// EmbedMany splits texts into batches, fetches them concurrently and reassembles the
// vectors in input order. Any failing batch fails the whole call.
func (e *OpenAIEncoder) EmbedMany(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vectors := make([][]float32, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Concurrency)

	for start := 0; start < len(texts); start += e.cfg.BatchSize {
		end := min(start+e.cfg.BatchSize, len(texts))
		g.Go(func() error {
			batch, err := e.embedBatch(gctx, texts[start:end])
			if err != nil {
				return err
			}
			copy(vectors[start:end], batch)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// embedBatch sends one request with bounded retries and validates the response.
func (e *OpenAIEncoder) embedBatch(ctx context.Context, input []string) ([][]float32, error) {
	body, err := json.Marshal(embeddingRequest{
		Model:      e.cfg.Model,
		Input:      input,
		Dimensions: e.cfg.Dimensions,
	})
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrEmbeddingFailed, "marshal request: %v", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = e.cfg.InitialBackoff
	policy.MaxInterval = e.cfg.MaxBackoff
	policy.MaxElapsedTime = 0

	notify := func(err error, wait time.Duration) {
		e.logger.Warn("embedding request failed, retrying",
			slog.Any("error", err),
			slog.Duration("backoff", wait),
			slog.Int("batch_size", len(input)),
		)
	}

	resp, err := backoff.RetryNotifyWithData(
		func() (*embeddingResponse, error) { return e.post(ctx, body) },
		backoff.WithContext(backoff.WithMaxRetries(policy, uint64(e.cfg.MaxRetries)), ctx),
		notify,
	)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrEmbeddingFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	return e.collect(resp, len(input))
}

func (e *OpenAIEncoder) post(ctx context.Context, body []byte) (*embeddingResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.BaseURL+"/embeddings", bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: create request: %v", ErrProviderUnavailable, err))
	}
	req.Header.Set("Content-Type", "application/json")
	if e.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.cfg.APIKey)
	}

	httpResp, err := e.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(fmt.Errorf("%w: %v", ErrProviderUnavailable, ctx.Err()))
		}
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	if httpResp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBodyBytes))
		statusErr := fmt.Errorf("status %d: %s", httpResp.StatusCode, strings.TrimSpace(string(snippet)))

		if httpResp.StatusCode == http.StatusTooManyRequests || httpResp.StatusCode >= 500 {
			return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, statusErr)
		}
		return nil, backoff.Permanent(fmt.Errorf("%w: %v", ErrProviderRejected, statusErr))
	}

	var resp embeddingResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: decode: %v", ErrMalformedResponse, err))
	}
	return &resp, nil
}

// collect orders vectors by the response index and checks count and dimensionality.
func (e *OpenAIEncoder) collect(resp *embeddingResponse, want int) ([][]float32, error) {
	if len(resp.Data) != want {
		return nil, fmt.Errorf("%w: got %d vectors for %d inputs", ErrMalformedResponse, len(resp.Data), want)
	}

	vectors := make([][]float32, want)
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= want || vectors[d.Index] != nil {
			return nil, fmt.Errorf("%w: bad index %d", ErrMalformedResponse, d.Index)
		}
		if len(d.Embedding) != e.cfg.Dimensions {
			return nil, fmt.Errorf(
				"%w: vector has %d dimensions, want %d",
				ErrMalformedResponse, len(d.Embedding), e.cfg.Dimensions,
			)
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

type embeddingRequest struct {
	Model      string   `json:"model"`
	Input      []string `json:"input"`
	Dimensions int      `json:"dimensions,omitempty"`
}

type embeddingResponse struct {
	Data []embeddingData `json:"data"`
}

type embeddingData struct {
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}
