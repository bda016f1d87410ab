package app

import (
	"fmt"

	embeddingService "github.com/abderrahimghazali/vault-api/internal/embedding/service"
)

// Encoder returns the embedding encoder selected by EMBEDDING_PROVIDER, instrumented with
// business metrics.
func (c *Container) Encoder() (embeddingService.Encoder, error) {
	var err error
	c.encoderInit.Do(func() {
		c.encoder, err = c.initEncoder()
		if err != nil {
			c.initErrors["encoder"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["encoder"]; exists {
		return nil, storedErr
	}
	return c.encoder, nil
}

func (c *Container) initEncoder() (embeddingService.Encoder, error) {
	var encoder embeddingService.Encoder

	switch c.config.EmbeddingProvider {
	case "openai":
		encoder = embeddingService.NewOpenAIEncoder(embeddingService.OpenAIConfig{
			BaseURL:     c.config.EmbeddingBaseURL,
			APIKey:      c.config.OpenAIAPIKey,
			Model:       c.config.EmbeddingModel,
			Dimensions:  c.config.EmbeddingDimensions,
			Timeout:     c.config.EmbeddingTimeout,
			MaxRetries:  c.config.EmbeddingMaxRetries,
			BatchSize:   c.config.EmbeddingBatchSize,
			Concurrency: c.config.EmbeddingConcurrency,
		}, c.Logger())
	case "hash":
		encoder = embeddingService.NewHashEncoder(c.config.EmbeddingDimensions)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", c.config.EmbeddingProvider)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for encoder: %w", err)
	}

	return embeddingService.NewEncoderWithMetrics(encoder, businessMetrics), nil
}
