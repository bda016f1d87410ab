package dto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
	customValidation "github.com/abderrahimghazali/vault-api/internal/validation"
)

func intPtr(v int) *int {
	return &v
}

func TestEncryptRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := EncryptRequest{Text: "the quick brown fox"}
		assert.NoError(t, req.Validate())
	})

	t.Run("Success_Unicode", func(t *testing.T) {
		req := EncryptRequest{Text: "données confidentielles 🔐"}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_EmptyText", func(t *testing.T) {
		req := EncryptRequest{Text: ""}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "text")
	})

	t.Run("Error_BlankText", func(t *testing.T) {
		req := EncryptRequest{Text: "  \n\t"}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_TooLarge", func(t *testing.T) {
		req := EncryptRequest{Text: strings.Repeat("a", customValidation.MaxTextBytes+1)}
		assert.Error(t, req.Validate())
	})
}

func TestEncryptBatchRequest_Validate(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		req := EncryptBatchRequest{Texts: []string{"one", "two"}}
		assert.NoError(t, req.Validate())
	})

	t.Run("Error_Empty", func(t *testing.T) {
		req := EncryptBatchRequest{}
		err := req.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "texts")
	})

	t.Run("Error_TooMany", func(t *testing.T) {
		texts := make([]string, vaultDomain.MaxBatchSize+1)
		for i := range texts {
			texts[i] = "text"
		}
		req := EncryptBatchRequest{Texts: texts}
		assert.Error(t, req.Validate())
	})

	t.Run("Error_BlankElement", func(t *testing.T) {
		req := EncryptBatchRequest{Texts: []string{"one", "   "}}
		assert.Error(t, req.Validate())
	})
}

func TestSearchRequest_Validate(t *testing.T) {
	t.Run("Success_DefaultLimit", func(t *testing.T) {
		req := SearchRequest{Text: "query"}
		assert.NoError(t, req.Validate())
		assert.Equal(t, vaultDomain.DefaultSearchLimit, req.EffectiveLimit())
	})

	t.Run("Success_Bounds", func(t *testing.T) {
		for _, limit := range []int{1, 50, vaultDomain.MaxSearchLimit} {
			req := SearchRequest{Text: "query", Limit: intPtr(limit)}
			assert.NoError(t, req.Validate())
			assert.Equal(t, limit, req.EffectiveLimit())
		}
	})

	t.Run("Error_LimitOutOfRange", func(t *testing.T) {
		for _, limit := range []int{0, -3, vaultDomain.MaxSearchLimit + 1} {
			req := SearchRequest{Text: "query", Limit: intPtr(limit)}
			err := req.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "limit")
		}
	})

	t.Run("Error_BlankText", func(t *testing.T) {
		req := SearchRequest{Text: " "}
		assert.Error(t, req.Validate())
	})
}
