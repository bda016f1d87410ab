// Package http provides HTTP handlers for the encrypted vault.
// Texts are sealed before they reach the store; decrypted text only leaves the process
// in the body of a decrypt or search response.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
	"github.com/abderrahimghazali/vault-api/internal/httputil"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
	"github.com/abderrahimghazali/vault-api/internal/vault/http/dto"
	vaultUseCase "github.com/abderrahimghazali/vault-api/internal/vault/usecase"
	customValidation "github.com/abderrahimghazali/vault-api/internal/validation"
)

// VaultHandler handles HTTP requests for vault operations.
type VaultHandler struct {
	vaultUseCase vaultUseCase.VaultUseCase
	logger       *slog.Logger
}

// NewVaultHandler creates a new vault handler with required dependencies.
func NewVaultHandler(vaultUseCase vaultUseCase.VaultUseCase, logger *slog.Logger) *VaultHandler {
	return &VaultHandler{
		vaultUseCase: vaultUseCase,
		logger:       logger,
	}
}

// EncryptHandler embeds, encrypts and stores a text.
// POST /api/v1/vault/encrypt
// Returns 201 Created with the record id. The response never echoes the text.
func (h *VaultHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	record, err := h.vaultUseCase.Create(c.Request.Context(), req.Text)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapRecordToEncryptResponse(record))
}

// EncryptBatchHandler stores several texts atomically.
// POST /api/v1/vault/encrypt/batch
// Returns 201 Created with the record ids in input order.
func (h *VaultHandler) EncryptBatchHandler(c *gin.Context) {
	var req dto.EncryptBatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	records, err := h.vaultUseCase.CreateMany(c.Request.Context(), req.Texts)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapRecordsToEncryptBatchResponse(records))
}

// DecryptHandler retrieves and decrypts a record by id.
// GET /api/v1/vault/decrypt/:id
// Returns 200 OK with the text. SECURITY: Plaintext is zeroed after response.
func (h *VaultHandler) DecryptHandler(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid record id: %w", err), h.logger)
		return
	}

	record, err := h.vaultUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	defer cryptoDomain.Zero(record.Plaintext)

	c.JSON(http.StatusOK, dto.MapRecordToDecryptResponse(record))
}

// SearchHandler ranks stored records by semantic similarity to a query text.
// POST /api/v1/vault/search
// Returns 200 OK with results ordered by descending similarity.
func (h *VaultHandler) SearchHandler(c *gin.Context) {
	var req dto.SearchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	h.search(c, req.Text, req.EffectiveLimit())
}

// SearchQueryHandler is the query-string form of SearchHandler.
// GET /api/v1/vault/search?text=...&limit=N
func (h *VaultHandler) SearchQueryHandler(c *gin.Context) {
	text, limit, err := httputil.ParseSearchQuery(c, vaultDomain.DefaultSearchLimit, vaultDomain.MaxSearchLimit)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	h.search(c, text, limit)
}

func (h *VaultHandler) search(c *gin.Context, text string, limit int) {
	results, err := h.vaultUseCase.Search(c.Request.Context(), text, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapSearchResultsToResponse(results))
}
