package dto

import (
	"time"

	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
)

// EncryptResponse represents a stored record in API responses. It never carries text.
type EncryptResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// EncryptBatchResponse lists the ids of the records written by a batch request, in input order.
type EncryptBatchResponse struct {
	IDs     []string `json:"ids"`
	Message string   `json:"message"`
}

// DecryptResponse represents a decrypted record.
type DecryptResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// SearchResultResponse represents one ranked and decrypted search hit.
type SearchResultResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Similarity float64   `json:"similarity"`
	CreatedAt  time.Time `json:"created_at"`
}

// MapRecordToEncryptResponse converts a stored record to an encrypt response.
func MapRecordToEncryptResponse(record *vaultDomain.Record) EncryptResponse {
	return EncryptResponse{
		ID:        record.ID.String(),
		Message:   "Text encrypted and stored successfully",
		CreatedAt: record.CreatedAt,
	}
}

// MapRecordsToEncryptBatchResponse converts stored records to a batch response.
func MapRecordsToEncryptBatchResponse(records []*vaultDomain.Record) EncryptBatchResponse {
	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.ID.String())
	}
	return EncryptBatchResponse{
		IDs:     ids,
		Message: "Texts encrypted and stored successfully",
	}
}

// MapRecordToDecryptResponse converts a decrypted record to a decrypt response.
func MapRecordToDecryptResponse(record *vaultDomain.Record) DecryptResponse {
	return DecryptResponse{
		ID:        record.ID.String(),
		Text:      string(record.Plaintext),
		CreatedAt: record.CreatedAt,
	}
}

// MapSearchResultsToResponse converts search results, preserving rank order.
func MapSearchResultsToResponse(results []*vaultDomain.SearchResult) []SearchResultResponse {
	response := make([]SearchResultResponse, 0, len(results))
	for _, result := range results {
		response = append(response, SearchResultResponse{
			ID:         result.ID.String(),
			Text:       result.Text,
			Similarity: result.Similarity,
			CreatedAt:  result.CreatedAt,
		})
	}
	return response
}
