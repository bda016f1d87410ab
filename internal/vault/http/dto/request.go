// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
	customValidation "github.com/abderrahimghazali/vault-api/internal/validation"
)

// EncryptRequest contains the text to encrypt and store.
type EncryptRequest struct {
	Text string `json:"text"`
}

// Validate checks if the encrypt request is valid.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required,
			customValidation.NotBlank,
			customValidation.MaxBytes(customValidation.MaxTextBytes),
		),
	)
}

// EncryptBatchRequest contains several texts written in one transaction.
type EncryptBatchRequest struct {
	Texts []string `json:"texts"`
}

// Validate checks if the batch request is valid.
func (r *EncryptBatchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Texts,
			validation.Required,
			validation.Length(1, vaultDomain.MaxBatchSize),
			validation.Each(
				validation.Required,
				customValidation.NotBlank,
				customValidation.MaxBytes(customValidation.MaxTextBytes),
			),
		),
	)
}

// SearchRequest contains the query text and the maximum number of results.
// A nil Limit means DefaultSearchLimit.
type SearchRequest struct {
	Text  string `json:"text"`
	Limit *int   `json:"limit,omitempty"`
}

// Validate checks if the search request is valid.
func (r *SearchRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text,
			validation.Required,
			customValidation.NotBlank,
			customValidation.MaxBytes(customValidation.MaxTextBytes),
		),
		validation.Field(&r.Limit, validation.By(limitInRange)),
	)
}

// limitInRange is explicit because the built-in threshold rules skip zero values.
func limitInRange(value any) error {
	limit, _ := value.(*int)
	if limit == nil {
		return nil
	}
	if *limit < 1 || *limit > vaultDomain.MaxSearchLimit {
		return validation.NewError("validation_limit_range", "must be between 1 and 100")
	}
	return nil
}

// EffectiveLimit returns the requested limit or the default.
func (r *SearchRequest) EffectiveLimit() int {
	if r.Limit == nil {
		return vaultDomain.DefaultSearchLimit
	}
	return *r.Limit
}
