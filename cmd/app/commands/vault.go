package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
	vaultUseCase "github.com/abderrahimghazali/vault-api/internal/vault/usecase"
)

type recordOutput struct {
	ID        string    `json:"id"                   yaml:"id"`
	Text      string    `json:"text,omitempty"       yaml:"text,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero"  yaml:"created_at,omitempty"`
}

type searchResultOutput struct {
	ID         string    `json:"id"         yaml:"id"`
	Text       string    `json:"text"       yaml:"text"`
	Similarity float64   `json:"similarity" yaml:"similarity"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// RunEncrypt embeds, encrypts and stores text, then prints the new record id.
//
// Requirements: Database must be migrated and accessible, and the embedding provider reachable.
func RunEncrypt(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	logger *slog.Logger,
	writer io.Writer,
	text string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	record, err := useCase.Create(ctx, text)
	if err != nil {
		return fmt.Errorf("failed to encrypt text: %w", err)
	}

	logger.Info("record stored", slog.String("record_id", record.ID.String()))

	if format == "text" {
		_, _ = fmt.Fprintf(writer, "Record ID: %s\n", record.ID.String())
		return nil
	}
	return writeStructured(writer, format, recordOutput{ID: record.ID.String(), CreatedAt: record.CreatedAt})
}

// RunDecrypt fetches a record by id and prints its decrypted text.
func RunDecrypt(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	logger *slog.Logger,
	writer io.Writer,
	id string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	recordID, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid record id: %w", err)
	}

	record, err := useCase.Get(ctx, recordID)
	if err != nil {
		return fmt.Errorf("failed to decrypt record: %w", err)
	}
	defer cryptoDomain.Zero(record.Plaintext)

	logger.Debug("record decrypted", slog.String("record_id", record.ID.String()))

	if format == "text" {
		_, _ = fmt.Fprintln(writer, string(record.Plaintext))
		return nil
	}
	return writeStructured(writer, format, recordOutput{
		ID:        record.ID.String(),
		Text:      string(record.Plaintext),
		CreatedAt: record.CreatedAt,
	})
}

// RunSearch prints the records most similar to text, most similar first.
func RunSearch(
	ctx context.Context,
	useCase vaultUseCase.VaultUseCase,
	logger *slog.Logger,
	writer io.Writer,
	text string,
	limit int,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	if limit < 1 || limit > vaultDomain.MaxSearchLimit {
		return fmt.Errorf("invalid limit: must be between 1 and %d", vaultDomain.MaxSearchLimit)
	}

	results, err := useCase.Search(ctx, text, limit)
	if err != nil {
		return fmt.Errorf("failed to search records: %w", err)
	}

	logger.Debug("search completed", slog.Int("results", len(results)))

	if format == "text" {
		if len(results) == 0 {
			_, _ = fmt.Fprintln(writer, "No matching records.")
			return nil
		}
		for i, result := range results {
			_, _ = fmt.Fprintf(writer, "%d. [%.4f] %s\n   %s\n", i+1, result.Similarity, result.ID.String(), result.Text)
		}
		return nil
	}

	output := make([]searchResultOutput, 0, len(results))
	for _, result := range results {
		output = append(output, searchResultOutput{
			ID:         result.ID.String(),
			Text:       result.Text,
			Similarity: result.Similarity,
			CreatedAt:  result.CreatedAt,
		})
	}
	return writeStructured(writer, format, output)
}
