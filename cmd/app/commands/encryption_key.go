package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
	cryptoService "github.com/abderrahimghazali/vault-api/internal/crypto/service"
)

// RunCreateEncryptionKey generates a random 32-byte record encryption key and prints it
// as an ENCRYPTION_KEY line. Key material is zeroed from memory after encoding.
//
// Without kmsKeyURI the key is printed in the requested encoding ("base64" or "hex").
// With kmsKeyURI the key is wrapped by the KMS keeper and the base64 ciphertext is
// printed together with KMS_KEY_URI; the encoding flag is ignored in that mode.
//
// Security: Never use the base64key:// provider in production.
func RunCreateEncryptionKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	encoding string,
	kmsKeyURI string,
) error {
	if encoding != "base64" && encoding != "hex" {
		return fmt.Errorf("invalid encoding: %s (valid options: base64, hex)", encoding)
	}

	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate encryption key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	if kmsKeyURI == "" {
		var encoded string
		if encoding == "hex" {
			encoded = hex.EncodeToString(key)
		} else {
			encoded = base64.StdEncoding.EncodeToString(key)
		}

		_, _ = fmt.Fprintln(writer, "# Store this value in a secret manager; records cannot be read without it.")
		_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", encoded)

		logger.Info("encryption key generated", slog.String("encoding", encoding))
		return nil
	}

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	wrapped, err := cryptoService.WrapKey(ctx, keeper, key)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(writer, "# KMS mode: ENCRYPTION_KEY holds the KMS ciphertext of the key.")
	_, _ = fmt.Fprintf(writer, "ENCRYPTION_KEY=\"%s\"\n", wrapped)
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)

	logger.Info("encryption key generated and wrapped with KMS")
	return nil
}
