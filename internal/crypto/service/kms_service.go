package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
	apperrors "github.com/abderrahimghazali/vault-api/internal/errors"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// kmsService implements KMSService using gocloud.dev/secrets.
type kmsService struct{}

// NewKMSService creates a new KMS service instance.
func NewKMSService() KMSService {
	return &kmsService{}
}

// OpenKeeper opens a secrets.Keeper for the configured KMS provider using the keyURI.
// Supports: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func (k *kmsService) OpenKeeper(ctx context.Context, keyURI string) (cryptoDomain.KMSKeeper, error) {
	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	return keeper, nil
}

// UnwrapKey decrypts a base64 KMS ciphertext into the raw encryption key.
// The unwrapped key must be exactly 32 bytes.
func UnwrapKey(ctx context.Context, keeper cryptoDomain.KMSKeeper, wrapped string) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(wrapped)
	if err != nil {
		return nil, cryptoDomain.ErrInvalidKeyEncoding
	}

	key, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrInvalidConfiguration, "failed to unwrap encryption key: %v", err)
	}

	if len(key) != cryptoDomain.KeySize {
		cryptoDomain.Zero(key)
		return nil, cryptoDomain.ErrInvalidKeySize
	}
	return key, nil
}

// WrapKey encrypts a raw key with keeper and returns it base64 encoded, ready for ENCRYPTION_KEY.
func WrapKey(ctx context.Context, keeper cryptoDomain.KMSKeeper, key []byte) (string, error) {
	ciphertext, err := keeper.Encrypt(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to wrap encryption key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}
