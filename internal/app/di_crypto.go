package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	cryptoDomain "github.com/abderrahimghazali/vault-api/internal/crypto/domain"
	cryptoService "github.com/abderrahimghazali/vault-api/internal/crypto/service"
)

const kmsUnwrapTimeout = 30 * time.Second

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// KMSService returns the KMS service.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// CipherEngine returns the process-wide cipher engine built from ENCRYPTION_KEY.
func (c *Container) CipherEngine() (*cryptoService.CipherEngine, error) {
	var err error
	c.cipherEngineInit.Do(func() {
		c.cipherEngine, err = c.initCipherEngine()
		if err != nil {
			c.initErrors["cipherEngine"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cipherEngine"]; exists {
		return nil, storedErr
	}
	return c.cipherEngine, nil
}

// initCipherEngine loads the encryption key and builds the engine. The raw key is
// zeroed once the cipher holds its own copy.
func (c *Container) initCipherEngine() (*cryptoService.CipherEngine, error) {
	alg, err := cryptoDomain.ParseAlgorithm(c.config.CipherAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("failed to parse cipher algorithm: %w", err)
	}

	key, err := c.loadEncryptionKey()
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	engine, err := cryptoService.NewCipherEngine(c.AEADManager(), key, alg)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher engine: %w", err)
	}

	c.Logger().Info("cipher engine ready",
		slog.String("algorithm", string(engine.Algorithm())),
		slog.Bool("kms", c.config.KMSKeyURI != ""),
	)
	return engine, nil
}

// loadEncryptionKey decodes ENCRYPTION_KEY, unwrapping it through KMS when KMS_KEY_URI is set.
func (c *Container) loadEncryptionKey() ([]byte, error) {
	if c.config.KMSKeyURI == "" {
		key, err := cryptoDomain.ParseEncryptionKey(c.config.EncryptionKey)
		if err != nil {
			return nil, fmt.Errorf("failed to load encryption key: %w", err)
		}
		return key, nil
	}

	if c.config.EncryptionKey == "" {
		return nil, fmt.Errorf("failed to load encryption key: %w", cryptoDomain.ErrEncryptionKeyNotSet)
	}

	ctx, cancel := context.WithTimeout(c.ctx, kmsUnwrapTimeout)
	defer cancel()

	keeper, err := c.KMSService().OpenKeeper(ctx, c.config.KMSKeyURI)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			c.Logger().Warn("failed to close KMS keeper", slog.Any("error", closeErr))
		}
	}()

	key, err := cryptoService.UnwrapKey(ctx, keeper, c.config.EncryptionKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load encryption key: %w", err)
	}
	return key, nil
}
