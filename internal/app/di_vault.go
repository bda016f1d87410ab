package app

import (
	"fmt"

	"github.com/abderrahimghazali/vault-api/internal/database"
	"github.com/abderrahimghazali/vault-api/internal/metrics"
	vaultDomain "github.com/abderrahimghazali/vault-api/internal/vault/domain"
	vaultHTTP "github.com/abderrahimghazali/vault-api/internal/vault/http"
	"github.com/abderrahimghazali/vault-api/internal/vault/index"
	vaultRepository "github.com/abderrahimghazali/vault-api/internal/vault/repository"
	vaultUseCase "github.com/abderrahimghazali/vault-api/internal/vault/usecase"
)

// RecordRepository returns the record repository for the configured database driver.
// MySQL and SQLite repositories are backed by an in-process IVF index that is warmed
// from the stored embeddings on first access.
func (c *Container) RecordRepository() (vaultUseCase.RecordRepository, error) {
	var err error
	c.recordRepoInit.Do(func() {
		c.recordRepo, err = c.initRecordRepository()
		if err != nil {
			c.initErrors["recordRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["recordRepo"]; exists {
		return nil, storedErr
	}
	return c.recordRepo, nil
}

// VaultUseCase returns the vault use case wrapped with business metrics.
func (c *Container) VaultUseCase() (vaultUseCase.VaultUseCase, error) {
	var err error
	c.vaultUseCaseInit.Do(func() {
		c.vaultUseCase, err = c.initVaultUseCase()
		if err != nil {
			c.initErrors["vaultUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["vaultUseCase"]; exists {
		return nil, storedErr
	}
	return c.vaultUseCase, nil
}

// VaultHandler returns the HTTP handler for vault routes.
func (c *Container) VaultHandler() (*vaultHTTP.VaultHandler, error) {
	var err error
	c.vaultHandlerInit.Do(func() {
		c.vaultHandler, err = c.initVaultHandler()
		if err != nil {
			c.initErrors["vaultHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["vaultHandler"]; exists {
		return nil, storedErr
	}
	return c.vaultHandler, nil
}

func (c *Container) initRecordRepository() (vaultUseCase.RecordRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for record repository: %w", err)
	}

	dims := c.config.EmbeddingDimensions
	if c.config.DBDriver == database.DriverPostgres {
		return vaultRepository.NewPostgreSQLRecordRepository(db, dims, c.config.VectorIndexProbes), nil
	}

	idx := index.NewIVF(dims, index.Options{
		Lists:          c.config.VectorIndexLists,
		Probes:         c.config.VectorIndexProbes,
		TrainThreshold: c.config.VectorIndexTrainThreshold,
	})

	var repo *vaultRepository.IndexedRecordRepository
	switch c.config.DBDriver {
	case database.DriverMySQL:
		repo = vaultRepository.NewMySQLRecordRepository(db, idx, c.Logger())
	case database.DriverSQLite:
		repo = vaultRepository.NewSQLiteRecordRepository(db, idx, c.Logger())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	if err := repo.Warm(c.ctx); err != nil {
		return nil, fmt.Errorf("failed to warm vector index: %w", err)
	}

	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for vector index: %w", err)
	}
	if provider != nil {
		if err := metrics.RegisterIndexMetrics(provider.MeterProvider(), c.config.MetricsNamespace, idx); err != nil {
			return nil, fmt.Errorf("failed to register vector index metrics: %w", err)
		}
	}
	return repo, nil
}

func (c *Container) initVaultUseCase() (vaultUseCase.VaultUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for vault use case: %w", err)
	}

	recordRepo, err := c.RecordRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get record repository for vault use case: %w", err)
	}

	cipherEngine, err := c.CipherEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher engine for vault use case: %w", err)
	}

	encoder, err := c.Encoder()
	if err != nil {
		return nil, fmt.Errorf("failed to get encoder for vault use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for vault use case: %w", err)
	}

	useCase := vaultUseCase.NewVaultUseCase(
		txManager,
		recordRepo,
		cipherEngine,
		encoder,
		c.config.EmbeddingDimensions,
		vaultDomain.EmbeddingFailurePolicy(c.config.SearchEmbeddingFailurePolicy),
		businessMetrics,
		c.Logger(),
	)

	return vaultUseCase.NewVaultUseCaseWithMetrics(useCase, businessMetrics), nil
}

func (c *Container) initVaultHandler() (*vaultHTTP.VaultHandler, error) {
	useCase, err := c.VaultUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get vault use case for vault handler: %w", err)
	}
	return vaultHTTP.NewVaultHandler(useCase, c.Logger()), nil
}
