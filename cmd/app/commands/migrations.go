package commands

import (
	"fmt"
	"log/slog"

	"github.com/abderrahimghazali/vault-api/internal/database"
)

// RunMigrations applies all pending migrations for driver from migrations/<dir>,
// where dir is located by walking up from the working directory. Returns nil when
// the schema is already current.
func RunMigrations(logger *slog.Logger, driver, connectionString string) error {
	migrationsPath, err := database.FindMigrationsPath(driver)
	if err != nil {
		return fmt.Errorf("failed to locate migrations: %w", err)
	}

	logger.Info("running database migrations",
		slog.String("driver", driver),
		slog.String("path", migrationsPath),
	)

	db, err := database.Connect(database.Config{
		Driver:             driver,
		ConnectionString:   connectionString,
		MaxOpenConnections: 1,
		MaxIdleConnections: 1,
	})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Error("failed to close database", slog.Any("error", closeErr))
		}
	}()

	if err := database.Migrate(db, driver, migrationsPath); err != nil {
		return err
	}

	logger.Info("migrations completed successfully")
	return nil
}
