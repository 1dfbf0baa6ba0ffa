package app

import (
	"fmt"

	migrationRepository "github.com/verdantpay/onboarding/internal/migration/repository"
	migrationService "github.com/verdantpay/onboarding/internal/migration/service"
	migrationUsecase "github.com/verdantpay/onboarding/internal/migration/usecase"
	piiService "github.com/verdantpay/onboarding/internal/pii/service"
)

// ApplicationMigrationRunner returns the bulk encryption runner for the
// merchant applications table.
func (c *Container) ApplicationMigrationRunner() (*migrationUsecase.Runner, error) {
	var err error
	c.applicationMigrationRunnerInit.Do(func() {
		c.applicationMigrationRunner, err = c.initMigrationRunner(
			migrationRepository.TableMerchantApplications,
			c.ApplicationRecordCodec,
		)
		if err != nil {
			c.initErrors["applicationMigrationRunner"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applicationMigrationRunner"]; exists {
		return nil, storedErr
	}
	return c.applicationMigrationRunner, nil
}

// ExtractionMigrationRunner returns the bulk encryption runner for the
// document extractions table.
func (c *Container) ExtractionMigrationRunner() (*migrationUsecase.Runner, error) {
	var err error
	c.extractionMigrationRunnerInit.Do(func() {
		c.extractionMigrationRunner, err = c.initMigrationRunner(
			migrationRepository.TableDocumentExtractions,
			c.ExtractionRecordCodec,
		)
		if err != nil {
			c.initErrors["extractionMigrationRunner"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["extractionMigrationRunner"]; exists {
		return nil, storedErr
	}
	return c.extractionMigrationRunner, nil
}

// initMigrationRunner creates a migration runner for one table with the
// codec matching that table's record shape.
func (c *Container) initMigrationRunner(
	table string,
	codecFn func() (piiService.RecordCodec, error),
) (*migrationUsecase.Runner, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for migration runner: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for migration runner: %w", err)
	}

	var rows migrationUsecase.RowRepository
	switch c.config.DBDriver {
	case "postgres":
		rows = migrationRepository.NewPostgreSQLRowRepository(db, table)
	case "mysql":
		rows = migrationRepository.NewMySQLRowRepository(db, table)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	codec, err := codecFn()
	if err != nil {
		return nil, fmt.Errorf("failed to get record codec for migration runner: %w", err)
	}

	cipher, err := c.FieldCipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get field cipher for migration runner: %w", err)
	}

	key, err := c.FieldKey()
	if err != nil {
		return nil, fmt.Errorf("failed to get field key for migration runner: %w", err)
	}

	checksummer, err := migrationService.NewRecordChecksummer(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create record checksummer: %w", err)
	}

	return migrationUsecase.NewRunner(txManager, rows, codec, cipher, checksummer, c.Logger()), nil
}
