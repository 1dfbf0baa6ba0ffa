package app

import (
	"fmt"

	applicationHTTP "github.com/verdantpay/onboarding/internal/application/http"
	applicationRepository "github.com/verdantpay/onboarding/internal/application/repository"
	applicationUsecase "github.com/verdantpay/onboarding/internal/application/usecase"
)

// ApplicationRepository returns the merchant application repository based on database driver.
func (c *Container) ApplicationRepository() (applicationUsecase.ApplicationRepository, error) {
	var err error
	c.applicationRepoInit.Do(func() {
		c.applicationRepo, err = c.initApplicationRepository()
		if err != nil {
			c.initErrors["applicationRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applicationRepo"]; exists {
		return nil, storedErr
	}
	return c.applicationRepo, nil
}

// ApplicationUseCase returns the merchant application use case.
func (c *Container) ApplicationUseCase() (applicationUsecase.ApplicationUseCase, error) {
	var err error
	c.applicationUseCaseInit.Do(func() {
		c.applicationUseCase, err = c.initApplicationUseCase()
		if err != nil {
			c.initErrors["applicationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applicationUseCase"]; exists {
		return nil, storedErr
	}
	return c.applicationUseCase, nil
}

// ApplicationHandler returns the HTTP handler for merchant application operations.
func (c *Container) ApplicationHandler() (*applicationHTTP.ApplicationHandler, error) {
	var err error
	c.applicationHandlerInit.Do(func() {
		c.applicationHandler, err = c.initApplicationHandler()
		if err != nil {
			c.initErrors["applicationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["applicationHandler"]; exists {
		return nil, storedErr
	}
	return c.applicationHandler, nil
}

// initApplicationRepository creates the application repository based on the database driver.
func (c *Container) initApplicationRepository() (applicationUsecase.ApplicationRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for application repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return applicationRepository.NewPostgreSQLApplicationRepository(db), nil
	case "mysql":
		return applicationRepository.NewMySQLApplicationRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initApplicationUseCase creates the application use case with all its dependencies.
func (c *Container) initApplicationUseCase() (applicationUsecase.ApplicationUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for application use case: %w", err)
	}

	applicationRepo, err := c.ApplicationRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get application repository for application use case: %w", err)
	}

	codec, err := c.ApplicationRecordCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get record codec for application use case: %w", err)
	}

	useCase := applicationUsecase.NewApplicationUseCase(txManager, applicationRepo, codec, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for application use case: %w", err)
		}
		useCase = applicationUsecase.NewApplicationUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initApplicationHandler creates the application HTTP handler.
func (c *Container) initApplicationHandler() (*applicationHTTP.ApplicationHandler, error) {
	useCase, err := c.ApplicationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get application use case for application handler: %w", err)
	}

	return applicationHTTP.NewApplicationHandler(useCase, c.Logger()), nil
}
