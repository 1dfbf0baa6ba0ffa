package app

import (
	"fmt"

	extractionHTTP "github.com/verdantpay/onboarding/internal/extraction/http"
	extractionRepository "github.com/verdantpay/onboarding/internal/extraction/repository"
	extractionUsecase "github.com/verdantpay/onboarding/internal/extraction/usecase"
)

// ExtractionRepository returns the document extraction repository based on database driver.
func (c *Container) ExtractionRepository() (extractionUsecase.ExtractionRepository, error) {
	var err error
	c.extractionRepoInit.Do(func() {
		c.extractionRepo, err = c.initExtractionRepository()
		if err != nil {
			c.initErrors["extractionRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["extractionRepo"]; exists {
		return nil, storedErr
	}
	return c.extractionRepo, nil
}

// ExtractionUseCase returns the document extraction use case.
func (c *Container) ExtractionUseCase() (extractionUsecase.ExtractionUseCase, error) {
	var err error
	c.extractionUseCaseInit.Do(func() {
		c.extractionUseCase, err = c.initExtractionUseCase()
		if err != nil {
			c.initErrors["extractionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["extractionUseCase"]; exists {
		return nil, storedErr
	}
	return c.extractionUseCase, nil
}

// ExtractionHandler returns the HTTP handler for document extraction operations.
func (c *Container) ExtractionHandler() (*extractionHTTP.ExtractionHandler, error) {
	var err error
	c.extractionHandlerInit.Do(func() {
		c.extractionHandler, err = c.initExtractionHandler()
		if err != nil {
			c.initErrors["extractionHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["extractionHandler"]; exists {
		return nil, storedErr
	}
	return c.extractionHandler, nil
}

// initExtractionRepository creates the extraction repository based on the database driver.
func (c *Container) initExtractionRepository() (extractionUsecase.ExtractionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for extraction repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return extractionRepository.NewPostgreSQLExtractionRepository(db), nil
	case "mysql":
		return extractionRepository.NewMySQLExtractionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initExtractionUseCase creates the extraction use case with all its dependencies.
func (c *Container) initExtractionUseCase() (extractionUsecase.ExtractionUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for extraction use case: %w", err)
	}

	extractionRepo, err := c.ExtractionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get extraction repository for extraction use case: %w", err)
	}

	codec, err := c.ExtractionRecordCodec()
	if err != nil {
		return nil, fmt.Errorf("failed to get record codec for extraction use case: %w", err)
	}

	useCase := extractionUsecase.NewExtractionUseCase(txManager, extractionRepo, codec, c.Logger())

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for extraction use case: %w", err)
		}
		useCase = extractionUsecase.NewExtractionUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}

// initExtractionHandler creates the extraction HTTP handler.
func (c *Container) initExtractionHandler() (*extractionHTTP.ExtractionHandler, error) {
	useCase, err := c.ExtractionUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get extraction use case for extraction handler: %w", err)
	}

	return extractionHTTP.NewExtractionHandler(useCase, c.Logger()), nil
}
