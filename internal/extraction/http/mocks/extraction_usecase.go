// Package mocks provides mock implementations for testing document
// extraction HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
	extractionUsecase "github.com/verdantpay/onboarding/internal/extraction/usecase"
)

// MockExtractionUseCase is a mock implementation of ExtractionUseCase for
// testing.
type MockExtractionUseCase struct {
	mock.Mock
}

// Protect mocks the Protect method of ExtractionUseCase.
func (m *MockExtractionUseCase) Protect(
	ctx context.Context,
	input extractionUsecase.ProtectExtractionInput,
) (*extractionDomain.DocumentExtraction, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extractionDomain.DocumentExtraction), args.Error(1)
}

// Get mocks the Get method of ExtractionUseCase.
func (m *MockExtractionUseCase) Get(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	args := m.Called(ctx, extractionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extractionDomain.DocumentExtraction), args.Error(1)
}

// GetWithSensitiveData mocks the GetWithSensitiveData method of
// ExtractionUseCase.
func (m *MockExtractionUseCase) GetWithSensitiveData(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	args := m.Called(ctx, extractionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extractionDomain.DocumentExtraction), args.Error(1)
}

// ListByApplication mocks the ListByApplication method of
// ExtractionUseCase.
func (m *MockExtractionUseCase) ListByApplication(
	ctx context.Context,
	applicationID uuid.UUID,
) ([]*extractionDomain.DocumentExtraction, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*extractionDomain.DocumentExtraction), args.Error(1)
}
