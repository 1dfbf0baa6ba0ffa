// Package mocks provides mock implementations for testing document
// extraction use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
)

// MockExtractionRepository is a mock implementation of ExtractionRepository
// for testing.
type MockExtractionRepository struct {
	mock.Mock
}

// Create mocks the Create method of ExtractionRepository.
func (m *MockExtractionRepository) Create(
	ctx context.Context,
	extraction *extractionDomain.DocumentExtraction,
) error {
	args := m.Called(ctx, extraction)
	return args.Error(0)
}

// GetByID mocks the GetByID method of ExtractionRepository.
func (m *MockExtractionRepository) GetByID(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	args := m.Called(ctx, extractionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extractionDomain.DocumentExtraction), args.Error(1)
}

// Update mocks the Update method of ExtractionRepository.
func (m *MockExtractionRepository) Update(
	ctx context.Context,
	extraction *extractionDomain.DocumentExtraction,
) error {
	args := m.Called(ctx, extraction)
	return args.Error(0)
}

// ListByApplication mocks the ListByApplication method of
// ExtractionRepository.
func (m *MockExtractionRepository) ListByApplication(
	ctx context.Context,
	applicationID uuid.UUID,
) ([]*extractionDomain.DocumentExtraction, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*extractionDomain.DocumentExtraction), args.Error(1)
}
