// Package mocks provides mock implementations for testing merchant
// application use cases.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
)

// MockApplicationRepository is a mock implementation of ApplicationRepository
// for testing.
type MockApplicationRepository struct {
	mock.Mock
}

// Create mocks the Create method of ApplicationRepository.
func (m *MockApplicationRepository) Create(
	ctx context.Context,
	application *applicationDomain.MerchantApplication,
) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

// GetByID mocks the GetByID method of ApplicationRepository.
func (m *MockApplicationRepository) GetByID(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applicationDomain.MerchantApplication), args.Error(1)
}

// Update mocks the Update method of ApplicationRepository.
func (m *MockApplicationRepository) Update(
	ctx context.Context,
	application *applicationDomain.MerchantApplication,
) error {
	args := m.Called(ctx, application)
	return args.Error(0)
}

// UpdateStatus mocks the UpdateStatus method of ApplicationRepository.
func (m *MockApplicationRepository) UpdateStatus(
	ctx context.Context,
	applicationID uuid.UUID,
	status applicationDomain.Status,
) error {
	args := m.Called(ctx, applicationID, status)
	return args.Error(0)
}

// ListByTenant mocks the ListByTenant method of ApplicationRepository.
func (m *MockApplicationRepository) ListByTenant(
	ctx context.Context,
	tenantID uuid.UUID,
	offset, limit int,
) ([]*applicationDomain.MerchantApplication, error) {
	args := m.Called(ctx, tenantID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*applicationDomain.MerchantApplication), args.Error(1)
}
