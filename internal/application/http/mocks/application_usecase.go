// Package mocks provides mock implementations for testing merchant
// application HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
	applicationUsecase "github.com/verdantpay/onboarding/internal/application/usecase"
)

// MockApplicationUseCase is a mock implementation of ApplicationUseCase for
// testing.
type MockApplicationUseCase struct {
	mock.Mock
}

// Submit mocks the Submit method of ApplicationUseCase.
func (m *MockApplicationUseCase) Submit(
	ctx context.Context,
	input applicationUsecase.SubmitApplicationInput,
) (*applicationDomain.MerchantApplication, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applicationDomain.MerchantApplication), args.Error(1)
}

// Update mocks the Update method of ApplicationUseCase.
func (m *MockApplicationUseCase) Update(
	ctx context.Context,
	applicationID uuid.UUID,
	input applicationUsecase.UpdateApplicationInput,
) (*applicationDomain.MerchantApplication, error) {
	args := m.Called(ctx, applicationID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applicationDomain.MerchantApplication), args.Error(1)
}

// Get mocks the Get method of ApplicationUseCase.
func (m *MockApplicationUseCase) Get(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applicationDomain.MerchantApplication), args.Error(1)
}

// GetWithSensitiveData mocks the GetWithSensitiveData method of
// ApplicationUseCase.
func (m *MockApplicationUseCase) GetWithSensitiveData(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applicationDomain.MerchantApplication), args.Error(1)
}

// List mocks the List method of ApplicationUseCase.
func (m *MockApplicationUseCase) List(
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

// UpdateStatus mocks the UpdateStatus method of ApplicationUseCase.
func (m *MockApplicationUseCase) UpdateStatus(
	ctx context.Context,
	applicationID uuid.UUID,
	status applicationDomain.Status,
) (*applicationDomain.MerchantApplication, error) {
	args := m.Called(ctx, applicationID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*applicationDomain.MerchantApplication), args.Error(1)
}
