// Package usecase defines the interfaces and implementations for merchant
// application business logic. Use cases orchestrate between the record codec
// and repositories so that sensitive field values never reach storage in
// plaintext.
package usecase

import (
	"context"

	"github.com/google/uuid"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

// ApplicationRepository defines the interface for merchant application
// persistence operations.
type ApplicationRepository interface {
	Create(ctx context.Context, application *applicationDomain.MerchantApplication) error
	GetByID(ctx context.Context, applicationID uuid.UUID) (*applicationDomain.MerchantApplication, error)
	Update(ctx context.Context, application *applicationDomain.MerchantApplication) error
	UpdateStatus(ctx context.Context, applicationID uuid.UUID, status applicationDomain.Status) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]*applicationDomain.MerchantApplication, error)
}

// SubmitApplicationInput carries the fields needed to create a merchant
// application. Record is the full onboarding form as submitted by the client,
// sensitive values still in plaintext.
type SubmitApplicationInput struct {
	TenantID          uuid.UUID
	LegalBusinessName string
	DBAName           string
	Record            piiDomain.Record
}

// UpdateApplicationInput carries a full replacement of an application's
// mutable business data. The record is re-split on every update, so values
// the client re-submits in plaintext are re-encrypted.
type UpdateApplicationInput struct {
	LegalBusinessName string
	DBAName           string
	Record            piiDomain.Record
}

// ApplicationUseCase defines the interface for merchant application business
// logic.
type ApplicationUseCase interface {
	// Submit creates a new application, encrypting its sensitive fields. The
	// returned application holds the masked public record.
	Submit(ctx context.Context, input SubmitApplicationInput) (*applicationDomain.MerchantApplication, error)

	// Update replaces an application's business data, re-encrypting sensitive
	// fields from the submitted record.
	Update(ctx context.Context, applicationID uuid.UUID, input UpdateApplicationInput) (*applicationDomain.MerchantApplication, error)

	// Get retrieves an application with its masked public record. No
	// decryption happens on this path.
	Get(ctx context.Context, applicationID uuid.UUID) (*applicationDomain.MerchantApplication, error)

	// GetWithSensitiveData retrieves an application and merges decrypted
	// plaintext values into its record. Per-field decryption failures leave
	// the masked value in place and are logged; the call only errors when the
	// application cannot be loaded.
	GetWithSensitiveData(ctx context.Context, applicationID uuid.UUID) (*applicationDomain.MerchantApplication, error)

	// List retrieves a tenant's applications with masked records, newest
	// first.
	List(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]*applicationDomain.MerchantApplication, error)

	// UpdateStatus moves an application through the review workflow,
	// enforcing the allowed transitions.
	UpdateStatus(ctx context.Context, applicationID uuid.UUID, status applicationDomain.Status) (*applicationDomain.MerchantApplication, error)
}
