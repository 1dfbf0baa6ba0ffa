// Package domain defines the core domain models for merchant application
// onboarding. A merchant application carries the multi-step form payload as a
// semi-structured record; sensitive fields are stored split into a masked
// public projection and an encrypted-field map.
package domain

import (
	"time"

	"github.com/google/uuid"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

// MerchantApplication represents one tenant's merchant onboarding
// application.
//
// Record holds the masked public projection of the form payload once the
// application has been through the record codec; EncryptedFields holds the
// companion ciphertexts keyed by field path. Rows created before field
// encryption was introduced have HasEncryptedData false and a plaintext
// Record; the bulk encryption runner migrates them in place.
type MerchantApplication struct {
	// ID is the unique identifier of the application (UUIDv7, time-ordered).
	ID uuid.UUID
	// TenantID identifies the owning tenant.
	TenantID uuid.UUID
	// LegalBusinessName is the registered name of the applying business.
	LegalBusinessName string
	// DBAName is the "doing business as" trade name, if any.
	DBAName string
	// Status is the review workflow state of the application.
	Status Status
	// Record is the masked public projection of the form payload.
	Record piiDomain.Record
	// EncryptedFields maps field paths to ciphertexts of the original values.
	EncryptedFields piiDomain.EncryptedFieldMap
	// HasEncryptedData is true once a split has been applied and committed.
	HasEncryptedData bool
	// EncryptedAt is the time of the most recent successful encryption commit.
	EncryptedAt *time.Time
	// CreatedAt is the UTC timestamp when the application was created.
	CreatedAt time.Time
	// UpdatedAt is the UTC timestamp of the last modification.
	UpdatedAt time.Time
}
