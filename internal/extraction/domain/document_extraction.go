// Package domain defines the core entities for document extraction results.
// An extraction holds the fields pulled out of an uploaded document by OCR;
// values the sensitive-field catalog knows about are stored encrypted with a
// masked placeholder in the public record.
package domain

import (
	"time"

	"github.com/google/uuid"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

// DocumentExtraction represents the structured fields extracted from one
// uploaded document.
type DocumentExtraction struct {
	ID            uuid.UUID
	ApplicationID uuid.UUID
	TenantID      uuid.UUID
	DocumentType  DocumentType

	// Record is the public projection of the extracted fields. Catalog
	// fields hold masked values; everything else passes through as
	// extracted.
	Record piiDomain.Record

	// EncryptedFields maps field paths to ciphertext for the catalog fields
	// present in the extraction.
	EncryptedFields piiDomain.EncryptedFieldMap

	// HasEncryptedData marks the row as processed by field-level
	// encryption, even when no sensitive fields were present.
	HasEncryptedData bool

	// EncryptedAt records when the sensitive fields were encrypted.
	EncryptedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
