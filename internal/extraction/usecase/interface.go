// Package usecase defines the interfaces and implementations for document
// extraction business logic. The protect path runs every OCR result through
// the record codec before persistence, so sensitive values extracted from
// documents never reach storage in plaintext.
package usecase

import (
	"context"

	"github.com/google/uuid"

	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

// ExtractionRepository defines the interface for document extraction
// persistence operations.
type ExtractionRepository interface {
	Create(ctx context.Context, extraction *extractionDomain.DocumentExtraction) error
	GetByID(ctx context.Context, extractionID uuid.UUID) (*extractionDomain.DocumentExtraction, error)
	Update(ctx context.Context, extraction *extractionDomain.DocumentExtraction) error
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*extractionDomain.DocumentExtraction, error)
}

// ProtectExtractionInput carries an OCR result to be protected and stored.
type ProtectExtractionInput struct {
	ApplicationID uuid.UUID
	TenantID      uuid.UUID
	DocumentType  extractionDomain.DocumentType
	Record        piiDomain.Record
}

// ExtractionUseCase defines the interface for document extraction business
// logic.
type ExtractionUseCase interface {
	// Protect encrypts the sensitive fields of an OCR result and stores the
	// extraction. The returned extraction holds the masked public record.
	Protect(ctx context.Context, input ProtectExtractionInput) (*extractionDomain.DocumentExtraction, error)

	// Get retrieves an extraction with its masked public record.
	Get(ctx context.Context, extractionID uuid.UUID) (*extractionDomain.DocumentExtraction, error)

	// GetWithSensitiveData retrieves an extraction and merges decrypted
	// plaintext values into its record. Per-field decryption failures leave
	// the masked value in place and are logged.
	GetWithSensitiveData(ctx context.Context, extractionID uuid.UUID) (*extractionDomain.DocumentExtraction, error)

	// ListByApplication retrieves all extractions for one merchant
	// application with masked records.
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*extractionDomain.DocumentExtraction, error)
}
