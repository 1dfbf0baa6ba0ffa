package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/verdantpay/onboarding/internal/database"
	apperrors "github.com/verdantpay/onboarding/internal/errors"
	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
	piiService "github.com/verdantpay/onboarding/internal/pii/service"
)

// extractionUseCase implements the ExtractionUseCase interface.
type extractionUseCase struct {
	txManager      database.TxManager
	extractionRepo ExtractionRepository
	codec          piiService.RecordCodec
	logger         *slog.Logger
}

// NewExtractionUseCase creates a new document extraction use case.
func NewExtractionUseCase(
	txManager database.TxManager,
	extractionRepo ExtractionRepository,
	codec piiService.RecordCodec,
	logger *slog.Logger,
) ExtractionUseCase {
	return &extractionUseCase{
		txManager:      txManager,
		extractionRepo: extractionRepo,
		codec:          codec,
		logger:         logger,
	}
}

// Protect encrypts the sensitive fields of an OCR result and stores the
// extraction.
func (e *extractionUseCase) Protect(
	ctx context.Context,
	input ProtectExtractionInput,
) (*extractionDomain.DocumentExtraction, error) {
	if !input.DocumentType.Valid() {
		return nil, extractionDomain.ErrInvalidDocumentType
	}

	publicRecord, encryptedFields, err := e.codec.Split(input.Record)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to protect extraction record")
	}

	now := time.Now().UTC()
	extraction := &extractionDomain.DocumentExtraction{
		ID:               uuid.Must(uuid.NewV7()),
		ApplicationID:    input.ApplicationID,
		TenantID:         input.TenantID,
		DocumentType:     input.DocumentType,
		Record:           publicRecord,
		EncryptedFields:  encryptedFields,
		HasEncryptedData: true,
		EncryptedAt:      &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = e.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return e.extractionRepo.Create(txCtx, extraction)
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("document extraction protected",
		"extraction_id", extraction.ID,
		"application_id", extraction.ApplicationID,
		"document_type", extraction.DocumentType,
		"encrypted_fields", len(extraction.EncryptedFields),
	)

	return extraction, nil
}

// Get retrieves an extraction with its masked public record.
func (e *extractionUseCase) Get(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	return e.extractionRepo.GetByID(ctx, extractionID)
}

// GetWithSensitiveData retrieves an extraction and merges decrypted
// plaintext values into its record.
func (e *extractionUseCase) GetWithSensitiveData(
	ctx context.Context,
	extractionID uuid.UUID,
) (*extractionDomain.DocumentExtraction, error) {
	extraction, err := e.extractionRepo.GetByID(ctx, extractionID)
	if err != nil {
		return nil, err
	}

	merged, fieldErrors := e.codec.Merge(extraction.Record, extraction.EncryptedFields)
	for _, fieldError := range fieldErrors {
		e.logger.Error("failed to decrypt extraction field",
			"extraction_id", extraction.ID,
			"field_path", fieldError.Path,
			"error", fieldError.Err,
		)
	}

	extraction.Record = merged
	return extraction, nil
}

// ListByApplication retrieves all extractions for one merchant application.
func (e *extractionUseCase) ListByApplication(
	ctx context.Context,
	applicationID uuid.UUID,
) ([]*extractionDomain.DocumentExtraction, error) {
	return e.extractionRepo.ListByApplication(ctx, applicationID)
}
