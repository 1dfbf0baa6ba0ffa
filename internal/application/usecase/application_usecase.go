package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
	"github.com/verdantpay/onboarding/internal/database"
	apperrors "github.com/verdantpay/onboarding/internal/errors"
	piiService "github.com/verdantpay/onboarding/internal/pii/service"
)

// applicationUseCase implements the ApplicationUseCase interface.
type applicationUseCase struct {
	txManager       database.TxManager
	applicationRepo ApplicationRepository
	codec           piiService.RecordCodec
	logger          *slog.Logger
}

// NewApplicationUseCase creates a new merchant application use case.
func NewApplicationUseCase(
	txManager database.TxManager,
	applicationRepo ApplicationRepository,
	codec piiService.RecordCodec,
	logger *slog.Logger,
) ApplicationUseCase {
	return &applicationUseCase{
		txManager:       txManager,
		applicationRepo: applicationRepo,
		codec:           codec,
		logger:          logger,
	}
}

// Submit creates a new application, encrypting its sensitive fields before
// anything touches storage.
func (a *applicationUseCase) Submit(
	ctx context.Context,
	input SubmitApplicationInput,
) (*applicationDomain.MerchantApplication, error) {
	publicRecord, encryptedFields, err := a.codec.Split(input.Record)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to protect application record")
	}

	now := time.Now().UTC()
	application := &applicationDomain.MerchantApplication{
		ID:                uuid.Must(uuid.NewV7()),
		TenantID:          input.TenantID,
		LegalBusinessName: input.LegalBusinessName,
		DBAName:           input.DBAName,
		Status:            applicationDomain.StatusSubmitted,
		Record:            publicRecord,
		EncryptedFields:   encryptedFields,
		HasEncryptedData:  true,
		EncryptedAt:       &now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err = a.txManager.WithTx(ctx, func(txCtx context.Context) error {
		return a.applicationRepo.Create(txCtx, application)
	})
	if err != nil {
		return nil, err
	}

	a.logger.Info("merchant application submitted",
		"application_id", application.ID,
		"tenant_id", application.TenantID,
		"encrypted_fields", len(application.EncryptedFields),
	)

	return application, nil
}

// Update replaces an application's business data and re-encrypts sensitive
// fields from the submitted record.
func (a *applicationUseCase) Update(
	ctx context.Context,
	applicationID uuid.UUID,
	input UpdateApplicationInput,
) (*applicationDomain.MerchantApplication, error) {
	publicRecord, encryptedFields, err := a.codec.Split(input.Record)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to protect application record")
	}

	var application *applicationDomain.MerchantApplication
	err = a.txManager.WithTx(ctx, func(txCtx context.Context) error {
		application, err = a.applicationRepo.GetByID(txCtx, applicationID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		application.LegalBusinessName = input.LegalBusinessName
		application.DBAName = input.DBAName
		application.Record = publicRecord
		application.EncryptedFields = encryptedFields
		application.HasEncryptedData = true
		application.EncryptedAt = &now
		application.UpdatedAt = now

		return a.applicationRepo.Update(txCtx, application)
	})
	if err != nil {
		return nil, err
	}

	return application, nil
}

// Get retrieves an application with its masked public record.
func (a *applicationUseCase) Get(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	return a.applicationRepo.GetByID(ctx, applicationID)
}

// GetWithSensitiveData retrieves an application and merges decrypted
// plaintext values into its record.
func (a *applicationUseCase) GetWithSensitiveData(
	ctx context.Context,
	applicationID uuid.UUID,
) (*applicationDomain.MerchantApplication, error) {
	application, err := a.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	merged, fieldErrors := a.codec.Merge(application.Record, application.EncryptedFields)
	for _, fieldError := range fieldErrors {
		a.logger.Error("failed to decrypt application field",
			"application_id", application.ID,
			"field_path", fieldError.Path,
			"error", fieldError.Err,
		)
	}

	application.Record = merged
	return application, nil
}

// List retrieves a tenant's applications with masked records.
func (a *applicationUseCase) List(
	ctx context.Context,
	tenantID uuid.UUID,
	offset, limit int,
) ([]*applicationDomain.MerchantApplication, error) {
	return a.applicationRepo.ListByTenant(ctx, tenantID, offset, limit)
}

// UpdateStatus moves an application through the review workflow.
func (a *applicationUseCase) UpdateStatus(
	ctx context.Context,
	applicationID uuid.UUID,
	status applicationDomain.Status,
) (*applicationDomain.MerchantApplication, error) {
	if !status.Valid() {
		return nil, applicationDomain.ErrInvalidStatus
	}

	var application *applicationDomain.MerchantApplication
	err := a.txManager.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		application, err = a.applicationRepo.GetByID(txCtx, applicationID)
		if err != nil {
			return err
		}

		if !application.Status.CanTransitionTo(status) {
			return applicationDomain.ErrInvalidStatusTransition
		}

		if err := a.applicationRepo.UpdateStatus(txCtx, applicationID, status); err != nil {
			return err
		}

		application.Status = status
		application.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return application, nil
}
