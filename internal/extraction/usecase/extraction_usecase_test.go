package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/verdantpay/onboarding/internal/database/mocks"
	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
	extractionUsecaseMocks "github.com/verdantpay/onboarding/internal/extraction/usecase/mocks"
	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
	piiService "github.com/verdantpay/onboarding/internal/pii/service"
)

const testFieldKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCodec(t *testing.T) (piiService.RecordCodec, piiService.FieldCipher) {
	t.Helper()

	key, err := piiDomain.ParseFieldKey(testFieldKeyHex)
	require.NoError(t, err)

	cipher, err := piiService.NewAESFieldCipher(key)
	require.NoError(t, err)

	codec := piiService.NewRecordCodec(piiDomain.DocumentExtractionCatalog(), cipher, testLogger())
	return codec, cipher
}

func voidedCheckRecord() piiDomain.Record {
	return piiDomain.Record{
		"bankName":      "First Mountain Bank",
		"accountNumber": "000123456789",
		"routingNumber": "021000021",
	}
}

func TestExtractionUseCase_Protect(t *testing.T) {
	ctx := context.Background()

	t.Run("encrypts extracted fields before persisting", func(t *testing.T) {
		codec, cipher := testCodec(t)
		mockRepo := &extractionUsecaseMocks.MockExtractionRepository{}

		var created *extractionDomain.DocumentExtraction
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.DocumentExtraction")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*extractionDomain.DocumentExtraction)
			}).
			Return(nil).
			Once()

		uc := NewExtractionUseCase(databaseMocks.PassthroughTxManager{}, mockRepo, codec, testLogger())

		extraction, err := uc.Protect(ctx, ProtectExtractionInput{
			ApplicationID: uuid.Must(uuid.NewV7()),
			TenantID:      uuid.Must(uuid.NewV7()),
			DocumentType:  extractionDomain.DocumentTypeVoidedCheck,
			Record:        voidedCheckRecord(),
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, extraction, created)

		assert.True(t, created.HasEncryptedData)
		assert.Equal(t, "****6789", created.Record["accountNumber"])
		assert.Equal(t, "*****0021", created.Record["routingNumber"])
		assert.Equal(t, "First Mountain Bank", created.Record["bankName"])

		plaintext, err := cipher.Decrypt(created.EncryptedFields["accountNumber"])
		require.NoError(t, err)
		assert.Equal(t, "000123456789", plaintext)

		mockRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown document type", func(t *testing.T) {
		codec, _ := testCodec(t)
		mockRepo := &extractionUsecaseMocks.MockExtractionRepository{}

		uc := NewExtractionUseCase(databaseMocks.PassthroughTxManager{}, mockRepo, codec, testLogger())

		_, err := uc.Protect(ctx, ProtectExtractionInput{
			ApplicationID: uuid.Must(uuid.NewV7()),
			DocumentType:  extractionDomain.DocumentType("selfie"),
			Record:        voidedCheckRecord(),
		})
		assert.ErrorIs(t, err, extractionDomain.ErrInvalidDocumentType)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestExtractionUseCase_GetWithSensitiveData(t *testing.T) {
	ctx := context.Background()
	codec, _ := testCodec(t)

	publicRecord, encryptedFields, err := codec.Split(voidedCheckRecord())
	require.NoError(t, err)

	stored := &extractionDomain.DocumentExtraction{
		ID:               uuid.Must(uuid.NewV7()),
		ApplicationID:    uuid.Must(uuid.NewV7()),
		DocumentType:     extractionDomain.DocumentTypeVoidedCheck,
		Record:           publicRecord,
		EncryptedFields:  encryptedFields,
		HasEncryptedData: true,
	}

	mockRepo := &extractionUsecaseMocks.MockExtractionRepository{}
	mockRepo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil).Once()

	uc := NewExtractionUseCase(databaseMocks.PassthroughTxManager{}, mockRepo, codec, testLogger())

	extraction, err := uc.GetWithSensitiveData(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "000123456789", extraction.Record["accountNumber"])
	assert.Equal(t, "021000021", extraction.Record["routingNumber"])
	mockRepo.AssertExpectations(t)
}

func TestExtractionUseCase_ListByApplication(t *testing.T) {
	ctx := context.Background()
	codec, _ := testCodec(t)
	applicationID := uuid.Must(uuid.NewV7())

	expected := []*extractionDomain.DocumentExtraction{
		{ID: uuid.Must(uuid.NewV7()), ApplicationID: applicationID},
	}

	mockRepo := &extractionUsecaseMocks.MockExtractionRepository{}
	mockRepo.On("ListByApplication", mock.Anything, applicationID).Return(expected, nil).Once()

	uc := NewExtractionUseCase(databaseMocks.PassthroughTxManager{}, mockRepo, codec, testLogger())

	extractions, err := uc.ListByApplication(ctx, applicationID)
	require.NoError(t, err)
	assert.Equal(t, expected, extractions)
	mockRepo.AssertExpectations(t)
}
