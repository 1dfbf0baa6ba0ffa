package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
	"github.com/verdantpay/onboarding/internal/extraction/http/dto"
	"github.com/verdantpay/onboarding/internal/extraction/http/mocks"
	extractionUseCase "github.com/verdantpay/onboarding/internal/extraction/usecase"
)

// setupTestHandler creates a test handler with a mocked use case.
func setupTestHandler(t *testing.T) (*ExtractionHandler, *mocks.MockExtractionUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockExtractionUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewExtractionHandler(mockUseCase, logger), mockUseCase
}

func testExtraction() *extractionDomain.DocumentExtraction {
	now := time.Now().UTC()
	return &extractionDomain.DocumentExtraction{
		ID:            uuid.Must(uuid.NewV7()),
		ApplicationID: uuid.Must(uuid.NewV7()),
		TenantID:      uuid.Must(uuid.NewV7()),
		DocumentType:  extractionDomain.DocumentTypeVoidedCheck,
		Record: map[string]any{
			"bankName":      "First Mountain Bank",
			"accountNumber": "****6789",
		},
		EncryptedFields:  map[string]string{"accountNumber": "Y2lwaGVydGV4dA=="},
		HasEncryptedData: true,
		EncryptedAt:      &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestExtractionHandler_ProtectHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		extraction := testExtraction()

		request := dto.ProtectExtractionRequest{
			ApplicationID: extraction.ApplicationID.String(),
			TenantID:      extraction.TenantID.String(),
			DocumentType:  "voided_check",
			Record: map[string]any{
				"bankName":      "First Mountain Bank",
				"accountNumber": "000123456789",
			},
		}

		mockUseCase.On("Protect", mock.Anything, mock.MatchedBy(func(input extractionUseCase.ProtectExtractionInput) bool {
			return input.ApplicationID == extraction.ApplicationID &&
				input.DocumentType == extractionDomain.DocumentTypeVoidedCheck
		})).Return(extraction, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/extractions", request)
		handler.ProtectHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ExtractionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, extraction.ID.String(), response.ID)
		assert.Equal(t, "voided_check", response.DocumentType)
		assert.Equal(t, "****6789", response.Record["accountNumber"])

		// The encrypted-field map must never appear in the payload.
		assert.NotContains(t, w.Body.String(), "Y2lwaGVydGV4dA==")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingDocumentType", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.ProtectExtractionRequest{
			ApplicationID: uuid.Must(uuid.NewV7()).String(),
			TenantID:      uuid.Must(uuid.NewV7()).String(),
			Record:        map[string]any{"bankName": "First Mountain Bank"},
		}

		c, w := createTestContext(http.MethodPost, "/v1/extractions", request)
		handler.ProtectHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Protect", mock.Anything, mock.Anything)
	})

	t.Run("Error_UnknownDocumentType", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.ProtectExtractionRequest{
			ApplicationID: uuid.Must(uuid.NewV7()).String(),
			TenantID:      uuid.Must(uuid.NewV7()).String(),
			DocumentType:  "selfie",
			Record:        map[string]any{"bankName": "First Mountain Bank"},
		}

		mockUseCase.On("Protect", mock.Anything, mock.Anything).
			Return(nil, extractionDomain.ErrInvalidDocumentType).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/extractions", request)
		handler.ProtectHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestExtractionHandler_GetHandler(t *testing.T) {
	t.Run("Success_ReturnsMaskedRecord", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		extraction := testExtraction()

		mockUseCase.On("Get", mock.Anything, extraction.ID).Return(extraction, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/extractions/"+extraction.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: extraction.ID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ExtractionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "****6789", response.Record["accountNumber"])
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		missingID := uuid.Must(uuid.NewV7())

		mockUseCase.On("Get", mock.Anything, missingID).
			Return(nil, extractionDomain.ErrExtractionNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/extractions/"+missingID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: missingID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestExtractionHandler_GetSensitiveHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)
	extraction := testExtraction()
	extraction.Record = map[string]any{
		"bankName":      "First Mountain Bank",
		"accountNumber": "000123456789",
	}

	mockUseCase.On("GetWithSensitiveData", mock.Anything, extraction.ID).
		Return(extraction, nil).
		Once()

	c, w := createTestContext(http.MethodGet, "/v1/extractions/"+extraction.ID.String()+"/sensitive", nil)
	c.Params = gin.Params{{Key: "id", Value: extraction.ID.String()}}
	handler.GetSensitiveHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ExtractionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "000123456789", response.Record["accountNumber"])
	mockUseCase.AssertExpectations(t)
}

func TestExtractionHandler_ListHandler(t *testing.T) {
	t.Run("Success_ReturnsApplicationExtractions", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		extraction := testExtraction()

		mockUseCase.On("ListByApplication", mock.Anything, extraction.ApplicationID).
			Return([]*extractionDomain.DocumentExtraction{extraction}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/extractions?application_id="+extraction.ApplicationID.String(), nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListExtractionsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, extraction.ID.String(), response.Data[0].ID)
	})

	t.Run("Error_MissingApplicationID", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/extractions", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "ListByApplication", mock.Anything, mock.Anything)
	})
}
