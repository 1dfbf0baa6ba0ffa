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

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
	"github.com/verdantpay/onboarding/internal/application/http/dto"
	"github.com/verdantpay/onboarding/internal/application/http/mocks"
	applicationUseCase "github.com/verdantpay/onboarding/internal/application/usecase"
)

// setupTestHandler creates a test handler with a mocked use case.
func setupTestHandler(t *testing.T) (*ApplicationHandler, *mocks.MockApplicationUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &mocks.MockApplicationUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewApplicationHandler(mockUseCase, logger), mockUseCase
}

func testApplication() *applicationDomain.MerchantApplication {
	now := time.Now().UTC()
	return &applicationDomain.MerchantApplication{
		ID:                uuid.Must(uuid.NewV7()),
		TenantID:          uuid.Must(uuid.NewV7()),
		LegalBusinessName: "Green Fields LLC",
		DBAName:           "Green Fields",
		Status:            applicationDomain.StatusSubmitted,
		Record: map[string]any{
			"legalBusinessName":  "Green Fields LLC",
			"federalTaxIdNumber": "**-****6789",
		},
		EncryptedFields:  map[string]string{"federalTaxIdNumber": "Y2lwaGVydGV4dA=="},
		HasEncryptedData: true,
		EncryptedAt:      &now,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func TestApplicationHandler_SubmitHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		application := testApplication()

		request := dto.SubmitApplicationRequest{
			TenantID:          application.TenantID.String(),
			LegalBusinessName: "Green Fields LLC",
			DBAName:           "Green Fields",
			Record: map[string]any{
				"legalBusinessName":  "Green Fields LLC",
				"federalTaxIdNumber": "12-3456789",
			},
		}

		mockUseCase.On("Submit", mock.Anything, mock.MatchedBy(func(input applicationUseCase.SubmitApplicationInput) bool {
			return input.TenantID == application.TenantID &&
				input.LegalBusinessName == "Green Fields LLC"
		})).Return(application, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/applications", request)
		handler.SubmitHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.ApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, application.ID.String(), response.ID)
		assert.Equal(t, "submitted", response.Status)
		assert.Equal(t, "**-****6789", response.Record["federalTaxIdNumber"])
		assert.True(t, response.HasEncryptedData)

		// The encrypted-field map must never appear in the payload.
		assert.NotContains(t, w.Body.String(), "Y2lwaGVydGV4dA==")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingTenantID", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.SubmitApplicationRequest{
			LegalBusinessName: "Green Fields LLC",
			Record:            map[string]any{"legalBusinessName": "Green Fields LLC"},
		}

		c, w := createTestContext(http.MethodPost, "/v1/applications", request)
		handler.SubmitHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("Error_MalformedSSNInRecord", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		request := dto.SubmitApplicationRequest{
			TenantID:          uuid.Must(uuid.NewV7()).String(),
			LegalBusinessName: "Green Fields LLC",
			Record: map[string]any{
				"principalOfficers": []any{
					map[string]any{"name": "Jane Smith", "ssn": "not-an-ssn"},
				},
			},
		}

		c, w := createTestContext(http.MethodPost, "/v1/applications", request)
		handler.SubmitHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})
}

func TestApplicationHandler_GetHandler(t *testing.T) {
	t.Run("Success_ReturnsMaskedRecord", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		application := testApplication()

		mockUseCase.On("Get", mock.Anything, application.ID).Return(application, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/applications/"+application.ID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: application.ID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "**-****6789", response.Record["federalTaxIdNumber"])
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		missingID := uuid.Must(uuid.NewV7())

		mockUseCase.On("Get", mock.Anything, missingID).
			Return(nil, applicationDomain.ErrApplicationNotFound).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/applications/"+missingID.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: missingID.String()}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidID", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/applications/not-a-uuid", nil)
		c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}
		handler.GetHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestApplicationHandler_GetSensitiveHandler(t *testing.T) {
	handler, mockUseCase := setupTestHandler(t)
	application := testApplication()
	application.Record = map[string]any{
		"legalBusinessName":  "Green Fields LLC",
		"federalTaxIdNumber": "12-3456789",
	}

	mockUseCase.On("GetWithSensitiveData", mock.Anything, application.ID).
		Return(application, nil).
		Once()

	c, w := createTestContext(http.MethodGet, "/v1/applications/"+application.ID.String()+"/sensitive", nil)
	c.Params = gin.Params{{Key: "id", Value: application.ID.String()}}
	handler.GetSensitiveHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "12-3456789", response.Record["federalTaxIdNumber"])
	mockUseCase.AssertExpectations(t)
}

func TestApplicationHandler_ListHandler(t *testing.T) {
	t.Run("Success_ReturnsTenantApplications", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		application := testApplication()

		mockUseCase.On("List", mock.Anything, application.TenantID, 0, 50).
			Return([]*applicationDomain.MerchantApplication{application}, nil).
			Once()

		c, w := createTestContext(http.MethodGet, "/v1/applications?tenant_id="+application.TenantID.String(), nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListApplicationsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Data, 1)
		assert.Equal(t, application.ID.String(), response.Data[0].ID)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_MissingTenantID", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/applications", nil)
		handler.ListHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApplicationHandler_UpdateStatusHandler(t *testing.T) {
	t.Run("Success_ValidTransition", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		application := testApplication()
		application.Status = applicationDomain.StatusUnderReview

		mockUseCase.On("UpdateStatus", mock.Anything, application.ID, applicationDomain.StatusUnderReview).
			Return(application, nil).
			Once()

		c, w := createTestContext(
			http.MethodPatch,
			"/v1/applications/"+application.ID.String()+"/status",
			dto.UpdateStatusRequest{Status: "under_review"},
		)
		c.Params = gin.Params{{Key: "id", Value: application.ID.String()}}
		handler.UpdateStatusHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ApplicationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "under_review", response.Status)
	})

	t.Run("Error_InvalidTransition", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		applicationID := uuid.Must(uuid.NewV7())

		mockUseCase.On("UpdateStatus", mock.Anything, applicationID, applicationDomain.StatusDraft).
			Return(nil, applicationDomain.ErrInvalidStatusTransition).
			Once()

		c, w := createTestContext(
			http.MethodPatch,
			"/v1/applications/"+applicationID.String()+"/status",
			dto.UpdateStatusRequest{Status: "draft"},
		)
		c.Params = gin.Params{{Key: "id", Value: applicationID.String()}}
		handler.UpdateStatusHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
