// Package http provides HTTP handlers for merchant application onboarding.
// Sensitive form fields are encrypted before they reach storage; the read
// path returns masked values unless the sensitive endpoint is called.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
	"github.com/verdantpay/onboarding/internal/application/http/dto"
	applicationUseCase "github.com/verdantpay/onboarding/internal/application/usecase"
	"github.com/verdantpay/onboarding/internal/httputil"
	customValidation "github.com/verdantpay/onboarding/internal/validation"
)

// ApplicationHandler handles HTTP requests for merchant application
// onboarding operations.
type ApplicationHandler struct {
	applicationUseCase applicationUseCase.ApplicationUseCase
	logger             *slog.Logger
}

// NewApplicationHandler creates a new merchant application handler.
func NewApplicationHandler(
	useCase applicationUseCase.ApplicationUseCase,
	logger *slog.Logger,
) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUseCase: useCase,
		logger:             logger,
	}
}

// SubmitHandler creates a new merchant application.
// POST /v1/applications
// Returns 201 Created with the masked application.
func (h *ApplicationHandler) SubmitHandler(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid tenantId: %w", err), h.logger)
		return
	}

	application, err := h.applicationUseCase.Submit(c.Request.Context(), applicationUseCase.SubmitApplicationInput{
		TenantID:          tenantID,
		LegalBusinessName: req.LegalBusinessName,
		DBAName:           req.DBAName,
		Record:            req.Record,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapApplicationToResponse(application))
}

// GetHandler retrieves a merchant application with masked sensitive fields.
// GET /v1/applications/:id
// Returns 200 OK. No decryption happens on this path.
func (h *ApplicationHandler) GetHandler(c *gin.Context) {
	applicationID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	application, err := h.applicationUseCase.Get(c.Request.Context(), applicationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToResponse(application))
}

// GetSensitiveHandler retrieves a merchant application with decrypted
// sensitive fields merged into the record.
// GET /v1/applications/:id/sensitive
// Returns 200 OK with plaintext values. Access to this route is expected to
// be restricted by deployment-level authorization.
func (h *ApplicationHandler) GetSensitiveHandler(c *gin.Context) {
	applicationID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	application, err := h.applicationUseCase.GetWithSensitiveData(c.Request.Context(), applicationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToResponse(application))
}

// UpdateHandler replaces a merchant application's business data.
// PUT /v1/applications/:id
// Returns 200 OK with the masked application.
func (h *ApplicationHandler) UpdateHandler(c *gin.Context) {
	applicationID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	application, err := h.applicationUseCase.Update(c.Request.Context(), applicationID, applicationUseCase.UpdateApplicationInput{
		LegalBusinessName: req.LegalBusinessName,
		DBAName:           req.DBAName,
		Record:            req.Record,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToResponse(application))
}

// ListHandler lists a tenant's merchant applications, newest first.
// GET /v1/applications?tenant_id=...&offset=0&limit=50
// Returns 200 OK with masked applications.
func (h *ApplicationHandler) ListHandler(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Query("tenant_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid tenant_id parameter: %w", err), h.logger)
		return
	}

	offset, limit, err := httputil.ParsePagination(c)
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	applications, err := h.applicationUseCase.List(c.Request.Context(), tenantID, offset, limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationsToListResponse(applications))
}

// UpdateStatusHandler moves a merchant application through the review
// workflow.
// PATCH /v1/applications/:id/status
// Returns 200 OK with the updated application.
func (h *ApplicationHandler) UpdateStatusHandler(c *gin.Context) {
	applicationID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	application, err := h.applicationUseCase.UpdateStatus(
		c.Request.Context(),
		applicationID,
		applicationDomain.Status(req.Status),
	)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapApplicationToResponse(application))
}

// parseIDParam extracts and parses the :id path parameter.
func (h *ApplicationHandler) parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid application id: %w", err), h.logger)
		return uuid.Nil, false
	}
	return applicationID, true
}
