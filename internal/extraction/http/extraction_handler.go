// Package http provides HTTP handlers for document extraction operations.
// Extractions are the OCR output of uploaded onboarding documents; their
// sensitive fields are encrypted before storage and masked on the standard
// read path.
package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
	"github.com/verdantpay/onboarding/internal/extraction/http/dto"
	extractionUseCase "github.com/verdantpay/onboarding/internal/extraction/usecase"
	"github.com/verdantpay/onboarding/internal/httputil"
	customValidation "github.com/verdantpay/onboarding/internal/validation"
)

// ExtractionHandler handles HTTP requests for document extraction
// operations.
type ExtractionHandler struct {
	extractionUseCase extractionUseCase.ExtractionUseCase
	logger            *slog.Logger
}

// NewExtractionHandler creates a new document extraction handler.
func NewExtractionHandler(
	useCase extractionUseCase.ExtractionUseCase,
	logger *slog.Logger,
) *ExtractionHandler {
	return &ExtractionHandler{
		extractionUseCase: useCase,
		logger:            logger,
	}
}

// ProtectHandler stores a new document extraction with encrypted sensitive
// fields.
// POST /v1/extractions
// Returns 201 Created with the masked extraction.
func (h *ExtractionHandler) ProtectHandler(c *gin.Context) {
	var req dto.ProtectExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	applicationID, err := uuid.Parse(req.ApplicationID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid applicationId: %w", err), h.logger)
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid tenantId: %w", err), h.logger)
		return
	}

	extraction, err := h.extractionUseCase.Protect(c.Request.Context(), extractionUseCase.ProtectExtractionInput{
		ApplicationID: applicationID,
		TenantID:      tenantID,
		DocumentType:  extractionDomain.DocumentType(req.DocumentType),
		Record:        req.Record,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapExtractionToResponse(extraction))
}

// GetHandler retrieves a document extraction with masked sensitive fields.
// GET /v1/extractions/:id
// Returns 200 OK. No decryption happens on this path.
func (h *ExtractionHandler) GetHandler(c *gin.Context) {
	extractionID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	extraction, err := h.extractionUseCase.Get(c.Request.Context(), extractionID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapExtractionToResponse(extraction))
}

// GetSensitiveHandler retrieves a document extraction with decrypted
// sensitive fields merged into the record.
// GET /v1/extractions/:id/sensitive
// Returns 200 OK with plaintext values.
func (h *ExtractionHandler) GetSensitiveHandler(c *gin.Context) {
	extractionID, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	extraction, err := h.extractionUseCase.GetWithSensitiveData(c.Request.Context(), extractionID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapExtractionToResponse(extraction))
}

// ListHandler lists extractions for one merchant application, newest first.
// GET /v1/extractions?application_id=...
// Returns 200 OK with masked extractions.
func (h *ExtractionHandler) ListHandler(c *gin.Context) {
	applicationID, err := uuid.Parse(c.Query("application_id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid application_id parameter: %w", err), h.logger)
		return
	}

	extractions, err := h.extractionUseCase.ListByApplication(c.Request.Context(), applicationID)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapExtractionsToListResponse(extractions))
}

// parseIDParam extracts and parses the :id path parameter.
func (h *ExtractionHandler) parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	extractionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.HandleValidationErrorGin(c, fmt.Errorf("invalid extraction id: %w", err), h.logger)
		return uuid.Nil, false
	}
	return extractionID, true
}
