// Package dto provides data transfer objects for document extraction HTTP
// request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"
)

// ProtectExtractionRequest contains an OCR result to be protected and
// stored. Sensitive values arrive in plaintext and are encrypted before
// storage.
type ProtectExtractionRequest struct {
	ApplicationID string         `json:"applicationId" binding:"required"`
	TenantID      string         `json:"tenantId" binding:"required"`
	DocumentType  string         `json:"documentType" binding:"required"`
	Record        map[string]any `json:"record" binding:"required"`
}

// Validate checks if the protect extraction request is valid.
func (r *ProtectExtractionRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ApplicationID, validation.Required),
		validation.Field(&r.TenantID, validation.Required),
		validation.Field(&r.DocumentType, validation.Required),
		validation.Field(&r.Record, validation.Required),
	)
}
