package dto

import (
	"time"

	extractionDomain "github.com/verdantpay/onboarding/internal/extraction/domain"
)

// ExtractionResponse represents a document extraction in API responses.
// Record carries the masked public projection on the standard read path and
// decrypted plaintext only on the sensitive read path. The encrypted-field
// map itself is never exposed.
type ExtractionResponse struct {
	ID               string         `json:"id"`
	ApplicationID    string         `json:"applicationId"`
	TenantID         string         `json:"tenantId"`
	DocumentType     string         `json:"documentType"`
	Record           map[string]any `json:"record"`
	HasEncryptedData bool           `json:"hasEncryptedData"`
	EncryptedAt      *time.Time     `json:"encryptedAt,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// MapExtractionToResponse converts a domain document extraction to an API
// response.
func MapExtractionToResponse(extraction *extractionDomain.DocumentExtraction) ExtractionResponse {
	return ExtractionResponse{
		ID:               extraction.ID.String(),
		ApplicationID:    extraction.ApplicationID.String(),
		TenantID:         extraction.TenantID.String(),
		DocumentType:     string(extraction.DocumentType),
		Record:           extraction.Record,
		HasEncryptedData: extraction.HasEncryptedData,
		EncryptedAt:      extraction.EncryptedAt,
		CreatedAt:        extraction.CreatedAt,
		UpdatedAt:        extraction.UpdatedAt,
	}
}

// ListExtractionsResponse represents a list of extractions in API responses.
type ListExtractionsResponse struct {
	Data []ExtractionResponse `json:"data"`
}

// MapExtractionsToListResponse converts a slice of domain extractions to a
// list response.
func MapExtractionsToListResponse(
	extractions []*extractionDomain.DocumentExtraction,
) ListExtractionsResponse {
	data := make([]ExtractionResponse, 0, len(extractions))
	for _, extraction := range extractions {
		data = append(data, MapExtractionToResponse(extraction))
	}
	return ListExtractionsResponse{Data: data}
}
