package dto

import (
	"time"

	applicationDomain "github.com/verdantpay/onboarding/internal/application/domain"
)

// ApplicationResponse represents a merchant application in API responses.
// Record carries the masked public projection on the standard read path and
// decrypted plaintext only on the sensitive read path. The encrypted-field
// map itself is never exposed.
type ApplicationResponse struct {
	ID                string         `json:"id"`
	TenantID          string         `json:"tenantId"`
	LegalBusinessName string         `json:"legalBusinessName"`
	DBAName           string         `json:"dbaName,omitempty"`
	Status            string         `json:"status"`
	Record            map[string]any `json:"record"`
	HasEncryptedData  bool           `json:"hasEncryptedData"`
	EncryptedAt       *time.Time     `json:"encryptedAt,omitempty"`
	CreatedAt         time.Time      `json:"createdAt"`
	UpdatedAt         time.Time      `json:"updatedAt"`
}

// MapApplicationToResponse converts a domain merchant application to an API
// response.
func MapApplicationToResponse(application *applicationDomain.MerchantApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:                application.ID.String(),
		TenantID:          application.TenantID.String(),
		LegalBusinessName: application.LegalBusinessName,
		DBAName:           application.DBAName,
		Status:            string(application.Status),
		Record:            application.Record,
		HasEncryptedData:  application.HasEncryptedData,
		EncryptedAt:       application.EncryptedAt,
		CreatedAt:         application.CreatedAt,
		UpdatedAt:         application.UpdatedAt,
	}
}

// ListApplicationsResponse represents a paginated list of applications in
// API responses.
type ListApplicationsResponse struct {
	Data []ApplicationResponse `json:"data"`
}

// MapApplicationsToListResponse converts a slice of domain applications to a
// list response.
func MapApplicationsToListResponse(
	applications []*applicationDomain.MerchantApplication,
) ListApplicationsResponse {
	data := make([]ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		data = append(data, MapApplicationToResponse(application))
	}
	return ListApplicationsResponse{Data: data}
}
