// Package dto provides data transfer objects for merchant application HTTP
// request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/verdantpay/onboarding/internal/validation"
)

// SubmitApplicationRequest contains the parameters for submitting a new
// merchant application. Record is the full onboarding form; sensitive values
// arrive in plaintext and are encrypted before storage.
type SubmitApplicationRequest struct {
	TenantID          string         `json:"tenantId" binding:"required"`
	LegalBusinessName string         `json:"legalBusinessName" binding:"required"`
	DBAName           string         `json:"dbaName"`
	Record            map[string]any `json:"record" binding:"required"`
}

// Validate checks if the submit application request is valid.
func (r *SubmitApplicationRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required),
		validation.Field(&r.LegalBusinessName, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.DBAName, validation.Length(0, 255)),
		validation.Field(&r.Record, validation.Required),
	); err != nil {
		return err
	}
	return validateRecordFormats(r.Record)
}

// UpdateApplicationRequest contains a full replacement of an application's
// business data.
type UpdateApplicationRequest struct {
	LegalBusinessName string         `json:"legalBusinessName" binding:"required"`
	DBAName           string         `json:"dbaName"`
	Record            map[string]any `json:"record" binding:"required"`
}

// Validate checks if the update application request is valid.
func (r *UpdateApplicationRequest) Validate() error {
	if err := validation.ValidateStruct(r,
		validation.Field(&r.LegalBusinessName, validation.Required, customValidation.NotBlank, validation.Length(1, 255)),
		validation.Field(&r.DBAName, validation.Length(0, 255)),
		validation.Field(&r.Record, validation.Required),
	); err != nil {
		return err
	}
	return validateRecordFormats(r.Record)
}

// UpdateStatusRequest contains the parameters for moving an application
// through the review workflow.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Validate checks if the update status request is valid.
func (r *UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Status, validation.Required),
	)
}

// recordFieldRules maps well-known record field names to their format rules.
// Formats are only checked when the field is present and a string; masking
// and encryption never depend on them.
var recordFieldRules = map[string]validation.Rule{
	"federalTaxIdNumber": customValidation.EIN,
	"ssn":                customValidation.SSN,
	"bankAccountNumber":  customValidation.BankAccountNumber,
	"bankRoutingNumber":  customValidation.RoutingNumber,
	"contactPhone":       customValidation.USPhone,
	"contactEmail":       customValidation.Email,
}

// officerFieldRules maps officer and owner field names to their format rules.
var officerFieldRules = map[string]validation.Rule{
	"ssn":   customValidation.SSN,
	"phone": customValidation.USPhone,
}

// validateRecordFormats checks PII field formats inside the free-form record.
func validateRecordFormats(record map[string]any) error {
	for field, rule := range recordFieldRules {
		if s, ok := record[field].(string); ok {
			if err := validation.Validate(s, rule); err != nil {
				return validation.NewError("validation_record_field", field+": "+err.Error())
			}
		}
	}

	for _, container := range []string{"principalOfficers", "beneficialOwners"} {
		elements, ok := record[container].([]any)
		if !ok {
			continue
		}
		for _, element := range elements {
			officer, ok := element.(map[string]any)
			if !ok {
				continue
			}
			for field, rule := range officerFieldRules {
				if s, ok := officer[field].(string); ok {
					if err := validation.Validate(s, rule); err != nil {
						return validation.NewError(
							"validation_record_field",
							container+"."+field+": "+err.Error(),
						)
					}
				}
			}
		}
	}

	return nil
}
