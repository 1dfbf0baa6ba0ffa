package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

func TestMask(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		fieldType piiDomain.FieldType
		want      string
	}{
		{"ssn with dashes", "123-45-6789", piiDomain.FieldTypeSSN, "***-**-6789"},
		{"ssn digits only", "123456789", piiDomain.FieldTypeSSN, "***-**-6789"},
		{"ssn malformed", "12345", piiDomain.FieldTypeSSN, "***-**-****"},
		{"tax id with dash", "12-3456789", piiDomain.FieldTypeTaxID, "**-****6789"},
		{"tax id digits only", "123456789", piiDomain.FieldTypeTaxID, "**-****6789"},
		{"ein alias", "12-3456789", piiDomain.FieldTypeEIN, "**-****6789"},
		{"tax id malformed", "123", piiDomain.FieldTypeTaxID, "**-*******"},
		{"account number", "9876543210", piiDomain.FieldTypeAccountNumber, "****3210"},
		{"account number with separators", "98-7654-3210", piiDomain.FieldTypeAccountNumber, "****3210"},
		{"account number few digits", "ab1", piiDomain.FieldTypeAccountNumber, "****ab1"},
		{"routing number", "123456789", piiDomain.FieldTypeRoutingNumber, "*****6789"},
		{"dob slash delimited", "01/15/1980", piiDomain.FieldTypeDOB, "**/**/****"},
		{"dob dash delimited", "1980-01-15", piiDomain.FieldTypeDOB, "****-**-**"},
		{"dob no delimiter", "19800115", piiDomain.FieldTypeDOB, "****"},
		{"license number", "D12345678", piiDomain.FieldTypeLicenseNumber, "****5678"},
		{"license number short", "D12", piiDomain.FieldTypeLicenseNumber, "****"},
		{"phone ten digits", "5551234567", piiDomain.FieldTypePhone, "(555) 123-****"},
		{"phone formatted", "(555) 123-4567", piiDomain.FieldTypePhone, "(555) 123-****"},
		{"phone malformed", "12345", piiDomain.FieldTypePhone, "(***) ***-****"},
		{"generic long", "secret-value", piiDomain.FieldTypeGeneric, "****alue"},
		{"generic short", "abcd", piiDomain.FieldTypeGeneric, "****"},
		{"unknown type falls back to generic", "secret-value", piiDomain.FieldType("unknown"), "****alue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Mask(tt.value, tt.fieldType))
		})
	}
}

func TestMask_EmptyInput(t *testing.T) {
	for _, value := range []string{"", "   ", "\t"} {
		assert.Equal(t, "", Mask(value, piiDomain.FieldTypeSSN))
	}
}

func TestMask_NeverRevealsDOBDigits(t *testing.T) {
	for _, value := range []string{"01/15/1980", "1980-01-15", "12/31/2001"} {
		masked := Mask(value, piiDomain.FieldTypeDOB)
		for _, digit := range "0123456789" {
			assert.NotContains(t, masked, string(digit), "input %q", value)
		}
	}
}
