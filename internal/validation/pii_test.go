package validation

import (
	"testing"

	validation "github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
)

func TestSSN(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"dashed", "123-45-6789", false},
		{"bare digits", "123456789", false},
		{"empty passes through", "", false},
		{"too short", "123-45-678", true},
		{"letters", "123-45-67ab", true},
		{"misplaced dashes", "12-345-6789", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.Validate(tt.value, SSN)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEIN(t *testing.T) {
	assert.NoError(t, validation.Validate("12-3456789", EIN))
	assert.NoError(t, validation.Validate("123456789", EIN))
	assert.Error(t, validation.Validate("1-23456789", EIN))
	assert.Error(t, validation.Validate("12-345678", EIN))
}

func TestRoutingNumber(t *testing.T) {
	// 021000021 is a well-known valid ABA number (JPMorgan Chase).
	assert.NoError(t, validation.Validate("021000021", RoutingNumber))
	assert.Error(t, validation.Validate("021000022", RoutingNumber), "bad checksum")
	assert.Error(t, validation.Validate("12345678", RoutingNumber), "too short")
	assert.Error(t, validation.Validate("12345678a", RoutingNumber), "non-digit")
}

func TestBankAccountNumber(t *testing.T) {
	assert.NoError(t, validation.Validate("000123456789", BankAccountNumber))
	assert.Error(t, validation.Validate("123", BankAccountNumber), "too short")
	assert.Error(t, validation.Validate("123456789012345678", BankAccountNumber), "too long")
	assert.Error(t, validation.Validate("12345abc", BankAccountNumber), "non-digit")
}

func TestUSPhone(t *testing.T) {
	assert.NoError(t, validation.Validate("(303) 555-0142", USPhone))
	assert.NoError(t, validation.Validate("303-555-0142", USPhone))
	assert.NoError(t, validation.Validate("3035550142", USPhone))
	assert.Error(t, validation.Validate("555-0142", USPhone), "too few digits")
}
