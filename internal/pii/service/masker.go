package service

import (
	"fmt"
	"strings"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

// Mask returns the display-safe masked form of a sensitive value.
//
// Mask is pure and total: it never fails on malformed input, falling back to
// a fully-redacted form instead. Empty or whitespace-only input returns the
// empty string (no mask is produced for absent values). Masking is lossy and
// one-way; it preserves just enough trailing characters for human
// recognition without reconstructing the original.
func Mask(value string, fieldType piiDomain.FieldType) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}

	switch fieldType.Normalize() {
	case piiDomain.FieldTypeSSN:
		return maskSSN(value)
	case piiDomain.FieldTypeTaxID:
		return maskTaxID(value)
	case piiDomain.FieldTypeAccountNumber:
		return maskTrailing(value, "****")
	case piiDomain.FieldTypeRoutingNumber:
		return maskTrailing(value, "*****")
	case piiDomain.FieldTypeDOB:
		return maskDOB(value)
	case piiDomain.FieldTypeLicenseNumber:
		return maskLicense(value)
	case piiDomain.FieldTypePhone:
		return maskPhone(value)
	default:
		return maskGeneric(value)
	}
}

// maskSSN masks a 9-digit Social Security Number as ***-**-1234. Input that
// is not 9 digits is fully redacted.
func maskSSN(value string) string {
	digits := stripNonDigits(value)
	if len(digits) != 9 {
		return "***-**-****"
	}
	return "***-**-" + digits[5:]
}

// maskTaxID masks a 9-digit EIN as **-****6789. Input that is not 9 digits
// is fully redacted.
func maskTaxID(value string) string {
	digits := stripNonDigits(value)
	if len(digits) != 9 {
		return "**-*******"
	}
	return "**-****" + digits[5:]
}

// maskTrailing keeps the last four digits of the value behind the given mask
// prefix. When fewer than four digits remain it falls back to the last four
// characters of the raw value.
func maskTrailing(value, prefix string) string {
	digits := stripNonDigits(value)
	if len(digits) >= 4 {
		return prefix + digits[len(digits)-4:]
	}
	if len(value) > 4 {
		return prefix + value[len(value)-4:]
	}
	return prefix + value
}

// maskDOB fully redacts a date of birth, mirroring the input's delimiter
// style. No digit of the date is ever revealed.
func maskDOB(value string) string {
	switch {
	case strings.Contains(value, "/"):
		return "**/**/****"
	case strings.Contains(value, "-"):
		return "****-**-**"
	default:
		return "****"
	}
}

// maskLicense keeps the last four characters of the raw value. License
// numbers are alphanumeric, so no digit-stripping is applied.
func maskLicense(value string) string {
	if len(value) < 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}

// maskPhone masks a 10-digit phone number as (555) 123-****, keeping the
// area code and exchange. Anything else is fully redacted.
func maskPhone(value string) string {
	digits := stripNonDigits(value)
	if len(digits) != 10 {
		return "(***) ***-****"
	}
	return fmt.Sprintf("(%s) %s-****", digits[:3], digits[3:6])
}

// maskGeneric keeps the last four raw characters when the value is longer
// than four characters.
func maskGeneric(value string) string {
	if len(value) > 4 {
		return "****" + value[len(value)-4:]
	}
	return "****"
}

// stripNonDigits removes every non-digit byte from the value.
func stripNonDigits(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
