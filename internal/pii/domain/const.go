package domain

// FieldType classifies the semantic meaning of a sensitive field.
//
// The field type is the single source of truth correlating a field to both its
// encryption eligibility and its masked display format. It is never inferred
// from a field's raw value, only from the static catalog mapping of field name
// to type.
type FieldType string

const (
	// FieldTypeSSN is a US Social Security Number (masked as ***-**-1234).
	FieldTypeSSN FieldType = "ssn"

	// FieldTypeTaxID is a federal tax identifier / EIN (masked as **-****1234).
	FieldTypeTaxID FieldType = "tax_id"

	// FieldTypeEIN is an alias for FieldTypeTaxID kept for catalogs that use
	// the EIN terminology. Masking and encryption behavior are identical.
	FieldTypeEIN FieldType = "ein"

	// FieldTypeAccountNumber is a bank account number (masked as ****1234).
	FieldTypeAccountNumber FieldType = "account_number"

	// FieldTypeRoutingNumber is a 9-digit ABA routing number (masked as *****1234).
	FieldTypeRoutingNumber FieldType = "routing_number"

	// FieldTypeDOB is a date of birth. Masking is fully redacting and mirrors
	// the delimiter style of the input (**/**/**** or ****-**-**).
	FieldTypeDOB FieldType = "dob"

	// FieldTypeLicenseNumber is a government-issued ID or driver's license number.
	FieldTypeLicenseNumber FieldType = "license_number"

	// FieldTypePhone is a phone number (masked as (555) 123-****).
	FieldTypePhone FieldType = "phone"

	// FieldTypeGeneric is the fallback type for sensitive values without a
	// dedicated masking format.
	FieldTypeGeneric FieldType = "generic"
)

// Normalize collapses aliases to their canonical field type.
func (f FieldType) Normalize() FieldType {
	if f == FieldTypeEIN {
		return FieldTypeTaxID
	}
	return f
}
