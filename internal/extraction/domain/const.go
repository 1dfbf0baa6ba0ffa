package domain

// DocumentType identifies the kind of uploaded document an extraction was
// produced from.
type DocumentType string

const (
	// DocumentTypeDriversLicense is a state-issued driver's license.
	DocumentTypeDriversLicense DocumentType = "drivers_license"
	// DocumentTypeVoidedCheck is a voided check used for bank verification.
	DocumentTypeVoidedCheck DocumentType = "voided_check"
	// DocumentTypeBankStatement is a bank account statement.
	DocumentTypeBankStatement DocumentType = "bank_statement"
	// DocumentTypeTaxDocument is an IRS filing such as a CP-575 or W-9.
	DocumentTypeTaxDocument DocumentType = "tax_document"
)

// Valid reports whether the document type is one of the known kinds.
func (d DocumentType) Valid() bool {
	switch d {
	case DocumentTypeDriversLicense, DocumentTypeVoidedCheck,
		DocumentTypeBankStatement, DocumentTypeTaxDocument:
		return true
	}
	return false
}
