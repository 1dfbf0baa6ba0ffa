// Package domain defines the core domain models for field-level PII
// protection: sensitive field types, the static sensitive-field catalogs, the
// encrypted-field map persisted alongside masked records, and the field
// encryption key.
package domain

// Catalog is a static mapping that determines which fields of a record are
// sensitive and how each is masked for display.
//
// Fields maps flat field names to their type. Containers maps the name of a
// repeating sub-record array (e.g. "principalOfficers") to a sub-mapping of
// per-element field names.
//
// The catalog is configuration data, not derived at runtime: which fields get
// encrypted is fully determined by the catalog plus value-emptiness, never by
// value content or heuristics. Protecting a new field is a one-line table
// edit here.
type Catalog struct {
	Fields     map[string]FieldType
	Containers map[string]map[string]FieldType
}

// FieldType returns the type of a flat sensitive field.
func (c Catalog) FieldType(field string) (FieldType, bool) {
	t, ok := c.Fields[field]
	return t, ok
}

// ContainerFieldType returns the type of a sensitive field inside the named
// array container.
func (c Catalog) ContainerFieldType(container, field string) (FieldType, bool) {
	sub, ok := c.Containers[container]
	if !ok {
		return "", false
	}
	t, ok := sub[field]
	return t, ok
}

// MerchantApplicationCatalog returns the sensitive-field catalog for merchant
// application records: the applicant's own identifiers and banking details,
// plus per-element fields of the principal officer and beneficial owner
// arrays.
func MerchantApplicationCatalog() Catalog {
	officerFields := func() map[string]FieldType {
		return map[string]FieldType{
			"ssn":                  FieldTypeSSN,
			"dateOfBirth":          FieldTypeDOB,
			"driversLicenseNumber": FieldTypeLicenseNumber,
			"phone":                FieldTypePhone,
		}
	}

	return Catalog{
		Fields: map[string]FieldType{
			"ssn":                  FieldTypeSSN,
			"federalTaxIdNumber":   FieldTypeTaxID,
			"dateOfBirth":          FieldTypeDOB,
			"driversLicenseNumber": FieldTypeLicenseNumber,
			"bankAccountNumber":    FieldTypeAccountNumber,
			"bankRoutingNumber":    FieldTypeRoutingNumber,
			"contactPhone":         FieldTypePhone,
		},
		Containers: map[string]map[string]FieldType{
			"principalOfficers": officerFields(),
			"beneficialOwners":  officerFields(),
		},
	}
}

// DocumentExtractionCatalog returns the sensitive-field catalog for OCR
// document extraction records. Extraction output is flat: one record per
// document, no repeating sub-records.
func DocumentExtractionCatalog() Catalog {
	return Catalog{
		Fields: map[string]FieldType{
			"ssn":           FieldTypeSSN,
			"ein":           FieldTypeEIN,
			"accountNumber": FieldTypeAccountNumber,
			"routingNumber": FieldTypeRoutingNumber,
			"dateOfBirth":   FieldTypeDOB,
			"licenseNumber": FieldTypeLicenseNumber,
			"phone":         FieldTypePhone,
		},
	}
}
