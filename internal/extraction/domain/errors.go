package domain

import (
	"github.com/verdantpay/onboarding/internal/errors"
)

// Document extraction error definitions.
var (
	// ErrExtractionNotFound indicates the requested extraction does not exist.
	ErrExtractionNotFound = errors.Wrap(errors.ErrNotFound, "document extraction not found")

	// ErrInvalidDocumentType indicates an unknown document type.
	ErrInvalidDocumentType = errors.Wrap(errors.ErrInvalidInput, "invalid document type")
)
