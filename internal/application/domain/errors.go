package domain

import (
	"github.com/verdantpay/onboarding/internal/errors"
)

// Merchant application error definitions.
var (
	// ErrApplicationNotFound indicates the requested application does not exist.
	ErrApplicationNotFound = errors.Wrap(errors.ErrNotFound, "merchant application not found")

	// ErrInvalidStatus indicates an unknown review workflow status.
	ErrInvalidStatus = errors.Wrap(errors.ErrInvalidInput, "invalid application status")

	// ErrInvalidStatusTransition indicates a review workflow move that is not
	// allowed from the application's current status.
	ErrInvalidStatusTransition = errors.Wrap(
		errors.ErrInvalidInput,
		"invalid application status transition",
	)
)
