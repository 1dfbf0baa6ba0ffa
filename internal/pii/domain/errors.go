package domain

import (
	"github.com/verdantpay/onboarding/internal/errors"
)

// PII protection error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors so the
// HTTP layer maps them to status codes uniformly. Configuration faults
// (ErrKeyUnavailable, ErrInvalidKeyFormat) are fatal at startup and must
// prevent the application from serving traffic that needs PII protection.
var (
	// ErrEmptyValue indicates an attempt to encrypt an empty or
	// whitespace-only value. Empty values are never encrypted; callers filter
	// them before invoking the cipher.
	ErrEmptyValue = errors.Wrap(errors.ErrInvalidInput, "cannot encrypt empty value")

	// ErrKeyUnavailable indicates the field encryption key is not configured.
	ErrKeyUnavailable = errors.Wrap(errors.ErrInvalidInput, "field encryption key is not set")

	// ErrInvalidKeyFormat indicates the field encryption key is not exactly
	// 64 hexadecimal characters (32 raw bytes).
	ErrInvalidKeyFormat = errors.Wrap(
		errors.ErrInvalidInput,
		"field encryption key must be 64 hexadecimal characters",
	)

	// ErrMalformedCiphertext indicates a stored value could not be decoded as
	// a valid ciphertext (wrong encoding or truncated data). Recoverable
	// per-field during merge.
	ErrMalformedCiphertext = errors.Wrap(errors.ErrInvalidInput, "malformed ciphertext")

	// ErrAuthenticationFailed indicates the authentication tag did not verify
	// during decryption: tampered ciphertext, wrong key, or corrupted data.
	//
	// Decryption never returns unverified plaintext. Callers should log this
	// error as a potential security event, distinct from ordinary corruption.
	ErrAuthenticationFailed = errors.Wrap(errors.ErrInvalidInput, "ciphertext authentication failed")
)
