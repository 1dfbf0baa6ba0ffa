// Package service implements field-level PII protection: authenticated
// encryption of individual field values, display masking per field type, and
// the record codec that splits a record into a masked public projection and
// an encrypted-field map.
package service

import (
	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

// FieldCipher performs authenticated encryption and decryption of a single
// string value. Implementations are pure and stateless beyond the injected
// key; they are safe for concurrent use without coordination.
type FieldCipher interface {
	// Encrypt encrypts a non-empty plaintext and returns a self-contained,
	// base64-encoded ciphertext. Two encryptions of the same plaintext
	// produce different ciphertexts (a fresh random nonce per call).
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt, verifying the authentication tag. It never
	// returns unverified plaintext.
	Decrypt(ciphertext string) (string, error)

	// IsLikelyCiphertext reports whether a stored value looks like output of
	// Encrypt. Heuristic only (base64-decodable and at least 32 bytes); used
	// to make bulk migration idempotent, not as a security boundary.
	IsLikelyCiphertext(value string) bool
}

// FieldError records a per-field decryption failure during a merge.
type FieldError struct {
	// Path is the field path of the failed entry (e.g. "principalOfficers.0.ssn").
	Path string
	// Err is the decryption error, one of the pii domain error taxonomy.
	Err error
}

// RecordCodec splits records into {masked public projection, encrypted-field
// map} pairs and merges them back. Implementations are pure and stateless;
// the catalog and cipher are fixed at construction.
type RecordCodec interface {
	// Split separates a plaintext record into a masked public record and an
	// encrypted-field map. The input is never mutated. Any single field
	// encryption failure fails the whole record: a field that fails to
	// encrypt must not end up in plaintext in the public record.
	Split(record piiDomain.Record) (piiDomain.Record, piiDomain.EncryptedFieldMap, error)

	// Merge reconstitutes plaintext values into a copy of the public record
	// for every field path present in the encrypted map. Fields without an
	// entry keep their public (masked or pass-through) value, so a merge
	// with an empty map is the identity. Per-field decryption failures are
	// isolated: the field keeps its masked value and the failure is reported
	// in the returned slice.
	Merge(record piiDomain.Record, encrypted piiDomain.EncryptedFieldMap) (piiDomain.Record, []FieldError)

	// HasSensitiveData reports whether at least one catalog field (flat or
	// nested) has a non-empty trimmed value. Cheap: no encryption involved.
	HasSensitiveData(record piiDomain.Record) bool

	// SensitiveValues returns every non-empty sensitive plaintext in the
	// record keyed by field path. Used by the migration runner for checksum
	// verification.
	SensitiveValues(record piiDomain.Record) map[string]string
}
