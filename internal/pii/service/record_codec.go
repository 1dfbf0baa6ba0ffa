package service

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	apperrors "github.com/verdantpay/onboarding/internal/errors"
	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

// recordCodec implements RecordCodec for a fixed catalog and cipher.
//
// The merchant-application and document-extraction codecs are two instances
// of this one implementation configured with different catalogs, not two
// different algorithms.
type recordCodec struct {
	catalog piiDomain.Catalog
	cipher  FieldCipher
	logger  *slog.Logger
}

// NewRecordCodec creates a record codec bound to a sensitive-field catalog
// and a field cipher.
func NewRecordCodec(
	catalog piiDomain.Catalog,
	cipher FieldCipher,
	logger *slog.Logger,
) RecordCodec {
	return &recordCodec{
		catalog: catalog,
		cipher:  cipher,
		logger:  logger,
	}
}

// Split separates a plaintext record into a masked public projection and an
// encrypted-field map.
//
// Split is the identity transformation on every field not present in the
// catalog. It never mutates the input and preserves record shape exactly:
// same field names, same container lengths, same element field sets. A
// single field encryption failure fails the whole record, so no partially
// protected record can reach storage.
func (c *recordCodec) Split(
	record piiDomain.Record,
) (piiDomain.Record, piiDomain.EncryptedFieldMap, error) {
	public := record.Clone()
	encrypted := piiDomain.EncryptedFieldMap{}

	for field, fieldType := range c.catalog.Fields {
		value, ok := sensitiveString(public[field])
		if !ok {
			continue
		}
		if err := c.protectField(public, encrypted, field, field, value, fieldType); err != nil {
			return nil, nil, err
		}
	}

	for container, subCatalog := range c.catalog.Containers {
		elements, ok := containerElements(public[container])
		if !ok {
			continue
		}
		for idx, element := range elements {
			for field, fieldType := range subCatalog {
				value, ok := sensitiveString(element[field])
				if !ok {
					continue
				}
				path := fieldPath(container, idx, field)
				if err := c.protectField(element, encrypted, path, field, value, fieldType); err != nil {
					return nil, nil, err
				}
			}
		}
	}

	return public, encrypted, nil
}

// protectField encrypts value under path and replaces the target field with
// its masked form.
func (c *recordCodec) protectField(
	target map[string]any,
	encrypted piiDomain.EncryptedFieldMap,
	path, field, value string,
	fieldType piiDomain.FieldType,
) error {
	ciphertext, err := c.cipher.Encrypt(value)
	if err != nil {
		return apperrors.Wrap(err, fmt.Sprintf("failed to encrypt field %q", path))
	}
	encrypted[path] = ciphertext
	target[field] = Mask(value, fieldType)
	return nil
}

// Merge reconstitutes plaintext values into a copy of the public record.
//
// Merge with an empty or nil encrypted map is the identity function, which
// keeps records created before encryption was introduced readable. Per-field
// decryption failures are isolated: the affected field keeps its masked
// public value, the failure is logged and reported, and the rest of the
// record merges normally.
func (c *recordCodec) Merge(
	record piiDomain.Record,
	encrypted piiDomain.EncryptedFieldMap,
) (piiDomain.Record, []FieldError) {
	merged := record.Clone()
	if len(encrypted) == 0 {
		return merged, nil
	}

	var failures []FieldError
	for path, ciphertext := range encrypted {
		if err := c.mergeField(merged, path, ciphertext); err != nil {
			failures = append(failures, FieldError{Path: path, Err: err})
			c.logDecryptionFailure(path, err)
		}
	}

	return merged, failures
}

// mergeField decrypts one encrypted-map entry and writes the plaintext into
// the record at the given field path.
func (c *recordCodec) mergeField(record piiDomain.Record, path, ciphertext string) error {
	plaintext, err := c.cipher.Decrypt(ciphertext)
	if err != nil {
		return err
	}

	parts := strings.Split(path, ".")
	switch len(parts) {
	case 1:
		record[parts[0]] = plaintext
		return nil
	case 3:
		elements, ok := containerElements(record[parts[0]])
		if !ok {
			return apperrors.Wrap(
				piiDomain.ErrMalformedCiphertext,
				fmt.Sprintf("container %q not found", parts[0]),
			)
		}
		idx, err := strconv.Atoi(parts[1])
		if err != nil || idx < 0 || idx >= len(elements) {
			return apperrors.Wrap(
				piiDomain.ErrMalformedCiphertext,
				fmt.Sprintf("container index %q out of range", parts[1]),
			)
		}
		elements[idx][parts[2]] = plaintext
		return nil
	default:
		return apperrors.Wrap(
			piiDomain.ErrMalformedCiphertext,
			fmt.Sprintf("unrecognized field path %q", path),
		)
	}
}

// logDecryptionFailure logs a per-field merge failure. Authentication
// failures are logged at error level as potential security events, distinct
// from ordinary corruption.
func (c *recordCodec) logDecryptionFailure(path string, err error) {
	if c.logger == nil {
		return
	}
	if apperrors.Is(err, piiDomain.ErrAuthenticationFailed) {
		c.logger.Error("field decryption authentication failed",
			slog.String("field_path", path),
			slog.Any("error", err),
		)
		return
	}
	c.logger.Warn("field decryption failed, keeping masked value",
		slog.String("field_path", path),
		slog.Any("error", err),
	)
}

// HasSensitiveData reports whether any catalog field has a non-empty value.
func (c *recordCodec) HasSensitiveData(record piiDomain.Record) bool {
	for field := range c.catalog.Fields {
		if _, ok := sensitiveString(record[field]); ok {
			return true
		}
	}
	for container, subCatalog := range c.catalog.Containers {
		elements, ok := containerElements(record[container])
		if !ok {
			continue
		}
		for _, element := range elements {
			for field := range subCatalog {
				if _, ok := sensitiveString(element[field]); ok {
					return true
				}
			}
		}
	}
	return false
}

// SensitiveValues returns every non-empty sensitive plaintext keyed by field
// path. The result covers exactly the paths Split would encrypt.
func (c *recordCodec) SensitiveValues(record piiDomain.Record) map[string]string {
	values := make(map[string]string)
	for field := range c.catalog.Fields {
		if value, ok := sensitiveString(record[field]); ok {
			values[field] = value
		}
	}
	for container, subCatalog := range c.catalog.Containers {
		elements, ok := containerElements(record[container])
		if !ok {
			continue
		}
		for idx, element := range elements {
			for field := range subCatalog {
				if value, ok := sensitiveString(element[field]); ok {
					values[fieldPath(container, idx, field)] = value
				}
			}
		}
	}
	return values
}

// fieldPath builds the dot-joined path key for a container element field.
// The format is stable: it matches encrypted_fields JSON already persisted.
func fieldPath(container string, index int, field string) string {
	return container + "." + strconv.Itoa(index) + "." + field
}

// sensitiveString extracts a non-empty string value. Non-string values pass
// through unprotected: catalog fields carry PII as strings, and guessing at
// a string form of other types would make encryption eligibility depend on
// value content.
func sensitiveString(v any) (string, bool) {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// containerElements normalizes a repeating sub-record array to a slice of
// mutable element maps. JSON decoding yields []any; callers constructing
// records directly may use []map[string]any.
func containerElements(v any) ([]map[string]any, bool) {
	switch val := v.(type) {
	case []map[string]any:
		return val, true
	case []any:
		elements := make([]map[string]any, 0, len(val))
		for _, item := range val {
			element, ok := item.(map[string]any)
			if !ok {
				return nil, false
			}
			elements = append(elements, element)
		}
		return elements, true
	default:
		return nil, false
	}
}
