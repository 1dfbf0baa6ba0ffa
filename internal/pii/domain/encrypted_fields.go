package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EncryptedFieldMap maps a field path to the ciphertext of that field's
// original plaintext value.
//
// A field path is either a bare field name ("federalTaxIdNumber") or a
// dot-joined container path ("principalOfficers.0.ssn") for array elements.
// The string-path key format is load-bearing: it is the on-the-wire format of
// the persisted encrypted_fields column and must stay stable across releases.
//
// Invariants:
//   - Every key corresponds to a field that had a non-empty plaintext value
//     at encryption time; empty values never appear as keys.
//   - After a split, this map is the only place the original plaintext of a
//     protected field exists; the companion public record holds only the
//     masked projection.
type EncryptedFieldMap map[string]string

// Value implements driver.Valuer, serializing the map as a JSON object.
func (m EncryptedFieldMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal encrypted fields: %w", err)
	}
	return data, nil
}

// Scan implements sql.Scanner, deserializing a JSON column into the map.
func (m *EncryptedFieldMap) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into EncryptedFieldMap", src)
	}

	return json.Unmarshal(data, m)
}
