package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Record is a semi-structured, JSON-shaped record: flat fields plus one level
// of repeating sub-records (arrays of objects). It is the unit the record
// codec splits into a masked public projection and an encrypted-field map.
type Record map[string]any

// Clone returns a deep copy of the record. Maps and slices are copied
// recursively; scalar values are shared (strings and numbers are immutable).
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return cloneMap(r)
}

func cloneMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return cloneMap(val)
	case Record:
		return cloneMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(val))
		for i, item := range val {
			out[i] = cloneMap(item)
		}
		return out
	default:
		return v
	}
}

// Value implements driver.Valuer, serializing the record as JSON for storage.
func (r Record) Value() (driver.Value, error) {
	if r == nil {
		return nil, nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal record: %w", err)
	}
	return data, nil
}

// Scan implements sql.Scanner, deserializing a JSON column into the record.
func (r *Record) Scan(src any) error {
	if src == nil {
		*r = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Record", src)
	}

	return json.Unmarshal(data, r)
}
