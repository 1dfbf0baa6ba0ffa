package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// FieldKeyHexLength is the required length of the configured field encryption
// key: 64 hexadecimal characters encoding 32 raw bytes (256 bits).
const FieldKeyHexLength = 64

// FieldKey is the process-wide symmetric key for field-level PII encryption.
//
// The key is resolved once from configuration at process start and injected
// into the field cipher via its constructor. It is effectively immutable after
// construction; tests substitute a deterministic key without mutating shared
// process state.
//
// Key rotation and multi-key versioning are not implemented: every ciphertext
// in the encrypted_fields column is decryptable with this single key.
type FieldKey struct {
	key []byte
}

// ParseFieldKey parses a hex-encoded field encryption key.
//
// Returns ErrKeyUnavailable if the value is empty and ErrInvalidKeyFormat if
// it is not exactly 64 hexadecimal characters. Failing fast here keeps a
// misconfigured deployment from serving traffic that needs PII protection.
func ParseFieldKey(hexKey string) (*FieldKey, error) {
	hexKey = strings.TrimSpace(hexKey)
	if hexKey == "" {
		return nil, ErrKeyUnavailable
	}
	if len(hexKey) != FieldKeyHexLength {
		return nil, fmt.Errorf("%w: got %d characters", ErrInvalidKeyFormat, len(hexKey))
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyFormat, err)
	}

	return &FieldKey{key: key}, nil
}

// Bytes returns the raw 32-byte key material.
func (k *FieldKey) Bytes() []byte {
	return k.key
}

// Close zeroes the key material. The key must not be used afterwards.
func (k *FieldKey) Close() {
	Zero(k.key)
	k.key = nil
}
