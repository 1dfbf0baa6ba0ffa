package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

const (
	// nonceSize is the per-encryption random nonce length in bytes.
	nonceSize = 16
	// tagSize is the GCM authentication tag length in bytes.
	tagSize = 16
)

// AESFieldCipher implements FieldCipher using AES-256-GCM.
//
// Wire format: base64(nonce ‖ tag ‖ ciphertext body), with a 16-byte nonce
// and a 16-byte tag. The byte order is load-bearing: Decrypt slices by fixed
// offsets rather than parsing a self-describing envelope, and the format must
// stay stable for ciphertexts already persisted in encrypted_fields columns.
//
// Thread safety: the cipher is stateless beyond the key and safe for any
// number of concurrent callers; every call draws a fresh random nonce and
// touches no shared mutable state.
type AESFieldCipher struct {
	aead cipher.AEAD
}

// NewAESFieldCipher creates a field cipher from the process-wide field key.
//
// Returns ErrKeyUnavailable when no key is provided. The key length is
// enforced at parse time (piiDomain.ParseFieldKey), so a non-nil key is
// always 32 bytes here.
func NewAESFieldCipher(key *piiDomain.FieldKey) (*AESFieldCipher, error) {
	if key == nil || len(key.Bytes()) == 0 {
		return nil, piiDomain.ErrKeyUnavailable
	}

	block, err := aes.NewCipher(key.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", piiDomain.ErrInvalidKeyFormat, err)
	}

	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &AESFieldCipher{aead: aead}, nil
}

// Encrypt encrypts a non-empty plaintext value.
//
// Returns ErrEmptyValue for empty or whitespace-only input; empty values are
// never encrypted and never appear in an encrypted-field map.
func (c *AESFieldCipher) Encrypt(plaintext string) (string, error) {
	if strings.TrimSpace(plaintext) == "" {
		return "", piiDomain.ErrEmptyValue
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Seal appends the tag to the ciphertext body; the wire format wants
	// nonce, then tag, then body.
	sealed := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	body := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	out := make([]byte, 0, nonceSize+tagSize+len(body))
	out = append(out, nonce...)
	out = append(out, tag...)
	out = append(out, body...)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Decrypt decrypts a ciphertext produced by Encrypt, verifying the
// authentication tag.
//
// Returns ErrMalformedCiphertext when the input is not base64 or is shorter
// than nonce+tag, and ErrAuthenticationFailed when the tag does not verify
// (tampered ciphertext, wrong key, or corrupted data).
func (c *AESFieldCipher) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", piiDomain.ErrMalformedCiphertext, err)
	}
	if len(raw) < nonceSize+tagSize {
		return "", fmt.Errorf(
			"%w: %d bytes, need at least %d",
			piiDomain.ErrMalformedCiphertext,
			len(raw),
			nonceSize+tagSize,
		)
	}

	nonce := raw[:nonceSize]
	tag := raw[nonceSize : nonceSize+tagSize]
	body := raw[nonceSize+tagSize:]

	// Open expects the tag appended to the body.
	sealed := make([]byte, 0, len(body)+tagSize)
	sealed = append(sealed, body...)
	sealed = append(sealed, tag...)

	plaintext, err := c.aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", piiDomain.ErrAuthenticationFailed
	}

	return string(plaintext), nil
}

// IsLikelyCiphertext reports whether a value decodes as base64 to at least 32
// bytes, the minimum size of a valid ciphertext.
//
// This is a heuristic, not a cryptographic check: a sufficiently long
// plaintext that happens to be valid base64 will false-positive. The bulk
// migration runner documents that limitation; fixing it would need a
// per-field encrypted flag in the schema.
func (c *AESFieldCipher) IsLikelyCiphertext(value string) bool {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return false
	}
	return len(raw) >= nonceSize+tagSize
}
