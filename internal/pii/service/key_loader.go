package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// KeyLoader resolves the field encryption key from configuration at process
// start.
//
// Two sources are supported:
//   - A plain 64-hex key (development and test deployments).
//   - A KMS-wrapped key: a base64 ciphertext unwrapped once through a
//     gocloud.dev secrets keeper (gcpkms://, awskms://, azurekeyvault://,
//     hashivault://, base64key://). The unwrapped value must be the same
//     64-hex format.
//
// This is deployment plumbing, not key management: there is no rotation, no
// key versioning, and a single key for the whole process lifetime.
type KeyLoader interface {
	// LoadPlain parses a hex-encoded key supplied directly by configuration.
	LoadPlain(hexKey string) (*piiDomain.FieldKey, error)

	// LoadFromKMS unwraps a base64-encoded, KMS-encrypted key via the keeper
	// at keyURI and parses the result.
	LoadFromKMS(ctx context.Context, keyURI, wrappedKey string) (*piiDomain.FieldKey, error)
}

type keyLoader struct{}

// NewKeyLoader creates a key loader backed by gocloud.dev secrets keepers.
func NewKeyLoader() KeyLoader {
	return &keyLoader{}
}

// LoadPlain parses a hex-encoded field key.
func (l *keyLoader) LoadPlain(hexKey string) (*piiDomain.FieldKey, error) {
	return piiDomain.ParseFieldKey(hexKey)
}

// LoadFromKMS unwraps and parses a KMS-wrapped field key.
func (l *keyLoader) LoadFromKMS(
	ctx context.Context,
	keyURI, wrappedKey string,
) (*piiDomain.FieldKey, error) {
	if wrappedKey == "" {
		return nil, piiDomain.ErrKeyUnavailable
	}

	ciphertext, err := base64.StdEncoding.DecodeString(wrappedKey)
	if err != nil {
		return nil, fmt.Errorf("%w: wrapped key is not valid base64: %v", piiDomain.ErrInvalidKeyFormat, err)
	}

	keeper, err := secrets.OpenKeeper(ctx, keyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer keeper.Close()

	hexKey, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap field key: %w", err)
	}
	defer piiDomain.Zero(hexKey)

	return piiDomain.ParseFieldKey(string(hexKey))
}
