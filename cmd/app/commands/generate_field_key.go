package commands

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

// RunGenerateFieldKey generates a cryptographically secure 256-bit field
// encryption key and prints it in the format expected by the
// FIELD_ENCRYPTION_KEY environment variable. Key material is wiped from
// memory after encoding.
//
// For production deployments, wrap the generated key with a KMS key and set
// KMS_KEY_URI plus FIELD_ENCRYPTION_KEY_CIPHERTEXT instead of storing the
// plain key.
func RunGenerateFieldKey(writer io.Writer) error {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate field key: %w", err)
	}
	defer piiDomain.Zero(key)

	hexKey := hex.EncodeToString(key)

	fmt.Fprintln(writer, "# Add to your environment or .env file:")
	fmt.Fprintf(writer, "FIELD_ENCRYPTION_KEY=\"%s\"\n", hexKey)
	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "# For production, wrap the key with KMS and set instead:")
	fmt.Fprintln(writer, "# KMS_KEY_URI=\"gcpkms://...\" (or awskms://, azurekeyvault://, hashivault://)")
	fmt.Fprintln(writer, "# FIELD_ENCRYPTION_KEY_CIPHERTEXT=\"<base64 wrapped key>\"")

	return nil
}
