package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	piiDomain "github.com/verdantpay/onboarding/internal/pii/domain"
)

const testFieldKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newChecksummer(t *testing.T, hexKey string) RecordChecksummer {
	t.Helper()

	key, err := piiDomain.ParseFieldKey(hexKey)
	require.NoError(t, err)

	checksummer, err := NewRecordChecksummer(key)
	require.NoError(t, err)
	return checksummer
}

func TestRecordChecksummer_Sum(t *testing.T) {
	checksummer := newChecksummer(t, testFieldKeyHex)

	values := map[string]string{
		"federalTaxIdNumber":       "12-3456789",
		"principalOfficers.0.ssn":  "123-45-6789",
		"principalOfficers.1.ssn":  "987-65-4321",
		"bankAccountNumber":        "000123456789",
		"principalOfficers.0.name": "Jane Smith",
	}

	first := checksummer.Sum(values)
	second := checksummer.Sum(values)
	assert.Equal(t, first, second, "checksum must be deterministic")
	assert.Len(t, first, 64, "hex-encoded SHA-256 output")

	t.Run("sensitive to value changes", func(t *testing.T) {
		changed := map[string]string{}
		for path, value := range values {
			changed[path] = value
		}
		changed["federalTaxIdNumber"] = "12-3456780"
		assert.NotEqual(t, first, checksummer.Sum(changed))
	})

	t.Run("sensitive to path changes", func(t *testing.T) {
		moved := map[string]string{}
		for path, value := range values {
			moved[path] = value
		}
		delete(moved, "federalTaxIdNumber")
		moved["federalTaxId"] = "12-3456789"
		assert.NotEqual(t, first, checksummer.Sum(moved))
	})

	t.Run("path and value boundaries are unambiguous", func(t *testing.T) {
		a := checksummer.Sum(map[string]string{"ab": "c"})
		b := checksummer.Sum(map[string]string{"a": "bc"})
		assert.NotEqual(t, a, b)
	})

	t.Run("different keys produce different checksums", func(t *testing.T) {
		other := newChecksummer(t, "ffeeddccbbaa99887766554433221100ffeeddccbbaa99887766554433221100")
		assert.NotEqual(t, first, other.Sum(values))
	})
}

func TestRecordChecksummer_Verify(t *testing.T) {
	checksummer := newChecksummer(t, testFieldKeyHex)
	values := map[string]string{"ssn": "123-45-6789"}

	checksum := checksummer.Sum(values)
	assert.True(t, checksummer.Verify(values, checksum))
	assert.False(t, checksummer.Verify(map[string]string{"ssn": "123-45-6780"}, checksum))
	assert.False(t, checksummer.Verify(values, "not-hex"))
	assert.False(t, checksummer.Verify(values, ""))
}

func TestNewRecordChecksummer_NilKey(t *testing.T) {
	_, err := NewRecordChecksummer(nil)
	assert.ErrorIs(t, err, piiDomain.ErrKeyUnavailable)
}
