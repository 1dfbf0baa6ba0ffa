package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptedFieldMap_ValueAndScan(t *testing.T) {
	original := EncryptedFieldMap{
		"federalTaxIdNumber":      "Y2lwaGVydGV4dA==",
		"principalOfficers.0.ssn": "b3RoZXJjaXBoZXJ0ZXh0",
	}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned EncryptedFieldMap
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)
}

func TestEncryptedFieldMap_ScanNil(t *testing.T) {
	scanned := EncryptedFieldMap{"leftover": "value"}
	require.NoError(t, scanned.Scan(nil))
	assert.Nil(t, scanned)
}

func TestEncryptedFieldMap_ScanString(t *testing.T) {
	var scanned EncryptedFieldMap
	require.NoError(t, scanned.Scan(`{"ssn":"abc"}`))
	assert.Equal(t, EncryptedFieldMap{"ssn": "abc"}, scanned)
}

func TestEncryptedFieldMap_ScanUnsupportedType(t *testing.T) {
	var scanned EncryptedFieldMap
	assert.Error(t, scanned.Scan(42))
}

func TestEncryptedFieldMap_ValueNil(t *testing.T) {
	var m EncryptedFieldMap
	value, err := m.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}
