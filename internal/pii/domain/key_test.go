package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFieldKey(t *testing.T) {
	t.Run("valid key", func(t *testing.T) {
		key, err := ParseFieldKey(strings.Repeat("ab", 32))
		require.NoError(t, err)
		assert.Len(t, key.Bytes(), 32)
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		key, err := ParseFieldKey("  " + strings.Repeat("ab", 32) + "\n")
		require.NoError(t, err)
		assert.Len(t, key.Bytes(), 32)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := ParseFieldKey("")
		assert.ErrorIs(t, err, ErrKeyUnavailable)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := ParseFieldKey(strings.Repeat("ab", 16))
		assert.ErrorIs(t, err, ErrInvalidKeyFormat)
	})

	t.Run("not hexadecimal", func(t *testing.T) {
		_, err := ParseFieldKey(strings.Repeat("zz", 32))
		assert.ErrorIs(t, err, ErrInvalidKeyFormat)
	})
}

func TestFieldKey_Close(t *testing.T) {
	key, err := ParseFieldKey(strings.Repeat("ab", 32))
	require.NoError(t, err)

	key.Close()
	assert.Nil(t, key.Bytes())
}
