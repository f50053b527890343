package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStateToken(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		token, err := GenerateStateToken()
		require.NoError(t, err)
		assert.Len(t, token, 21)
		assert.False(t, seen[token], "token repetido: %s", token)
		seen[token] = true
	}
}

func TestFormatCompactDate(t *testing.T) {
	date, err := ParseDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, "20240301", FormatCompactDate(*date))
}
