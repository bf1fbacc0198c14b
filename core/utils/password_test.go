package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	stored, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)

	salt, hash, found := strings.Cut(stored, "$")
	require.True(t, found)
	assert.NotEmpty(t, salt)
	assert.NotEmpty(t, hash)

	assert.True(t, ComparePassword(stored, "correct horse battery staple"))
	assert.False(t, ComparePassword(stored, "wrong password"))
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	a, err := HashPassword("same password")
	require.NoError(t, err)
	b, err := HashPassword("same password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestComparePasswordFailsClosed(t *testing.T) {
	cases := []string{
		"",
		"no-separator",
		"$hashwithoutsalt",
		"saltwithouthash$",
		"salt$not-hex!!",
	}

	for _, stored := range cases {
		assert.False(t, ComparePassword(stored, "anything"), stored)
	}
}
