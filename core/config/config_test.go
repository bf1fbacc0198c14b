package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReturnsSameResultOnEveryCall(t *testing.T) {
	first, firstErr := Load()
	second, secondErr := Load()

	// The singleton and its load error must be stable across calls. A second
	// call after a failed first one reports that failure instead of (nil, nil).
	require.Equal(t, firstErr, secondErr)
	assert.Same(t, first, second)

	require.NoError(t, firstErr)
	require.NotNil(t, first)
	assert.Greater(t, first.JWT.RefreshExpireMins, 0)
}
