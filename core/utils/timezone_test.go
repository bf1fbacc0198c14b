package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTimezone(t *testing.T) {
	cases := []struct {
		hint string
		want string
	}{
		{"Asia/Taipei", "Asia/Taipei"},
		{"America/New_York", "America/New_York"},
		{"EST", "America/New_York"},
		{"pst", "America/Los_Angeles"},
		{"GMT+8", "Asia/Singapore"},
		{"GMT-5", "America/New_York"},
		{"GMT", "UTC"},
		{"", "Asia/Taipei"},
		{"Not/AZone", "Asia/Taipei"},
		{"GMT+13", "Asia/Taipei"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ResolveTimezone(tc.hint, "Asia/Taipei"), tc.hint)
	}
}

func TestConvertToLocalInput(t *testing.T) {
	got, err := ConvertToLocalInput("2026-09-12T10:00:00Z", "Asia/Taipei")
	require.NoError(t, err)
	assert.Equal(t, "2026-09-12T18:00", got)

	got, err = ConvertToLocalInput("2026-01-15T00:30:00Z", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2026-01-14T19:30", got)
}

func TestConvertToLocalInputErrors(t *testing.T) {
	_, err := ConvertToLocalInput("yesterday", "Asia/Taipei")
	assert.Error(t, err)

	_, err = ConvertToLocalInput("2026-09-12T10:00:00Z", "Not/AZone")
	assert.Error(t, err)
}
