package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectVirtualPlatformKnownHosts(t *testing.T) {
	cases := []struct {
		input    string
		platform string
	}{
		{"https://zoom.us/j/123456789", "Zoom"},
		{"https://us02web.zoom.us/j/123", "Zoom"},
		{"meet.google.com/abc-defg-hij", "Google Meet"},
		{"https://teams.microsoft.com/l/meetup-join/xyz", "Microsoft Teams"},
		{"https://company.webex.com/meet/room", "Webex"},
		{"https://discord.gg/abcdef", "Discord"},
	}

	for _, tc := range cases {
		result := DetectVirtualPlatform(tc.input)
		assert.True(t, result.IsVirtual, tc.input)
		assert.Equal(t, tc.platform, result.PlatformName, tc.input)
	}
}

func TestDetectVirtualPlatformUnknownURLIsStillVirtual(t *testing.T) {
	result := DetectVirtualPlatform("https://my-own-stream.example.com/live")
	assert.True(t, result.IsVirtual)
	assert.Equal(t, "Virtual", result.PlatformName)
}

func TestDetectVirtualPlatformRejectsNonLinks(t *testing.T) {
	cases := []string{
		"",
		"tba",
		"100 Main Street, Springfield",
		"台北市信義區",
		"somewhere downtown",
	}

	for _, input := range cases {
		result := DetectVirtualPlatform(input)
		assert.False(t, result.IsVirtual, input)
		assert.Empty(t, result.PlatformName, input)
	}
}
