package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// VirtualPlatform is the result of classifying a free-text location input.
type VirtualPlatform struct {
	IsVirtual    bool   `json:"isVirtual"`
	PlatformName string `json:"platformName"`
}

type platformRule struct {
	name    string
	pattern *regexp.Regexp
}

// Known meeting platforms matched by hostname. Order matters: first match wins.
var platformRules = []platformRule{
	{"Zoom", regexp.MustCompile(`(^|\.)zoom\.(us|com)$`)},
	{"Google Meet", regexp.MustCompile(`(^|\.)meet\.google\.com$`)},
	{"Microsoft Teams", regexp.MustCompile(`(^|\.)teams\.(microsoft|live)\.com$`)},
	{"Webex", regexp.MustCompile(`(^|\.)webex\.com$`)},
	{"Skype", regexp.MustCompile(`(^|\.)skype\.com$`)},
	{"Discord", regexp.MustCompile(`(^|\.)discord\.(gg|com)$`)},
	{"Slack", regexp.MustCompile(`(^|\.)slack\.com$`)},
}

// addressLike catches inputs that start like a street address ("123 Main St").
var addressLike = regexp.MustCompile(`^\d+\s+\S+`)

// DetectVirtualPlatform classifies a location string as a virtual-meeting link.
// This is a best-effort heuristic: short strings, strings without a dot, and
// address-like strings are rejected before URL parsing; any other parseable URL
// counts as virtual even when the platform is unknown.
func DetectVirtualPlatform(text string) VirtualPlatform {
	trimmed := strings.TrimSpace(text)

	if len(trimmed) < 4 || !strings.Contains(trimmed, ".") || addressLike.MatchString(trimmed) {
		return VirtualPlatform{}
	}

	candidate := trimmed
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}

	parsed, err := url.Parse(candidate)
	if err != nil || parsed.Hostname() == "" || strings.ContainsAny(parsed.Hostname(), " ,") {
		return VirtualPlatform{}
	}

	host := strings.ToLower(parsed.Hostname())
	if !strings.Contains(host, ".") {
		return VirtualPlatform{}
	}

	for _, rule := range platformRules {
		if rule.pattern.MatchString(host) {
			return VirtualPlatform{IsVirtual: true, PlatformName: rule.name}
		}
	}

	// Parseable URL but unknown host: still treated as a virtual location.
	return VirtualPlatform{IsVirtual: true, PlatformName: "Virtual"}
}
