package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Common US timezone abbreviations mapped to IANA zone names. Coverage is
// deliberately partial: non-US abbreviations fall through to the GMT lookup.
var tzAbbreviations = map[string]string{
	"EST": "America/New_York",
	"EDT": "America/New_York",
	"CST": "America/Chicago",
	"CDT": "America/Chicago",
	"MST": "America/Denver",
	"MDT": "America/Denver",
	"PST": "America/Los_Angeles",
	"PDT": "America/Los_Angeles",
	"AKST": "America/Anchorage",
	"AKDT": "America/Anchorage",
	"HST": "Pacific/Honolulu",
	"UTC": "UTC",
	"GMT": "UTC",
}

// Partial GMT offset table for whole-hour offsets.
var gmtOffsets = map[int]string{
	-10: "Pacific/Honolulu",
	-8:  "America/Los_Angeles",
	-7:  "America/Denver",
	-6:  "America/Chicago",
	-5:  "America/New_York",
	0:   "UTC",
	1:   "Europe/Paris",
	2:   "Europe/Helsinki",
	7:   "Asia/Bangkok",
	8:   "Asia/Singapore",
	9:   "Asia/Tokyo",
}

// ResolveTimezone turns a timezone hint (IANA name, US abbreviation, or a
// "GMT+N"/"GMT-N" string) into a loadable IANA zone name. Unresolvable hints
// return the fallback.
func ResolveTimezone(hint string, fallback string) string {
	trimmed := strings.TrimSpace(hint)
	if trimmed == "" {
		return fallback
	}

	// Abbreviations first: some of them ("EST", "GMT") also exist as legacy
	// zone files and would otherwise load as fixed zones without DST.
	if iana, ok := tzAbbreviations[strings.ToUpper(trimmed)]; ok {
		return iana
	}

	if _, err := time.LoadLocation(trimmed); err == nil {
		return trimmed
	}

	upper := strings.ToUpper(trimmed)
	if rest, found := strings.CutPrefix(upper, "GMT"); found && rest != "" {
		if offset, err := strconv.Atoi(rest); err == nil {
			if iana, ok := gmtOffsets[offset]; ok {
				return iana
			}
		}
	}

	return fallback
}

// ConvertToLocalInput converts an RFC3339 timestamp into the
// datetime-local input format ("2006-01-02T15:04") in the given IANA zone.
func ConvertToLocalInput(timestamp string, timezone string) (string, error) {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp %q: %w", timestamp, err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	return t.In(loc).Format("2006-01-02T15:04"), nil
}
