package dto

// ImportLumaRequest carries the lu.ma event URL to import.
type ImportLumaRequest struct {
	URL      string `json:"url"`
	Timezone string `json:"timezone"` // caller's IANA timezone, used when the scrape has none
}

// LumaScrapeResponse is the shape returned by the scrape endpoint.
type LumaScrapeResponse struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	CoverImage   string       `json:"cover_image"`
	StartAt      string       `json:"start_at"` // RFC3339
	EndAt        string       `json:"end_at"`
	Timezone     string       `json:"timezone"`
	LocationType string       `json:"location_type"`
	Location     LumaLocation `json:"location"`
	Tags         []string     `json:"tags"`
	Category     string       `json:"category"`
}

type LumaLocation struct {
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	PlaceID    string   `json:"place_id"`
	URL        string   `json:"url"` // virtual meeting URL when present
}

// ImportedEventResponse is the internal event draft assembled from a scrape.
// Start/end times are local-datetime-input strings in the resolved timezone.
type ImportedEventResponse struct {
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	CoverImage   string           `json:"cover_image"`
	StartTime    string           `json:"start_time"` // 2006-01-02T15:04
	EndTime      string           `json:"end_time"`
	Timezone     string           `json:"timezone"`
	Location     ImportedLocation `json:"location"`
	Tags         []string         `json:"tags"`
	Category     string           `json:"category"`
	SourceURL    string           `json:"source_url"`
}

type ImportedLocation struct {
	Name         string   `json:"name,omitempty"`
	Address      string   `json:"address,omitempty"`
	FullAddress  string   `json:"full_address,omitempty"`
	City         string   `json:"city,omitempty"`
	Country      string   `json:"country,omitempty"`
	PostalCode   string   `json:"postal_code,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	LocationType string   `json:"location_type"`
	PlaceID      string   `json:"place_id,omitempty"`
	IsVirtual    bool     `json:"isVirtual"`
	PlatformName string   `json:"platformName,omitempty"`
}

// LumaImportPayload is the queued async import task payload.
type LumaImportPayload struct {
	URL         string `json:"url"`
	Timezone    string `json:"timezone"`
	OrganizerID string `json:"organizer_id"`
}
