package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventStatus represents the lifecycle state of an event.
type EventStatus string

const (
	EventStatusDraft     EventStatus = "DRAFT"
	EventStatusPublished EventStatus = "PUBLISHED"
	EventStatusCancelled EventStatus = "CANCELLED"
	EventStatusCompleted EventStatus = "COMPLETED"
)

// OwnerType identifies what kind of principal owns an event.
type OwnerType string

const (
	OwnerTypeUser OwnerType = "USER"
)

// LocationType classifies how an event location was resolved.
type LocationType string

const (
	LocationTypeVirtual LocationType = "VIRTUAL"
	LocationTypeGoogle  LocationType = "GOOGLE"
	LocationTypeCustom  LocationType = "CUSTOM"
)

// Location is a value object embedded in Event, stored as JSONB.
type Location struct {
	Name         string       `json:"name,omitempty"`
	Address      string       `json:"address,omitempty"`
	FullAddress  string       `json:"full_address,omitempty"`
	City         string       `json:"city,omitempty"`
	Country      string       `json:"country,omitempty"`
	PostalCode   string       `json:"postal_code,omitempty"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	LocationType LocationType `json:"location_type"`
	PlaceID      *string      `json:"place_id,omitempty"`
	IsVirtual    bool         `json:"isVirtual"`
	PlatformName string       `json:"platformName,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

// Event is the aggregate root owning its sponsorship plans.
type Event struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	OrganizerID uuid.UUID      `db:"organizer_id" json:"organizer_id"`
	OwnerType   OwnerType      `db:"owner_type" json:"owner_type"`
	Title       string         `db:"title" json:"title"`
	Slug        string         `db:"slug" json:"slug"`
	Description *string        `db:"description" json:"description,omitempty"`
	CoverImage  string         `db:"cover_image" json:"cover_image"`
	StartTime   *time.Time     `db:"start_time" json:"start_time,omitempty"`
	EndTime     *time.Time     `db:"end_time" json:"end_time,omitempty"`
	Timezone    string         `db:"timezone" json:"timezone"`
	Location    Location       `db:"location" json:"location"`
	Status      EventStatus    `db:"status" json:"status"`
	Category    *string        `db:"category" json:"category,omitempty"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}

// SponsorshipPlan is owned by its parent event; event_id is a back-reference.
type SponsorshipPlan struct {
	ID              uuid.UUID      `db:"id" json:"id"`
	EventID         uuid.UUID      `db:"event_id" json:"event_id"`
	Title           string         `db:"title" json:"title"`
	Description     *string        `db:"description" json:"description,omitempty"`
	Price           int64          `db:"price" json:"price"`
	Benefits        pq.StringArray `db:"benefits" json:"benefits"`
	MaxSponsors     int            `db:"max_sponsors" json:"max_sponsors"`
	CurrentSponsors int            `db:"current_sponsors" json:"current_sponsors"`
	Position        int            `db:"position" json:"position"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}
