package dto

import (
	"time"

	"sponlink-api/modules/event/entity"
)

// ===================== Request DTOs =====================

// CreateEventRequest carries the organizer's create-event payload. Every field
// is optional: missing required display fields are silently defaulted rather
// than rejected.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image"`
	StartTime   string   `json:"start_time"` // RFC3339
	EndTime     string   `json:"end_time"`   // RFC3339
	Timezone    string   `json:"timezone"`
	Location    string   `json:"location"` // free text, classified on write
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
}

type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	CoverImage  *string  `json:"cover_image"`
	StartTime   *string  `json:"start_time"`
	EndTime     *string  `json:"end_time"`
	Timezone    *string  `json:"timezone"`
	Location    *string  `json:"location"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
}

type CreatePlanRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Benefits    []string `json:"benefits"`
	MaxSponsors int      `json:"max_sponsors"`
}

type UpdatePlanRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *int64   `json:"price"`
	Benefits    []string `json:"benefits"`
	MaxSponsors *int     `json:"max_sponsors"`
}

// EventFilter holds the optional list predicates.
type EventFilter struct {
	Category string
	Status   string
	Search   string
}

// ===================== Response DTOs =====================

type PlanResponse struct {
	ID              string   `json:"id"`
	EventID         string   `json:"event_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Price           int64    `json:"price"`
	Benefits        []string `json:"benefits"`
	MaxSponsors     int      `json:"max_sponsors"`
	CurrentSponsors int      `json:"current_sponsors"`
}

type LocationResponse struct {
	Name         string   `json:"name,omitempty"`
	Address      string   `json:"address,omitempty"`
	FullAddress  string   `json:"full_address,omitempty"`
	City         string   `json:"city,omitempty"`
	Country      string   `json:"country,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	LocationType string   `json:"location_type"`
	PlaceID      string   `json:"place_id,omitempty"`
	IsVirtual    bool     `json:"isVirtual"`
	PlatformName string   `json:"platformName,omitempty"`
}

type EventResponse struct {
	ID          string           `json:"id"`
	OrganizerID string           `json:"organizer_id"`
	OwnerType   string           `json:"owner_type"`
	Title       string           `json:"title"`
	Slug        string           `json:"slug"`
	Description string           `json:"description,omitempty"`
	CoverImage  string           `json:"cover_image"`
	StartTime   *time.Time       `json:"start_time,omitempty"`
	EndTime     *time.Time       `json:"end_time,omitempty"`
	Timezone    string           `json:"timezone"`
	Location    LocationResponse `json:"location"`
	Status      string           `json:"status"`
	Category    string           `json:"category,omitempty"`
	Tags        []string         `json:"tags"`
	Plans       []PlanResponse   `json:"sponsorship_plans"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type PaginatedEventResponse struct {
	Items      []EventResponse `json:"items"`
	TotalItems int             `json:"total_items"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
}

// ===================== Mapper Functions =====================

func ToPlanResponse(p *entity.SponsorshipPlan) *PlanResponse {
	resp := &PlanResponse{
		ID:              p.ID.String(),
		EventID:         p.EventID.String(),
		Title:           p.Title,
		Price:           p.Price,
		Benefits:        p.Benefits,
		MaxSponsors:     p.MaxSponsors,
		CurrentSponsors: p.CurrentSponsors,
	}
	if p.Description != nil {
		resp.Description = *p.Description
	}
	if resp.Benefits == nil {
		resp.Benefits = []string{}
	}
	return resp
}

func ToEventResponse(e *entity.Event, plans []entity.SponsorshipPlan) *EventResponse {
	resp := &EventResponse{
		ID:          e.ID.String(),
		OrganizerID: e.OrganizerID.String(),
		OwnerType:   string(e.OwnerType),
		Title:       e.Title,
		Slug:        e.Slug,
		CoverImage:  e.CoverImage,
		StartTime:   e.StartTime,
		EndTime:     e.EndTime,
		Timezone:    e.Timezone,
		Status:      string(e.Status),
		Tags:        e.Tags,
		Location: LocationResponse{
			Name:         e.Location.Name,
			Address:      e.Location.Address,
			FullAddress:  e.Location.FullAddress,
			City:         e.Location.City,
			Country:      e.Location.Country,
			Latitude:     e.Location.Latitude,
			Longitude:    e.Location.Longitude,
			LocationType: string(e.Location.LocationType),
			IsVirtual:    e.Location.IsVirtual,
			PlatformName: e.Location.PlatformName,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if e.Description != nil {
		resp.Description = *e.Description
	}
	if e.Category != nil {
		resp.Category = *e.Category
	}
	if e.Location.PlaceID != nil {
		resp.Location.PlaceID = *e.Location.PlaceID
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}

	resp.Plans = make([]PlanResponse, 0, len(plans))
	for i := range plans {
		resp.Plans = append(resp.Plans, *ToPlanResponse(&plans[i]))
	}

	return resp
}
