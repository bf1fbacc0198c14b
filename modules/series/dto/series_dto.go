package dto

import (
	"time"

	eventdto "sponlink-api/modules/event/dto"
	"sponlink-api/modules/series/entity"
)

type CreateSeriesRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CoverImage  string   `json:"cover_image"`
	EventIDs    []string `json:"event_ids"`
	MainEventID string   `json:"main_event_id"`
	Tags        []string `json:"tags"`
	Featured    bool     `json:"featured"`
}

// SeriesFilter holds the optional list predicates.
type SeriesFilter struct {
	Status string
	Search string
}

type SeriesResponse struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizer_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CoverImage  string    `json:"cover_image"`
	MainEventID string    `json:"main_event_id,omitempty"`
	Status      string    `json:"status"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	EventIDs    []string  `json:"event_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SeriesDetailResponse struct {
	SeriesResponse
	Events []eventdto.EventResponse `json:"events"`
}

func ToSeriesResponse(s *entity.EventSeries, eventIDs []string) *SeriesResponse {
	resp := &SeriesResponse{
		ID:          s.ID.String(),
		OrganizerID: s.OrganizerID.String(),
		Title:       s.Title,
		CoverImage:  s.CoverImage,
		Status:      string(s.Status),
		Tags:        []string(s.Tags),
		Featured:    s.Featured,
		EventIDs:    eventIDs,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Description != nil {
		resp.Description = *s.Description
	}
	if s.MainEventID != nil {
		resp.MainEventID = s.MainEventID.String()
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if resp.EventIDs == nil {
		resp.EventIDs = []string{}
	}
	return resp
}
