package dto

import (
	"time"

	"sponlink-api/modules/meeting/entity"
)

type ScheduleMeetingRequest struct {
	EventID       string   `json:"event_id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	ProposedTimes []string `json:"proposed_times"` // RFC3339
}

// MeetingFilter narrows the listing. Role is "sponsor" or "organizer";
// empty values match everything.
type MeetingFilter struct {
	Role   string
	Status string
}

type ConfirmMeetingRequest struct {
	ConfirmedTime string `json:"confirmed_time"` // RFC3339
	MeetingLink   string `json:"meeting_link"`
}

type MeetingResponse struct {
	ID            string      `json:"id"`
	SponsorID     string      `json:"sponsor_id"`
	OrganizerID   string      `json:"organizer_id"`
	EventID       string      `json:"event_id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	ProposedTimes []time.Time `json:"proposed_times"`
	ConfirmedTime *time.Time  `json:"confirmed_time,omitempty"`
	MeetingLink   string      `json:"meeting_link,omitempty"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

// MeetingNotifyPayload is the queued notification task payload.
type MeetingNotifyPayload struct {
	MeetingID   string `json:"meeting_id"`
	RecipientID string `json:"recipient_id"`
	Kind        string `json:"kind"` // REQUESTED, CONFIRMED, CANCELLED
}

func ToMeetingResponse(m *entity.Meeting) *MeetingResponse {
	resp := &MeetingResponse{
		ID:            m.ID.String(),
		SponsorID:     m.SponsorID.String(),
		OrganizerID:   m.OrganizerID.String(),
		EventID:       m.EventID.String(),
		Title:         m.Title,
		ProposedTimes: []time.Time(m.ProposedTimes),
		ConfirmedTime: m.ConfirmedTime,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Description != nil {
		resp.Description = *m.Description
	}
	if m.MeetingLink != nil {
		resp.MeetingLink = *m.MeetingLink
	}
	if resp.ProposedTimes == nil {
		resp.ProposedTimes = []time.Time{}
	}
	return resp
}
