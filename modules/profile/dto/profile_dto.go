package dto

import (
	"time"

	"sponlink-api/modules/profile/entity"

	"github.com/google/uuid"
)

// UpdateProfileRequest carries partial updates. Nil fields are left untouched.
type UpdateProfileRequest struct {
	Bio              *string                `json:"bio"`
	ContactEmail     *string                `json:"contact_email"`
	Phone            *string                `json:"phone"`
	Website          *string                `json:"website"`
	OrganizerProfile map[string]interface{} `json:"organizer_profile"`
	SponsorProfile   map[string]interface{} `json:"sponsor_profile"`
}

type ProfileResponse struct {
	UserID           uuid.UUID              `json:"user_id"`
	Bio              *string                `json:"bio,omitempty"`
	ContactEmail     *string                `json:"contact_email,omitempty"`
	Phone            *string                `json:"phone,omitempty"`
	Website          *string                `json:"website,omitempty"`
	OrganizerProfile map[string]interface{} `json:"organizer_profile,omitempty"`
	SponsorProfile   map[string]interface{} `json:"sponsor_profile,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// UpdateSettingsRequest carries partial updates. Nil fields are left untouched.
type UpdateSettingsRequest struct {
	EmailNotifications *bool   `json:"email_notifications"`
	PushNotifications  *bool   `json:"push_notifications"`
	Timezone           *string `json:"timezone"`
	Language           *string `json:"language"`
}

type SettingsResponse struct {
	UserID             uuid.UUID `json:"user_id"`
	EmailNotifications bool      `json:"email_notifications"`
	PushNotifications  bool      `json:"push_notifications"`
	Timezone           string    `json:"timezone"`
	Language           string    `json:"language"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToSettingsResponse(s *entity.UserSettings) *SettingsResponse {
	return &SettingsResponse{
		UserID:             s.UserID,
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		Timezone:           s.Timezone,
		Language:           s.Language,
		UpdatedAt:          s.UpdatedAt,
	}
}

func ToProfileResponse(p *entity.UserProfile) *ProfileResponse {
	return &ProfileResponse{
		UserID:           p.UserID,
		Bio:              p.Bio,
		ContactEmail:     p.ContactEmail,
		Phone:            p.Phone,
		Website:          p.Website,
		OrganizerProfile: p.OrganizerProfile,
		SponsorProfile:   p.SponsorProfile,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
