package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	SystemRoleUser  = "USER"
	SystemRoleAdmin = "ADMIN"
)

// User is an account holder. Password is stored as salt$hash
// (PBKDF2-SHA512); it is empty for accounts created through OAuth.
type User struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Email             string    `db:"email" json:"email"`
	Name              string    `db:"name" json:"name"`
	Password          string    `db:"password" json:"-"`
	SystemRole        string    `db:"system_role" json:"system_role"`
	PreferredLanguage string    `db:"preferred_language" json:"preferred_language"`
	AvatarURL         *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// OAuthState is a short-lived CSRF token for the Google login round trip.
type OAuthState struct {
	State     string    `db:"state"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// SocialLogin links a user to an external identity provider account.
type SocialLogin struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	Provider       string    `db:"provider"`
	ProviderUserID string    `db:"provider_user_id"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
