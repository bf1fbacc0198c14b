package dto

import (
	"time"

	"sponlink-api/modules/auth/entity"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	Name              string `json:"name"`
	PreferredLanguage string `json:"preferred_language"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UserResponse struct {
	ID                uuid.UUID `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	SystemRole        string    `json:"system_role"`
	PreferredLanguage string    `json:"preferred_language"`
	AvatarURL         *string   `json:"avatar_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// GoogleAuthURLResponse carries the provider redirect target for the client.
type GoogleAuthURLResponse struct {
	URL string `json:"url"`
}

// GoogleUserInfo mirrors the fields returned by the Google userinfo endpoint.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func ToUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		Name:              u.Name,
		SystemRole:        u.SystemRole,
		PreferredLanguage: u.PreferredLanguage,
		AvatarURL:         u.AvatarURL,
		CreatedAt:         u.CreatedAt,
	}
}
