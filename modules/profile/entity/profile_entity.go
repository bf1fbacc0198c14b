package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the public-facing profile for a user. OrganizerProfile
// and SponsorProfile are free-form JSONB blobs so each side of the
// marketplace can carry its own fields without schema churn.
type UserProfile struct {
	UserID           uuid.UUID `db:"user_id" json:"user_id"`
	Bio              *string   `db:"bio" json:"bio,omitempty"`
	ContactEmail     *string   `db:"contact_email" json:"contact_email,omitempty"`
	Phone            *string   `db:"phone" json:"phone,omitempty"`
	Website          *string   `db:"website" json:"website,omitempty"`
	OrganizerProfile JSONB     `db:"organizer_profile" json:"organizer_profile,omitempty"`
	SponsorProfile   JSONB     `db:"sponsor_profile" json:"sponsor_profile,omitempty"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// UserSettings carries per-user preferences, created with defaults on first
// read.
type UserSettings struct {
	UserID             uuid.UUID `db:"user_id" json:"user_id"`
	EmailNotifications bool      `db:"email_notifications" json:"email_notifications"`
	PushNotifications  bool      `db:"push_notifications" json:"push_notifications"`
	Timezone           string    `db:"timezone" json:"timezone"`
	Language           string    `db:"language" json:"language"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time `db:"updated_at" json:"updated_at"`
}

type JSONB map[string]interface{}

func (a JSONB) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

func (a *JSONB) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, &a)
}
