package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type MeetingStatus string

const (
	MeetingStatusRequested MeetingStatus = "REQUESTED"
	MeetingStatusConfirmed MeetingStatus = "CONFIRMED"
	MeetingStatusCancelled MeetingStatus = "CANCELLED"
	MeetingStatusCompleted MeetingStatus = "COMPLETED"
)

// ProposedTimes is a JSONB list of RFC3339 timestamps proposed by the sponsor.
type ProposedTimes []time.Time

func (p ProposedTimes) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *ProposedTimes) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, p)
}

// Meeting is a sponsor-requested meeting with an event organizer.
type Meeting struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	SponsorID     uuid.UUID     `db:"sponsor_id" json:"sponsor_id"`
	OrganizerID   uuid.UUID     `db:"organizer_id" json:"organizer_id"`
	EventID       uuid.UUID     `db:"event_id" json:"event_id"`
	Title         string        `db:"title" json:"title"`
	Description   *string       `db:"description" json:"description"`
	ProposedTimes ProposedTimes `db:"proposed_times" json:"proposed_times"`
	ConfirmedTime *time.Time    `db:"confirmed_time" json:"confirmed_time"`
	MeetingLink   *string       `db:"meeting_link" json:"meeting_link"`
	Status        MeetingStatus `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}
