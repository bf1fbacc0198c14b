package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SeriesStatus string

const (
	SeriesStatusActive   SeriesStatus = "ACTIVE"
	SeriesStatusArchived SeriesStatus = "ARCHIVED"
)

// EventSeries is a named grouping of related events. Member ordering lives in
// the event_series_events join table.
type EventSeries struct {
	ID          uuid.UUID      `db:"id" json:"id"`
	OrganizerID uuid.UUID      `db:"organizer_id" json:"organizer_id"`
	Title       string         `db:"title" json:"title"`
	Description *string        `db:"description" json:"description"`
	CoverImage  string         `db:"cover_image" json:"cover_image"`
	MainEventID *uuid.UUID     `db:"main_event_id" json:"main_event_id"`
	Status      SeriesStatus   `db:"status" json:"status"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Featured    bool           `db:"featured" json:"featured"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at" json:"updated_at"`
}
