package entity

import (
	"time"

	"github.com/google/uuid"
)

type CartItemStatus string

const (
	CartItemStatusPending   CartItemStatus = "PENDING"
	CartItemStatusConfirmed CartItemStatus = "CONFIRMED"
	CartItemStatusCancelled CartItemStatus = "CANCELLED"
)

// CartItem is one sponsorship plan a sponsor intends to purchase.
type CartItem struct {
	ID                uuid.UUID      `db:"id" json:"id"`
	SponsorID         uuid.UUID      `db:"sponsor_id" json:"sponsor_id"`
	SponsorshipPlanID uuid.UUID      `db:"sponsorship_plan_id" json:"sponsorship_plan_id"`
	Status            CartItemStatus `db:"status" json:"status"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// CartItemDetail joins the cart item with its plan and event display data.
type CartItemDetail struct {
	CartItem
	PlanTitle  string    `db:"plan_title" json:"plan_title"`
	PlanPrice  int64     `db:"plan_price" json:"plan_price"`
	EventID    uuid.UUID `db:"event_id" json:"event_id"`
	EventTitle string    `db:"event_title" json:"event_title"`
	EventSlug  string    `db:"event_slug" json:"event_slug"`
}

// SavedEvent is a row in the saved_events join table.
type SavedEvent struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// FollowedEvent is a row in the followed_events join table.
type FollowedEvent struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
