package dto

import (
	"time"

	"sponlink-api/modules/sponsor/entity"
)

type AddToCartRequest struct {
	SponsorshipPlanID string `json:"sponsorship_plan_id"`
}

type CheckoutRequest struct {
	Amount int64 `json:"amount"`
}

type CartItemResponse struct {
	ID                string    `json:"id"`
	SponsorshipPlanID string    `json:"sponsorship_plan_id"`
	Status            string    `json:"status"`
	PlanTitle         string    `json:"plan_title,omitempty"`
	PlanPrice         int64     `json:"plan_price,omitempty"`
	EventID           string    `json:"event_id,omitempty"`
	EventTitle        string    `json:"event_title,omitempty"`
	EventSlug         string    `json:"event_slug,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type CheckoutResponse struct {
	ConfirmedItems []CartItemResponse `json:"confirmed_items"`
	TotalAmount    int64              `json:"total_amount"`
}

type SavedEventResponse struct {
	EventID   string    `json:"event_id"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCartItemResponse(item *entity.CartItem) *CartItemResponse {
	return &CartItemResponse{
		ID:                item.ID.String(),
		SponsorshipPlanID: item.SponsorshipPlanID.String(),
		Status:            string(item.Status),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

func ToCartItemDetailResponse(item *entity.CartItemDetail) *CartItemResponse {
	resp := ToCartItemResponse(&item.CartItem)
	resp.PlanTitle = item.PlanTitle
	resp.PlanPrice = item.PlanPrice
	resp.EventID = item.EventID.String()
	resp.EventTitle = item.EventTitle
	resp.EventSlug = item.EventSlug
	return resp
}
