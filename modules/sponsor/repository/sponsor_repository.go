package repository

import (
	"context"
	"database/sql"

	"sponlink-api/core/database"
	"sponlink-api/core/logger"
	"sponlink-api/modules/sponsor/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SponsorRepository handles cart, saved and followed event database operations.
type SponsorRepository struct {
	DB database.IDatabase
}

func NewSponsorRepository(db database.IDatabase) *SponsorRepository {
	return &SponsorRepository{DB: db}
}

type SponsorRepositoryInterface interface {
	GetPendingCartItem(ctx context.Context, sponsorID uuid.UUID, planID uuid.UUID) (*entity.CartItem, error)
	GetPendingCartItems(ctx context.Context, sponsorID uuid.UUID) ([]entity.CartItem, error)
	GetCartItemByID(ctx context.Context, sponsorID uuid.UUID, itemID uuid.UUID) (*entity.CartItem, error)
	GetCartDetails(ctx context.Context, sponsorID uuid.UUID, statuses []string) ([]entity.CartItemDetail, error)
	CreateCartItem(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error)
	UpdateCartItemStatus(ctx context.Context, itemID uuid.UUID, status entity.CartItemStatus) error
	DeleteCartItem(ctx context.Context, sponsorID uuid.UUID, itemID uuid.UUID) (bool, error)
	IncrementPlanSponsors(ctx context.Context, planID uuid.UUID) (bool, error)
	PlanExists(ctx context.Context, planID uuid.UUID) (bool, error)

	SaveEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error
	UnsaveEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error)
	GetSavedEvents(ctx context.Context, userID uuid.UUID) ([]entity.SavedEvent, error)
	FollowEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error
	UnfollowEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error)
	GetFollowedEvents(ctx context.Context, userID uuid.UUID) ([]entity.FollowedEvent, error)
}

const cartColumns = `id, sponsor_id, sponsorship_plan_id, status, created_at, updated_at`

func (r *SponsorRepository) GetPendingCartItem(ctx context.Context, sponsorID uuid.UUID, planID uuid.UUID) (*entity.CartItem, error) {
	query := `
		SELECT ` + cartColumns + ` FROM cart_items
		WHERE sponsor_id = $1 AND sponsorship_plan_id = $2 AND status = 'PENDING'
		LIMIT 1`

	var item entity.CartItem
	err := r.DB.GetContext(ctx, &item, query, sponsorID, planID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("SponsorRepository:GetPendingCartItem", err)
		return nil, err
	}

	return &item, nil
}

func (r *SponsorRepository) GetPendingCartItems(ctx context.Context, sponsorID uuid.UUID) ([]entity.CartItem, error) {
	query := `
		SELECT ` + cartColumns + ` FROM cart_items
		WHERE sponsor_id = $1 AND status = 'PENDING'
		ORDER BY created_at ASC`

	var items []entity.CartItem
	if err := r.DB.SelectContext(ctx, &items, query, sponsorID); err != nil {
		logger.Error("SponsorRepository:GetPendingCartItems", err)
		return nil, err
	}

	return items, nil
}

func (r *SponsorRepository) GetCartItemByID(ctx context.Context, sponsorID uuid.UUID, itemID uuid.UUID) (*entity.CartItem, error) {
	query := `SELECT ` + cartColumns + ` FROM cart_items WHERE id = $1 AND sponsor_id = $2`

	var item entity.CartItem
	err := r.DB.GetContext(ctx, &item, query, itemID, sponsorID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("SponsorRepository:GetCartItemByID", err)
		return nil, err
	}

	return &item, nil
}

func (r *SponsorRepository) GetCartDetails(ctx context.Context, sponsorID uuid.UUID, statuses []string) ([]entity.CartItemDetail, error) {
	query := `
		SELECT ci.id, ci.sponsor_id, ci.sponsorship_plan_id, ci.status,
		       ci.created_at, ci.updated_at,
		       sp.title AS plan_title, sp.price AS plan_price,
		       e.id AS event_id, e.title AS event_title, e.slug AS event_slug
		FROM cart_items ci
		JOIN sponsorship_plans sp ON sp.id = ci.sponsorship_plan_id
		JOIN events e ON e.id = sp.event_id
		WHERE ci.sponsor_id = $1 AND ci.status = ANY($2)
		ORDER BY ci.created_at ASC`

	var items []entity.CartItemDetail
	if err := r.DB.SelectContext(ctx, &items, query, sponsorID, pq.Array(statuses)); err != nil {
		logger.Error("SponsorRepository:GetCartDetails", err)
		return nil, err
	}

	return items, nil
}

func (r *SponsorRepository) CreateCartItem(ctx context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	query := `
		INSERT INTO cart_items (sponsor_id, sponsorship_plan_id, status)
		VALUES ($1, $2, $3)
		RETURNING ` + cartColumns

	var created entity.CartItem
	err := r.DB.GetContext(ctx, &created, query, item.SponsorID, item.SponsorshipPlanID, item.Status)
	if err != nil {
		logger.Error("SponsorRepository:CreateCartItem", err)
		return nil, err
	}

	return &created, nil
}

func (r *SponsorRepository) UpdateCartItemStatus(ctx context.Context, itemID uuid.UUID, status entity.CartItemStatus) error {
	query := `UPDATE cart_items SET status = $2, updated_at = NOW() WHERE id = $1`

	if _, err := r.DB.ExecContext(ctx, query, itemID, status); err != nil {
		logger.Error("SponsorRepository:UpdateCartItemStatus", err)
		return err
	}

	return nil
}

func (r *SponsorRepository) DeleteCartItem(ctx context.Context, sponsorID uuid.UUID, itemID uuid.UUID) (bool, error) {
	query := `DELETE FROM cart_items WHERE id = $1 AND sponsor_id = $2 AND status = 'PENDING'`

	result, err := r.DB.ExecContext(ctx, query, itemID, sponsorID)
	if err != nil {
		logger.Error("SponsorRepository:DeleteCartItem", err)
		return false, err
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// IncrementPlanSponsors bumps current_sponsors without exceeding max_sponsors.
// Returns false when the plan is already full.
func (r *SponsorRepository) IncrementPlanSponsors(ctx context.Context, planID uuid.UUID) (bool, error) {
	query := `
		UPDATE sponsorship_plans
		SET current_sponsors = current_sponsors + 1, updated_at = NOW()
		WHERE id = $1 AND current_sponsors < max_sponsors`

	result, err := r.DB.ExecContext(ctx, query, planID)
	if err != nil {
		logger.Error("SponsorRepository:IncrementPlanSponsors", err)
		return false, err
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *SponsorRepository) PlanExists(ctx context.Context, planID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM sponsorship_plans WHERE id = $1)`

	if err := r.DB.GetContext(ctx, &exists, query, planID); err != nil {
		logger.Error("SponsorRepository:PlanExists", err)
		return false, err
	}

	return exists, nil
}

// ===================== Saved / followed events =====================

func (r *SponsorRepository) SaveEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	query := `
		INSERT INTO saved_events (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, event_id) DO NOTHING`

	if _, err := r.DB.ExecContext(ctx, query, userID, eventID); err != nil {
		logger.Error("SponsorRepository:SaveEvent", err)
		return err
	}

	return nil
}

func (r *SponsorRepository) UnsaveEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM saved_events WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		logger.Error("SponsorRepository:UnsaveEvent", err)
		return false, err
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *SponsorRepository) GetSavedEvents(ctx context.Context, userID uuid.UUID) ([]entity.SavedEvent, error) {
	var items []entity.SavedEvent
	query := `SELECT user_id, event_id, created_at FROM saved_events WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.DB.SelectContext(ctx, &items, query, userID); err != nil {
		logger.Error("SponsorRepository:GetSavedEvents", err)
		return nil, err
	}

	return items, nil
}

func (r *SponsorRepository) FollowEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	query := `
		INSERT INTO followed_events (user_id, event_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, event_id) DO NOTHING`

	if _, err := r.DB.ExecContext(ctx, query, userID, eventID); err != nil {
		logger.Error("SponsorRepository:FollowEvent", err)
		return err
	}

	return nil
}

func (r *SponsorRepository) UnfollowEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM followed_events WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		logger.Error("SponsorRepository:UnfollowEvent", err)
		return false, err
	}

	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

func (r *SponsorRepository) GetFollowedEvents(ctx context.Context, userID uuid.UUID) ([]entity.FollowedEvent, error) {
	var items []entity.FollowedEvent
	query := `SELECT user_id, event_id, created_at FROM followed_events WHERE user_id = $1 ORDER BY created_at DESC`

	if err := r.DB.SelectContext(ctx, &items, query, userID); err != nil {
		logger.Error("SponsorRepository:GetFollowedEvents", err)
		return nil, err
	}

	return items, nil
}
