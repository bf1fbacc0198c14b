package service

import (
	"context"

	"sponlink-api/core/errors"
	"sponlink-api/core/logger"
	notifdto "sponlink-api/modules/notification/dto"
	"sponlink-api/modules/sponsor/dto"
	"sponlink-api/modules/sponsor/entity"
	"sponlink-api/modules/sponsor/repository"

	"github.com/google/uuid"
)

// Notifier delivers in-app notifications. Checkout uses it best-effort; a
// failed notification never fails the checkout.
type Notifier interface {
	Create(ctx context.Context, req *notifdto.CreateNotificationRequest) error
}

// SponsorService handles the cart lifecycle and saved/followed events.
type SponsorService struct {
	repo     repository.SponsorRepositoryInterface
	notifier Notifier
}

type SponsorServiceInterface interface {
	AddToCart(ctx context.Context, sponsorID uuid.UUID, planID uuid.UUID) (*dto.CartItemResponse, *errors.AppError)
	RemoveFromCart(ctx context.Context, sponsorID uuid.UUID, itemID uuid.UUID) *errors.AppError
	GetCart(ctx context.Context, sponsorID uuid.UUID) ([]dto.CartItemResponse, *errors.AppError)
	Checkout(ctx context.Context, sponsorID uuid.UUID) (*dto.CheckoutResponse, *errors.AppError)
	GetUserSponsorships(ctx context.Context, sponsorID uuid.UUID) ([]dto.CartItemResponse, *errors.AppError)

	SaveEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError
	UnsaveEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError
	GetSavedEvents(ctx context.Context, userID uuid.UUID) ([]dto.SavedEventResponse, *errors.AppError)
	FollowEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError
	UnfollowEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError
	GetFollowedEvents(ctx context.Context, userID uuid.UUID) ([]dto.SavedEventResponse, *errors.AppError)
}

func NewSponsorService(repo repository.SponsorRepositoryInterface, notifier Notifier) SponsorServiceInterface {
	return &SponsorService{repo: repo, notifier: notifier}
}

// AddToCart de-duplicates on (sponsor_id, plan_id, PENDING): adding a plan
// already pending in the cart returns the existing item.
func (s *SponsorService) AddToCart(ctx context.Context, sponsorID uuid.UUID, planID uuid.UUID) (*dto.CartItemResponse, *errors.AppError) {
	exists, err := s.repo.PlanExists(ctx, planID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check sponsorship plan", err)
	}
	if !exists {
		return nil, errors.NewAppError(errors.ErrNotFound, "Sponsorship plan not found", nil)
	}

	existing, err := s.repo.GetPendingCartItem(ctx, sponsorID, planID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check cart", err)
	}
	if existing != nil {
		return dto.ToCartItemResponse(existing), nil
	}

	created, err := s.repo.CreateCartItem(ctx, &entity.CartItem{
		SponsorID:         sponsorID,
		SponsorshipPlanID: planID,
		Status:            entity.CartItemStatusPending,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add to cart", err)
	}

	return dto.ToCartItemResponse(created), nil
}

// RemoveFromCart removes a PENDING item. Confirmed items cannot be removed.
func (s *SponsorService) RemoveFromCart(ctx context.Context, sponsorID uuid.UUID, itemID uuid.UUID) *errors.AppError {
	item, err := s.repo.GetCartItemByID(ctx, sponsorID, itemID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get cart item", err)
	}
	if item == nil {
		return errors.NewAppError(errors.ErrNotFound, "Cart item not found", nil)
	}
	if item.Status != entity.CartItemStatusPending {
		return errors.NewAppError(errors.ErrInvalidStateTransition, "Only pending items can be removed", nil)
	}

	deleted, err := s.repo.DeleteCartItem(ctx, sponsorID, itemID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to remove cart item", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Cart item not found", nil)
	}

	return nil
}

func (s *SponsorService) GetCart(ctx context.Context, sponsorID uuid.UUID) ([]dto.CartItemResponse, *errors.AppError) {
	items, err := s.repo.GetCartDetails(ctx, sponsorID, []string{string(entity.CartItemStatusPending)})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get cart", err)
	}

	result := make([]dto.CartItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *dto.ToCartItemDetailResponse(&items[i]))
	}

	return result, nil
}

// Checkout confirms every PENDING item for the sponsor. Items are flipped one
// by one; a failure mid-loop leaves earlier items CONFIRMED and later ones
// PENDING. A cart with no pending items is an error.
func (s *SponsorService) Checkout(ctx context.Context, sponsorID uuid.UUID) (*dto.CheckoutResponse, *errors.AppError) {
	pending, err := s.repo.GetCartDetails(ctx, sponsorID, []string{string(entity.CartItemStatusPending)})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get cart", err)
	}
	if len(pending) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "No pending items to checkout", nil)
	}

	resp := &dto.CheckoutResponse{ConfirmedItems: make([]dto.CartItemResponse, 0, len(pending))}
	for i := range pending {
		item := &pending[i]

		if err := s.repo.UpdateCartItemStatus(ctx, item.ID, entity.CartItemStatusConfirmed); err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Checkout failed partway", err)
		}

		incremented, err := s.repo.IncrementPlanSponsors(ctx, item.SponsorshipPlanID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Checkout failed partway", err)
		}
		if !incremented {
			logger.Warn("SponsorService:Checkout:PlanFull", "plan_id", item.SponsorshipPlanID)
		}

		item.Status = entity.CartItemStatusConfirmed
		resp.ConfirmedItems = append(resp.ConfirmedItems, *dto.ToCartItemDetailResponse(item))
		resp.TotalAmount += item.PlanPrice
	}

	s.notifyCheckout(ctx, sponsorID, pending)
	return resp, nil
}

func (s *SponsorService) notifyCheckout(ctx context.Context, sponsorID uuid.UUID, items []entity.CartItemDetail) {
	if s.notifier == nil {
		return
	}

	for i := range items {
		err := s.notifier.Create(ctx, &notifdto.CreateNotificationRequest{
			UserID:  sponsorID,
			Title:   "Sponsorship confirmed",
			Message: "Your sponsorship of " + items[i].PlanTitle + " for " + items[i].EventTitle + " is confirmed",
			Type:    "SPONSORSHIP_CONFIRMED",
			Data: map[string]any{
				"event_id": items[i].EventID.String(),
				"plan_id":  items[i].SponsorshipPlanID.String(),
			},
		})
		if err != nil {
			logger.Warn("SponsorService:Checkout:Notify", "error", err)
		}
	}
}

func (s *SponsorService) GetUserSponsorships(ctx context.Context, sponsorID uuid.UUID) ([]dto.CartItemResponse, *errors.AppError) {
	items, err := s.repo.GetCartDetails(ctx, sponsorID, []string{string(entity.CartItemStatusConfirmed)})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get sponsorships", err)
	}

	result := make([]dto.CartItemResponse, 0, len(items))
	for i := range items {
		result = append(result, *dto.ToCartItemDetailResponse(&items[i]))
	}

	return result, nil
}

// ===================== Saved / followed events =====================

func (s *SponsorService) SaveEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	if err := s.repo.SaveEvent(ctx, userID, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save event", err)
	}
	return nil
}

func (s *SponsorService) UnsaveEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	removed, err := s.repo.UnsaveEvent(ctx, userID, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to unsave event", err)
	}
	if !removed {
		return errors.NewAppError(errors.ErrNotFound, "Saved event not found", nil)
	}
	return nil
}

func (s *SponsorService) GetSavedEvents(ctx context.Context, userID uuid.UUID) ([]dto.SavedEventResponse, *errors.AppError) {
	items, err := s.repo.GetSavedEvents(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get saved events", err)
	}

	result := make([]dto.SavedEventResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.SavedEventResponse{EventID: item.EventID.String(), CreatedAt: item.CreatedAt})
	}

	return result, nil
}

func (s *SponsorService) FollowEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	if err := s.repo.FollowEvent(ctx, userID, eventID); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to follow event", err)
	}
	return nil
}

func (s *SponsorService) UnfollowEvent(ctx context.Context, userID uuid.UUID, eventID uuid.UUID) *errors.AppError {
	removed, err := s.repo.UnfollowEvent(ctx, userID, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to unfollow event", err)
	}
	if !removed {
		return errors.NewAppError(errors.ErrNotFound, "Followed event not found", nil)
	}
	return nil
}

func (s *SponsorService) GetFollowedEvents(ctx context.Context, userID uuid.UUID) ([]dto.SavedEventResponse, *errors.AppError) {
	items, err := s.repo.GetFollowedEvents(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get followed events", err)
	}

	result := make([]dto.SavedEventResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.SavedEventResponse{EventID: item.EventID.String(), CreatedAt: item.CreatedAt})
	}

	return result, nil
}
