package service

import (
	"context"
	"fmt"
	"testing"

	"sponlink-api/core/errors"
	notifdto "sponlink-api/modules/notification/dto"
	"sponlink-api/modules/sponsor/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSponsorRepo struct {
	items map[uuid.UUID]*entity.CartItem
	plans map[uuid.UUID]struct {
		current, max int
	}
	saved    map[string]bool
	followed map[string]bool

	failStatusUpdateAfter int // fail the Nth UpdateCartItemStatus call; 0 disables
	statusUpdates         int
}

func newFakeSponsorRepo() *fakeSponsorRepo {
	return &fakeSponsorRepo{
		items: make(map[uuid.UUID]*entity.CartItem),
		plans: make(map[uuid.UUID]struct{ current, max int }),
		saved: make(map[string]bool), followed: make(map[string]bool),
	}
}

func (f *fakeSponsorRepo) addPlan(max int) uuid.UUID {
	id := uuid.New()
	f.plans[id] = struct{ current, max int }{0, max}
	return id
}

func (f *fakeSponsorRepo) GetPendingCartItem(_ context.Context, sponsorID uuid.UUID, planID uuid.UUID) (*entity.CartItem, error) {
	for _, item := range f.items {
		if item.SponsorID == sponsorID && item.SponsorshipPlanID == planID && item.Status == entity.CartItemStatusPending {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeSponsorRepo) GetPendingCartItems(_ context.Context, sponsorID uuid.UUID) ([]entity.CartItem, error) {
	var out []entity.CartItem
	for _, item := range f.items {
		if item.SponsorID == sponsorID && item.Status == entity.CartItemStatusPending {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (f *fakeSponsorRepo) GetCartItemByID(_ context.Context, sponsorID uuid.UUID, itemID uuid.UUID) (*entity.CartItem, error) {
	if item, ok := f.items[itemID]; ok && item.SponsorID == sponsorID {
		cp := *item
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSponsorRepo) GetCartDetails(_ context.Context, sponsorID uuid.UUID, statuses []string) ([]entity.CartItemDetail, error) {
	wanted := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}

	var out []entity.CartItemDetail
	for _, item := range f.items {
		if item.SponsorID == sponsorID && wanted[string(item.Status)] {
			out = append(out, entity.CartItemDetail{
				CartItem:  *item,
				PlanTitle: "Gold",
				PlanPrice: 1000,
			})
		}
	}
	return out, nil
}

func (f *fakeSponsorRepo) CreateCartItem(_ context.Context, item *entity.CartItem) (*entity.CartItem, error) {
	stored := *item
	stored.ID = uuid.New()
	f.items[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeSponsorRepo) UpdateCartItemStatus(_ context.Context, itemID uuid.UUID, status entity.CartItemStatus) error {
	f.statusUpdates++
	if f.failStatusUpdateAfter > 0 && f.statusUpdates >= f.failStatusUpdateAfter {
		return fmt.Errorf("simulated write failure")
	}
	if item, ok := f.items[itemID]; ok {
		item.Status = status
	}
	return nil
}

func (f *fakeSponsorRepo) DeleteCartItem(_ context.Context, sponsorID uuid.UUID, itemID uuid.UUID) (bool, error) {
	if item, ok := f.items[itemID]; ok && item.SponsorID == sponsorID && item.Status == entity.CartItemStatusPending {
		delete(f.items, itemID)
		return true, nil
	}
	return false, nil
}

func (f *fakeSponsorRepo) IncrementPlanSponsors(_ context.Context, planID uuid.UUID) (bool, error) {
	p, ok := f.plans[planID]
	if !ok || p.current >= p.max {
		return false, nil
	}
	p.current++
	f.plans[planID] = p
	return true, nil
}

func (f *fakeSponsorRepo) PlanExists(_ context.Context, planID uuid.UUID) (bool, error) {
	_, ok := f.plans[planID]
	return ok, nil
}

func (f *fakeSponsorRepo) SaveEvent(_ context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	f.saved[userID.String()+eventID.String()] = true
	return nil
}

func (f *fakeSponsorRepo) UnsaveEvent(_ context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error) {
	key := userID.String() + eventID.String()
	if f.saved[key] {
		delete(f.saved, key)
		return true, nil
	}
	return false, nil
}

func (f *fakeSponsorRepo) GetSavedEvents(context.Context, uuid.UUID) ([]entity.SavedEvent, error) {
	return nil, nil
}

func (f *fakeSponsorRepo) FollowEvent(_ context.Context, userID uuid.UUID, eventID uuid.UUID) error {
	f.followed[userID.String()+eventID.String()] = true
	return nil
}

func (f *fakeSponsorRepo) UnfollowEvent(_ context.Context, userID uuid.UUID, eventID uuid.UUID) (bool, error) {
	key := userID.String() + eventID.String()
	if f.followed[key] {
		delete(f.followed, key)
		return true, nil
	}
	return false, nil
}

func (f *fakeSponsorRepo) GetFollowedEvents(context.Context, uuid.UUID) ([]entity.FollowedEvent, error) {
	return nil, nil
}

type recordingNotifier struct {
	created []*notifdto.CreateNotificationRequest
}

func (n *recordingNotifier) Create(_ context.Context, req *notifdto.CreateNotificationRequest) error {
	n.created = append(n.created, req)
	return nil
}

func TestAddToCartDeduplicates(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil)
	sponsorID := uuid.New()
	planID := repo.addPlan(5)

	first, appErr := svc.AddToCart(context.Background(), sponsorID, planID)
	require.Nil(t, appErr)

	second, appErr := svc.AddToCart(context.Background(), sponsorID, planID)
	require.Nil(t, appErr)

	assert.Equal(t, first.ID, second.ID, "duplicate add must return the existing item")
	assert.Len(t, repo.items, 1)
}

func TestAddToCartAfterCheckoutCreatesNewItem(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil)
	sponsorID := uuid.New()
	planID := repo.addPlan(5)

	first, _ := svc.AddToCart(context.Background(), sponsorID, planID)
	_, appErr := svc.Checkout(context.Background(), sponsorID)
	require.Nil(t, appErr)

	second, appErr := svc.AddToCart(context.Background(), sponsorID, planID)
	require.Nil(t, appErr)
	assert.NotEqual(t, first.ID, second.ID, "confirmed item must not block a fresh add")
}

func TestAddToCartUnknownPlan(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil)

	_, appErr := svc.AddToCart(context.Background(), uuid.New(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil)

	_, appErr := svc.Checkout(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Empty(t, repo.items, "failed checkout must not touch cart state")
}

func TestCheckoutConfirmsAllPendingItems(t *testing.T) {
	repo := newFakeSponsorRepo()
	notifier := &recordingNotifier{}
	svc := NewSponsorService(repo, notifier)
	sponsorID := uuid.New()

	planA := repo.addPlan(5)
	planB := repo.addPlan(5)
	_, _ = svc.AddToCart(context.Background(), sponsorID, planA)
	_, _ = svc.AddToCart(context.Background(), sponsorID, planB)

	result, appErr := svc.Checkout(context.Background(), sponsorID)
	require.Nil(t, appErr)
	assert.Len(t, result.ConfirmedItems, 2)
	assert.Equal(t, int64(2000), result.TotalAmount)

	for _, item := range repo.items {
		assert.Equal(t, entity.CartItemStatusConfirmed, item.Status)
	}
	assert.Equal(t, 1, repo.plans[planA].current)
	assert.Equal(t, 1, repo.plans[planB].current)
	assert.Len(t, notifier.created, 2)
}

func TestCheckoutPartialFailureLeavesMixedState(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil)
	sponsorID := uuid.New()

	_, _ = svc.AddToCart(context.Background(), sponsorID, repo.addPlan(5))
	_, _ = svc.AddToCart(context.Background(), sponsorID, repo.addPlan(5))
	repo.failStatusUpdateAfter = 2

	_, appErr := svc.Checkout(context.Background(), sponsorID)
	require.NotNil(t, appErr)

	confirmed, pending := 0, 0
	for _, item := range repo.items {
		switch item.Status {
		case entity.CartItemStatusConfirmed:
			confirmed++
		case entity.CartItemStatusPending:
			pending++
		}
	}
	assert.Equal(t, 1, confirmed)
	assert.Equal(t, 1, pending)
}

func TestRemoveFromCartOnlyPending(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil)
	sponsorID := uuid.New()
	planID := repo.addPlan(5)

	item, _ := svc.AddToCart(context.Background(), sponsorID, planID)
	itemID := uuid.MustParse(item.ID)
	_, _ = svc.Checkout(context.Background(), sponsorID)

	appErr := svc.RemoveFromCart(context.Background(), sponsorID, itemID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidStateTransition, appErr.Code)
}

func TestRemoveFromCartDeletesPendingItem(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil)
	sponsorID := uuid.New()

	item, _ := svc.AddToCart(context.Background(), sponsorID, repo.addPlan(5))
	appErr := svc.RemoveFromCart(context.Background(), sponsorID, uuid.MustParse(item.ID))
	require.Nil(t, appErr)
	assert.Empty(t, repo.items)
}

func TestSaveAndUnsaveEvent(t *testing.T) {
	repo := newFakeSponsorRepo()
	svc := NewSponsorService(repo, nil)
	userID := uuid.New()
	eventID := uuid.New()

	require.Nil(t, svc.SaveEvent(context.Background(), userID, eventID))
	require.Nil(t, svc.UnsaveEvent(context.Background(), userID, eventID))

	appErr := svc.UnsaveEvent(context.Background(), userID, eventID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
