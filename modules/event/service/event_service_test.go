package service

import (
	"context"
	"testing"

	"sponlink-api/core/constants"
	"sponlink-api/core/errors"
	"sponlink-api/core/params"
	"sponlink-api/modules/event/dto"
	"sponlink-api/modules/event/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventRepo is an in-memory EventRepositoryInterface for service tests.
type fakeEventRepo struct {
	events map[uuid.UUID]*entity.Event
	plans  map[uuid.UUID]*entity.SponsorshipPlan

	updateCalls int
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: make(map[uuid.UUID]*entity.Event),
		plans:  make(map[uuid.UUID]*entity.SponsorshipPlan),
	}
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *entity.Event) (*entity.Event, error) {
	stored := *event
	stored.ID = uuid.New()
	f.events[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	if e, ok := f.events[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeEventRepo) GetEventBySlug(_ context.Context, slug string) (*entity.Event, error) {
	for _, e := range f.events {
		if e.Slug == slug {
			cp := *e
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeEventRepo) GetEvents(_ context.Context, _ dto.EventFilter, _ params.QueryParams) ([]entity.Event, int, error) {
	out := make([]entity.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, *e)
	}
	return out, len(out), nil
}

func (f *fakeEventRepo) GetEventsByOrganizerID(_ context.Context, organizerID uuid.UUID) ([]entity.Event, error) {
	var out []entity.Event
	for _, e := range f.events {
		if e.OrganizerID == organizerID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) UpdateEvent(_ context.Context, event *entity.Event) error {
	f.updateCalls++
	cp := *event
	f.events[event.ID] = &cp
	return nil
}

func (f *fakeEventRepo) DeleteEvent(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := f.events[id]; !ok {
		return false, nil
	}
	delete(f.events, id)
	return true, nil
}

func (f *fakeEventRepo) CreatePlan(_ context.Context, plan *entity.SponsorshipPlan) (*entity.SponsorshipPlan, error) {
	stored := *plan
	stored.ID = uuid.New()
	f.plans[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeEventRepo) GetPlanByID(_ context.Context, eventID uuid.UUID, planID uuid.UUID) (*entity.SponsorshipPlan, error) {
	if p, ok := f.plans[planID]; ok && p.EventID == eventID {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeEventRepo) GetPlansByEventID(_ context.Context, eventID uuid.UUID) ([]entity.SponsorshipPlan, error) {
	var out []entity.SponsorshipPlan
	for _, p := range f.plans {
		if p.EventID == eventID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) UpdatePlan(_ context.Context, plan *entity.SponsorshipPlan) error {
	cp := *plan
	f.plans[plan.ID] = &cp
	return nil
}

func (f *fakeEventRepo) DeletePlan(_ context.Context, eventID uuid.UUID, planID uuid.UUID) (bool, error) {
	if p, ok := f.plans[planID]; ok && p.EventID == eventID {
		delete(f.plans, planID)
		return true, nil
	}
	return false, nil
}

func TestCreateEventAppliesDefaults(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	organizerID := uuid.New()

	result, appErr := svc.CreateEvent(context.Background(), organizerID, &dto.CreateEventRequest{})
	require.Nil(t, appErr)

	assert.Equal(t, constants.DefaultEventTitle, result.Title)
	assert.Equal(t, constants.DefaultEventCoverImage, result.CoverImage)
	assert.Equal(t, string(entity.EventStatusDraft), result.Status)
	assert.NotEmpty(t, result.Slug)
}

func TestCreateEventKeepsProvidedFields(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	result, appErr := svc.CreateEvent(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Title:      "DevOps Taipei Meetup",
		CoverImage: "https://cdn.example.com/custom.png",
		Category:   "Technology",
		Tags:       []string{"devops", "cloud"},
	})
	require.Nil(t, appErr)

	assert.Equal(t, "DevOps Taipei Meetup", result.Title)
	assert.Equal(t, "https://cdn.example.com/custom.png", result.CoverImage)
	assert.Equal(t, "Technology", result.Category)
	assert.Equal(t, []string{"devops", "cloud"}, result.Tags)
	assert.Contains(t, result.Slug, "devops-taipei-meetup")
}

func TestCreateEventClassifiesVirtualLocation(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	result, appErr := svc.CreateEvent(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Title:    "Remote Standup",
		Location: "https://zoom.us/j/123456789",
	})
	require.Nil(t, appErr)

	assert.Equal(t, string(entity.LocationTypeVirtual), result.Location.LocationType)
	assert.True(t, result.Location.IsVirtual)
	assert.Equal(t, "Zoom", result.Location.PlatformName)
}

func TestCreateEventClassifiesCustomLocation(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	result, appErr := svc.CreateEvent(context.Background(), uuid.New(), &dto.CreateEventRequest{
		Title:    "Onsite Workshop",
		Location: "100 Main Street, Springfield",
	})
	require.Nil(t, appErr)

	assert.Equal(t, string(entity.LocationTypeCustom), result.Location.LocationType)
	assert.False(t, result.Location.IsVirtual)
}

func TestPublishEventFromDraft(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	organizerID := uuid.New()

	created, appErr := svc.CreateEvent(context.Background(), organizerID, &dto.CreateEventRequest{Title: "Launch"})
	require.Nil(t, appErr)

	eventID := uuid.MustParse(created.ID)
	published, appErr := svc.PublishEvent(context.Background(), eventID, organizerID)
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.EventStatusPublished), published.Status)
}

func TestPublishEventIsIdempotent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	organizerID := uuid.New()

	created, _ := svc.CreateEvent(context.Background(), organizerID, &dto.CreateEventRequest{Title: "Launch"})
	eventID := uuid.MustParse(created.ID)

	_, appErr := svc.PublishEvent(context.Background(), eventID, organizerID)
	require.Nil(t, appErr)
	writesAfterFirst := repo.updateCalls

	again, appErr := svc.PublishEvent(context.Background(), eventID, organizerID)
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.EventStatusPublished), again.Status)
	assert.Equal(t, writesAfterFirst, repo.updateCalls, "second publish must not write")
}

func TestPublishEventRejectsCancelled(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	organizerID := uuid.New()

	created, _ := svc.CreateEvent(context.Background(), organizerID, &dto.CreateEventRequest{Title: "Launch"})
	eventID := uuid.MustParse(created.ID)
	_, _ = svc.PublishEvent(context.Background(), eventID, organizerID)
	_, appErr := svc.CancelEvent(context.Background(), eventID, organizerID)
	require.Nil(t, appErr)

	_, appErr = svc.PublishEvent(context.Background(), eventID, organizerID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidStateTransition, appErr.Code)
}

func TestPublishEventRequiresOwnership(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, _ := svc.CreateEvent(context.Background(), uuid.New(), &dto.CreateEventRequest{Title: "Launch"})
	eventID := uuid.MustParse(created.ID)

	_, appErr := svc.PublishEvent(context.Background(), eventID, uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestUpdateEventIgnoresEmptyTitle(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	organizerID := uuid.New()

	created, _ := svc.CreateEvent(context.Background(), organizerID, &dto.CreateEventRequest{Title: "Original"})
	eventID := uuid.MustParse(created.ID)

	empty := "   "
	updated, appErr := svc.UpdateEvent(context.Background(), eventID, organizerID, &dto.UpdateEventRequest{Title: &empty})
	require.Nil(t, appErr)
	assert.Equal(t, "Original", updated.Title)
}

func TestDeleteEventNotFound(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	appErr := svc.DeleteEvent(context.Background(), uuid.New(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestSponsorshipPlanLifecycle(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)
	organizerID := uuid.New()

	created, _ := svc.CreateEvent(context.Background(), organizerID, &dto.CreateEventRequest{Title: "Conf"})
	eventID := uuid.MustParse(created.ID)

	plan, appErr := svc.CreateSponsorshipPlan(context.Background(), eventID, organizerID, &dto.CreatePlanRequest{
		Title:       "Gold",
		Price:       50000,
		Benefits:    []string{"Logo on stage", "Booth"},
		MaxSponsors: 3,
	})
	require.Nil(t, appErr)
	assert.Equal(t, "Gold", plan.Title)
	assert.Equal(t, int64(50000), plan.Price)

	planID := uuid.MustParse(plan.ID)
	newPrice := int64(80000)
	updated, appErr := svc.UpdateSponsorshipPlan(context.Background(), eventID, planID, organizerID, &dto.UpdatePlanRequest{Price: &newPrice})
	require.Nil(t, appErr)
	assert.Equal(t, int64(80000), updated.Price)

	appErr = svc.DeleteSponsorshipPlan(context.Background(), eventID, planID, organizerID)
	require.Nil(t, appErr)

	appErr = svc.DeleteSponsorshipPlan(context.Background(), eventID, planID, organizerID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestPlanOperationsRequireOwnership(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo)

	created, _ := svc.CreateEvent(context.Background(), uuid.New(), &dto.CreateEventRequest{Title: "Conf"})
	eventID := uuid.MustParse(created.ID)

	_, appErr := svc.CreateSponsorshipPlan(context.Background(), eventID, uuid.New(), &dto.CreatePlanRequest{Title: "Gold"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}
