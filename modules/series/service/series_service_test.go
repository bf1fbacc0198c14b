package service

import (
	"context"
	"testing"

	"sponlink-api/core/errors"
	"sponlink-api/core/params"
	eventdto "sponlink-api/modules/event/dto"
	"sponlink-api/modules/series/dto"
	"sponlink-api/modules/series/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSeriesRepo struct {
	series  map[uuid.UUID]*entity.EventSeries
	members map[uuid.UUID][]uuid.UUID
}

func newFakeSeriesRepo() *fakeSeriesRepo {
	return &fakeSeriesRepo{
		series:  make(map[uuid.UUID]*entity.EventSeries),
		members: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeSeriesRepo) CreateSeries(_ context.Context, s *entity.EventSeries, eventIDs []uuid.UUID) (*entity.EventSeries, error) {
	stored := *s
	stored.ID = uuid.New()
	f.series[stored.ID] = &stored
	f.members[stored.ID] = eventIDs
	return &stored, nil
}

func (f *fakeSeriesRepo) GetSeriesByID(_ context.Context, id uuid.UUID) (*entity.EventSeries, error) {
	if s, ok := f.series[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeSeriesRepo) GetSeries(_ context.Context, _ dto.SeriesFilter, _ params.QueryParams) ([]entity.EventSeries, int, error) {
	var out []entity.EventSeries
	for _, s := range f.series {
		out = append(out, *s)
	}
	return out, len(out), nil
}

func (f *fakeSeriesRepo) GetFeaturedSeries(_ context.Context, limit int) ([]entity.EventSeries, error) {
	var out []entity.EventSeries
	for _, s := range f.series {
		if s.Featured && len(out) < limit {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSeriesRepo) GetMemberEventIDs(_ context.Context, seriesID uuid.UUID) ([]uuid.UUID, error) {
	return f.members[seriesID], nil
}

// fakeEventService resolves only the ids it knows about.
type fakeEventService struct {
	known map[uuid.UUID]*eventdto.EventResponse
}

func (f *fakeEventService) GetEventByID(_ context.Context, id uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	if e, ok := f.known[id]; ok {
		return e, nil
	}
	return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
}

func (f *fakeEventService) GetEvents(context.Context, eventdto.EventFilter, params.QueryParams) (*eventdto.PaginatedEventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) GetEventBySlug(context.Context, string) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) GetMyEvents(context.Context, uuid.UUID) ([]eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) CreateEvent(context.Context, uuid.UUID, *eventdto.CreateEventRequest) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) UpdateEvent(context.Context, uuid.UUID, uuid.UUID, *eventdto.UpdateEventRequest) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) DeleteEvent(context.Context, uuid.UUID, uuid.UUID) *errors.AppError {
	return nil
}
func (f *fakeEventService) PublishEvent(context.Context, uuid.UUID, uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) CancelEvent(context.Context, uuid.UUID, uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) CompleteEvent(context.Context, uuid.UUID, uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) SetCoverImage(context.Context, uuid.UUID, uuid.UUID, string) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) CreateSponsorshipPlan(context.Context, uuid.UUID, uuid.UUID, *eventdto.CreatePlanRequest) (*eventdto.PlanResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) UpdateSponsorshipPlan(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, *eventdto.UpdatePlanRequest) (*eventdto.PlanResponse, *errors.AppError) {
	return nil, nil
}
func (f *fakeEventService) DeleteSponsorshipPlan(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) *errors.AppError {
	return nil
}

func seedSeries(repo *fakeSeriesRepo, memberIDs []uuid.UUID, mainEventID *uuid.UUID) uuid.UUID {
	id := uuid.New()
	repo.series[id] = &entity.EventSeries{
		ID:          id,
		OrganizerID: uuid.New(),
		Title:       "Tech Summit Series",
		Status:      entity.SeriesStatusActive,
		MainEventID: mainEventID,
	}
	repo.members[id] = memberIDs
	return id
}

func TestGetEventsInSeriesDropsMissingMembers(t *testing.T) {
	repo := newFakeSeriesRepo()
	liveID := uuid.New()
	deletedID := uuid.New()

	events := &fakeEventService{known: map[uuid.UUID]*eventdto.EventResponse{
		liveID: {ID: liveID.String(), Title: "Still here"},
	}}
	seriesID := seedSeries(repo, []uuid.UUID{deletedID, liveID}, nil)

	svc := NewSeriesService(repo, events)
	result, appErr := svc.GetEventsInSeries(context.Background(), seriesID)
	require.Nil(t, appErr)

	require.Len(t, result, 1)
	assert.Equal(t, liveID.String(), result[0].ID)
}

func TestGetMainEventUsesDesignatedEvent(t *testing.T) {
	repo := newFakeSeriesRepo()
	mainID := uuid.New()
	otherID := uuid.New()

	events := &fakeEventService{known: map[uuid.UUID]*eventdto.EventResponse{
		mainID:  {ID: mainID.String(), Title: "Main"},
		otherID: {ID: otherID.String(), Title: "Other"},
	}}
	seriesID := seedSeries(repo, []uuid.UUID{otherID, mainID}, &mainID)

	svc := NewSeriesService(repo, events)
	result, appErr := svc.GetMainEventInSeries(context.Background(), seriesID)
	require.Nil(t, appErr)
	assert.Equal(t, mainID.String(), result.ID)
}

func TestGetMainEventFallsBackToFirstMember(t *testing.T) {
	repo := newFakeSeriesRepo()
	danglingMain := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()

	events := &fakeEventService{known: map[uuid.UUID]*eventdto.EventResponse{
		firstID:  {ID: firstID.String(), Title: "First"},
		secondID: {ID: secondID.String(), Title: "Second"},
	}}
	seriesID := seedSeries(repo, []uuid.UUID{firstID, secondID}, &danglingMain)

	svc := NewSeriesService(repo, events)
	result, appErr := svc.GetMainEventInSeries(context.Background(), seriesID)
	require.Nil(t, appErr)
	assert.Equal(t, firstID.String(), result.ID)
}

func TestGetMainEventEmptySeries(t *testing.T) {
	repo := newFakeSeriesRepo()
	events := &fakeEventService{known: map[uuid.UUID]*eventdto.EventResponse{}}
	seriesID := seedSeries(repo, nil, nil)

	svc := NewSeriesService(repo, events)
	_, appErr := svc.GetMainEventInSeries(context.Background(), seriesID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}

func TestGetEventSeriesByIDNotFound(t *testing.T) {
	repo := newFakeSeriesRepo()
	svc := NewSeriesService(repo, &fakeEventService{})

	_, appErr := svc.GetEventSeriesByID(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
