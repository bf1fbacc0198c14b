package service

import (
	"context"
	"testing"
	"time"

	"sponlink-api/core/errors"
	"sponlink-api/core/params"
	eventdto "sponlink-api/modules/event/dto"
	"sponlink-api/modules/meeting/dto"
	"sponlink-api/modules/meeting/entity"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMeetingRepo struct {
	meetings map[uuid.UUID]*entity.Meeting
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{meetings: make(map[uuid.UUID]*entity.Meeting)}
}

func (f *fakeMeetingRepo) CreateMeeting(_ context.Context, m *entity.Meeting) (*entity.Meeting, error) {
	stored := *m
	stored.ID = uuid.New()
	f.meetings[stored.ID] = &stored
	return &stored, nil
}

func (f *fakeMeetingRepo) GetMeetingByID(_ context.Context, id uuid.UUID) (*entity.Meeting, error) {
	if m, ok := f.meetings[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeMeetingRepo) GetMeetingsBySponsorID(_ context.Context, sponsorID uuid.UUID) ([]entity.Meeting, error) {
	var out []entity.Meeting
	for _, m := range f.meetings {
		if m.SponsorID == sponsorID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) GetMeetingsByOrganizerID(_ context.Context, organizerID uuid.UUID) ([]entity.Meeting, error) {
	var out []entity.Meeting
	for _, m := range f.meetings {
		if m.OrganizerID == organizerID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMeetingRepo) UpdateMeeting(_ context.Context, m *entity.Meeting) error {
	cp := *m
	f.meetings[m.ID] = &cp
	return nil
}

type eventResolver struct {
	organizerID uuid.UUID
}

func (r *eventResolver) GetEventByID(_ context.Context, id uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	return &eventdto.EventResponse{ID: id.String(), OrganizerID: r.organizerID.String(), Title: "DevConf"}, nil
}

func (r *eventResolver) GetEvents(context.Context, eventdto.EventFilter, params.QueryParams) (*eventdto.PaginatedEventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) GetEventBySlug(context.Context, string) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) GetMyEvents(context.Context, uuid.UUID) ([]eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) CreateEvent(context.Context, uuid.UUID, *eventdto.CreateEventRequest) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) UpdateEvent(context.Context, uuid.UUID, uuid.UUID, *eventdto.UpdateEventRequest) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) DeleteEvent(context.Context, uuid.UUID, uuid.UUID) *errors.AppError {
	return nil
}
func (r *eventResolver) PublishEvent(context.Context, uuid.UUID, uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) CancelEvent(context.Context, uuid.UUID, uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) CompleteEvent(context.Context, uuid.UUID, uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) SetCoverImage(context.Context, uuid.UUID, uuid.UUID, string) (*eventdto.EventResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) CreateSponsorshipPlan(context.Context, uuid.UUID, uuid.UUID, *eventdto.CreatePlanRequest) (*eventdto.PlanResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) UpdateSponsorshipPlan(context.Context, uuid.UUID, uuid.UUID, uuid.UUID, *eventdto.UpdatePlanRequest) (*eventdto.PlanResponse, *errors.AppError) {
	return nil, nil
}
func (r *eventResolver) DeleteSponsorshipPlan(context.Context, uuid.UUID, uuid.UUID, uuid.UUID) *errors.AppError {
	return nil
}

type recordingEnqueuer struct {
	tasks []string
}

func (e *recordingEnqueuer) Enqueue(_ context.Context, taskType string, _ any, _ ...asynq.Option) error {
	e.tasks = append(e.tasks, taskType)
	return nil
}

func schedule(t *testing.T, svc MeetingServiceInterface, sponsorID uuid.UUID) *dto.MeetingResponse {
	t.Helper()
	result, appErr := svc.ScheduleMeeting(context.Background(), sponsorID, &dto.ScheduleMeetingRequest{
		EventID:       uuid.New().String(),
		Title:         "Sponsorship discussion",
		ProposedTimes: []string{time.Now().Add(48 * time.Hour).Format(time.RFC3339)},
	})
	require.Nil(t, appErr)
	return result
}

func TestScheduleMeetingCreatesRequested(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	enqueuer := &recordingEnqueuer{}
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, enqueuer)

	result := schedule(t, svc, uuid.New())

	assert.Equal(t, string(entity.MeetingStatusRequested), result.Status)
	assert.Equal(t, organizerID.String(), result.OrganizerID)
	assert.Nil(t, result.ConfirmedTime)
	assert.Empty(t, result.MeetingLink)
	assert.Len(t, enqueuer.tasks, 1)
}

func TestScheduleMeetingRequiresProposedTimes(t *testing.T) {
	svc := NewMeetingService(newFakeMeetingRepo(), &eventResolver{organizerID: uuid.New()}, nil)

	_, appErr := svc.ScheduleMeeting(context.Background(), uuid.New(), &dto.ScheduleMeetingRequest{
		EventID: uuid.New().String(),
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
}

func TestConfirmMeetingRequiresBothFields(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, nil)

	meeting := schedule(t, svc, uuid.New())
	meetingID := uuid.MustParse(meeting.ID)
	confirmedTime := time.Now().Add(72 * time.Hour).Format(time.RFC3339)

	cases := []dto.ConfirmMeetingRequest{
		{ConfirmedTime: confirmedTime},
		{MeetingLink: "https://zoom.us/j/42"},
		{},
	}
	for _, req := range cases {
		_, appErr := svc.ConfirmMeeting(context.Background(), meetingID, organizerID, &req)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
	}

	stored, _ := repo.GetMeetingByID(context.Background(), meetingID)
	assert.Equal(t, entity.MeetingStatusRequested, stored.Status)
	assert.Nil(t, stored.ConfirmedTime)
}

func TestConfirmMeetingTransitionsToConfirmed(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, nil)

	meeting := schedule(t, svc, uuid.New())
	meetingID := uuid.MustParse(meeting.ID)

	result, appErr := svc.ConfirmMeeting(context.Background(), meetingID, organizerID, &dto.ConfirmMeetingRequest{
		ConfirmedTime: time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		MeetingLink:   "https://meet.google.com/abc-defg-hij",
	})
	require.Nil(t, appErr)

	assert.Equal(t, string(entity.MeetingStatusConfirmed), result.Status)
	assert.NotNil(t, result.ConfirmedTime)
	assert.Equal(t, "https://meet.google.com/abc-defg-hij", result.MeetingLink)
}

func TestConfirmMeetingOrganizerOnly(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	sponsorID := uuid.New()
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, nil)

	meeting := schedule(t, svc, sponsorID)

	_, appErr := svc.ConfirmMeeting(context.Background(), uuid.MustParse(meeting.ID), sponsorID, &dto.ConfirmMeetingRequest{
		ConfirmedTime: time.Now().Add(time.Hour).Format(time.RFC3339),
		MeetingLink:   "https://zoom.us/j/1",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)
}

func TestCancelMeetingFromAnyState(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	sponsorID := uuid.New()
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, nil)

	meeting := schedule(t, svc, sponsorID)
	meetingID := uuid.MustParse(meeting.ID)

	_, appErr := svc.ConfirmMeeting(context.Background(), meetingID, organizerID, &dto.ConfirmMeetingRequest{
		ConfirmedTime: time.Now().Add(time.Hour).Format(time.RFC3339),
		MeetingLink:   "https://zoom.us/j/1",
	})
	require.Nil(t, appErr)

	result, appErr := svc.CancelMeeting(context.Background(), meetingID, sponsorID)
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.MeetingStatusCancelled), result.Status)
}

func TestCancelledMeetingStaysCancelled(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	sponsorID := uuid.New()
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, nil)

	meeting := schedule(t, svc, sponsorID)
	meetingID := uuid.MustParse(meeting.ID)
	_, _ = svc.CancelMeeting(context.Background(), meetingID, sponsorID)

	_, appErr := svc.ConfirmMeeting(context.Background(), meetingID, organizerID, &dto.ConfirmMeetingRequest{
		ConfirmedTime: time.Now().Add(time.Hour).Format(time.RFC3339),
		MeetingLink:   "https://zoom.us/j/1",
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidStateTransition, appErr.Code)

	again, appErr := svc.CancelMeeting(context.Background(), meetingID, organizerID)
	require.Nil(t, appErr)
	assert.Equal(t, string(entity.MeetingStatusCancelled), again.Status)
}

func TestCompleteMeetingRequiresConfirmed(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, nil)

	meeting := schedule(t, svc, uuid.New())
	meetingID := uuid.MustParse(meeting.ID)

	_, appErr := svc.CompleteMeeting(context.Background(), meetingID, organizerID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidStateTransition, appErr.Code)
}

func TestGetMeetingRestrictedToParticipants(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	sponsorID := uuid.New()
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, nil)

	meeting := schedule(t, svc, sponsorID)
	meetingID := uuid.MustParse(meeting.ID)

	_, appErr := svc.GetMeetingByID(context.Background(), meetingID, uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrForbidden, appErr.Code)

	_, appErr = svc.GetMeetingByID(context.Background(), meetingID, organizerID)
	require.Nil(t, appErr)
}

func TestGetMyMeetingsFilters(t *testing.T) {
	repo := newFakeMeetingRepo()
	organizerID := uuid.New()
	userID := uuid.New()
	svc := NewMeetingService(repo, &eventResolver{organizerID: organizerID}, &recordingEnqueuer{})
	ctx := context.Background()

	// One as sponsor, one as organizer.
	asSponsor := schedule(t, svc, userID)
	repo.meetings[uuid.MustParse(asSponsor.ID)].Status = entity.MeetingStatusConfirmed
	repo.CreateMeeting(ctx, &entity.Meeting{
		SponsorID:   uuid.New(),
		OrganizerID: userID,
		EventID:     uuid.New(),
		Title:       "Inbound request",
		Status:      entity.MeetingStatusRequested,
	})

	all, appErr := svc.GetMyMeetings(ctx, userID, dto.MeetingFilter{})
	require.Nil(t, appErr)
	assert.Len(t, all, 2)

	sponsorOnly, appErr := svc.GetMyMeetings(ctx, userID, dto.MeetingFilter{Role: "sponsor"})
	require.Nil(t, appErr)
	require.Len(t, sponsorOnly, 1)
	assert.Equal(t, asSponsor.ID, sponsorOnly[0].ID)

	confirmed, appErr := svc.GetMyMeetings(ctx, userID, dto.MeetingFilter{Status: string(entity.MeetingStatusConfirmed)})
	require.Nil(t, appErr)
	require.Len(t, confirmed, 1)
	assert.Equal(t, asSponsor.ID, confirmed[0].ID)
}
