package service

import (
	"context"
	"time"

	"sponlink-api/core/constants"
	"sponlink-api/core/errors"
	"sponlink-api/core/logger"
	"sponlink-api/core/worker"
	eventservice "sponlink-api/modules/event/service"
	"sponlink-api/modules/meeting/dto"
	"sponlink-api/modules/meeting/entity"
	"sponlink-api/modules/meeting/repository"

	"github.com/google/uuid"
)

// MeetingService handles the sponsor-organizer meeting workflow.
type MeetingService struct {
	repo     repository.MeetingRepositoryInterface
	eventSvc eventservice.EventServiceInterface
	enqueuer worker.Enqueuer
}

type MeetingServiceInterface interface {
	ScheduleMeeting(ctx context.Context, sponsorID uuid.UUID, req *dto.ScheduleMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	GetMeetingByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
	GetMyMeetings(ctx context.Context, userID uuid.UUID, filter dto.MeetingFilter) ([]dto.MeetingResponse, *errors.AppError)
	ConfirmMeeting(ctx context.Context, meetingID uuid.UUID, organizerID uuid.UUID, req *dto.ConfirmMeetingRequest) (*dto.MeetingResponse, *errors.AppError)
	CancelMeeting(ctx context.Context, meetingID uuid.UUID, userID uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
	CompleteMeeting(ctx context.Context, meetingID uuid.UUID, organizerID uuid.UUID) (*dto.MeetingResponse, *errors.AppError)
}

func NewMeetingService(repo repository.MeetingRepositoryInterface, eventSvc eventservice.EventServiceInterface, enqueuer worker.Enqueuer) MeetingServiceInterface {
	return &MeetingService{repo: repo, eventSvc: eventSvc, enqueuer: enqueuer}
}

// ScheduleMeeting creates a REQUESTED meeting with the sponsor's proposed
// times. The organizer is resolved from the target event.
func (s *MeetingService) ScheduleMeeting(ctx context.Context, sponsorID uuid.UUID, req *dto.ScheduleMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	if len(req.ProposedTimes) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "At least one proposed time is required", nil)
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID", err)
	}

	event, appErr := s.eventSvc.GetEventByID(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	organizerID, err := uuid.Parse(event.OrganizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Invalid organizer on event", err)
	}

	proposed := make(entity.ProposedTimes, 0, len(req.ProposedTimes))
	for _, raw := range req.ProposedTimes {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Proposed times must be RFC3339 timestamps", err)
		}
		proposed = append(proposed, t)
	}

	title := req.Title
	if title == "" {
		title = "Sponsorship meeting for " + event.Title
	}

	meeting := &entity.Meeting{
		SponsorID:     sponsorID,
		OrganizerID:   organizerID,
		EventID:       eventID,
		Title:         title,
		ProposedTimes: proposed,
		Status:        entity.MeetingStatusRequested,
	}
	if req.Description != "" {
		meeting.Description = &req.Description
	}

	created, err := s.repo.CreateMeeting(ctx, meeting)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to schedule meeting", err)
	}

	s.enqueueNotify(ctx, created.ID, organizerID, "REQUESTED")
	return dto.ToMeetingResponse(created), nil
}

func (s *MeetingService) GetMeetingByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	if meeting.SponsorID != userID && meeting.OrganizerID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not a meeting participant", nil)
	}

	return dto.ToMeetingResponse(meeting), nil
}

// GetMyMeetings returns meetings where the user is either side, optionally
// narrowed to one role or one status.
func (s *MeetingService) GetMyMeetings(ctx context.Context, userID uuid.UUID, filter dto.MeetingFilter) ([]dto.MeetingResponse, *errors.AppError) {
	var merged []entity.Meeting

	if filter.Role == "" || filter.Role == "sponsor" {
		asSponsor, err := s.repo.GetMeetingsBySponsorID(ctx, userID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meetings", err)
		}
		merged = append(merged, asSponsor...)
	}

	if filter.Role == "" || filter.Role == "organizer" {
		asOrganizer, err := s.repo.GetMeetingsByOrganizerID(ctx, userID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meetings", err)
		}
		for i := range asOrganizer {
			// Already included from the sponsor side.
			if filter.Role == "" && asOrganizer[i].SponsorID == userID {
				continue
			}
			merged = append(merged, asOrganizer[i])
		}
	}

	result := make([]dto.MeetingResponse, 0, len(merged))
	for i := range merged {
		if filter.Status != "" && string(merged[i].Status) != filter.Status {
			continue
		}
		result = append(result, *dto.ToMeetingResponse(&merged[i]))
	}

	return result, nil
}

// ConfirmMeeting transitions REQUESTED to CONFIRMED. Both a confirmed time and
// a meeting link are required; there is no partial confirmation.
func (s *MeetingService) ConfirmMeeting(ctx context.Context, meetingID uuid.UUID, organizerID uuid.UUID, req *dto.ConfirmMeetingRequest) (*dto.MeetingResponse, *errors.AppError) {
	if req.ConfirmedTime == "" || req.MeetingLink == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Both confirmed_time and meeting_link are required", nil)
	}

	confirmedTime, err := time.Parse(time.RFC3339, req.ConfirmedTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "confirmed_time must be an RFC3339 timestamp", err)
	}

	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	if meeting.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only the organizer can confirm", nil)
	}
	if meeting.Status != entity.MeetingStatusRequested {
		return nil, errors.NewAppError(errors.ErrInvalidStateTransition, "Only requested meetings can be confirmed", nil)
	}

	meeting.ConfirmedTime = &confirmedTime
	meeting.MeetingLink = &req.MeetingLink
	meeting.Status = entity.MeetingStatusConfirmed

	if err := s.repo.UpdateMeeting(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to confirm meeting", err)
	}

	s.enqueueNotify(ctx, meeting.ID, meeting.SponsorID, "CONFIRMED")
	return dto.ToMeetingResponse(meeting), nil
}

// CancelMeeting moves any state to CANCELLED. Cancellation is terminal and
// unconditional for either participant; a cancelled meeting stays cancelled.
func (s *MeetingService) CancelMeeting(ctx context.Context, meetingID uuid.UUID, userID uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	if meeting.SponsorID != userID && meeting.OrganizerID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not a meeting participant", nil)
	}

	if meeting.Status == entity.MeetingStatusCancelled {
		return dto.ToMeetingResponse(meeting), nil
	}

	meeting.Status = entity.MeetingStatusCancelled
	if err := s.repo.UpdateMeeting(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to cancel meeting", err)
	}

	recipient := meeting.SponsorID
	if userID == meeting.SponsorID {
		recipient = meeting.OrganizerID
	}
	s.enqueueNotify(ctx, meeting.ID, recipient, "CANCELLED")

	return dto.ToMeetingResponse(meeting), nil
}

func (s *MeetingService) CompleteMeeting(ctx context.Context, meetingID uuid.UUID, organizerID uuid.UUID) (*dto.MeetingResponse, *errors.AppError) {
	meeting, err := s.repo.GetMeetingByID(ctx, meetingID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get meeting", err)
	}
	if meeting == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Meeting not found", nil)
	}

	if meeting.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only the organizer can complete", nil)
	}
	if meeting.Status != entity.MeetingStatusConfirmed {
		return nil, errors.NewAppError(errors.ErrInvalidStateTransition, "Only confirmed meetings can be completed", nil)
	}

	meeting.Status = entity.MeetingStatusCompleted
	if err := s.repo.UpdateMeeting(ctx, meeting); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to complete meeting", err)
	}

	return dto.ToMeetingResponse(meeting), nil
}

func (s *MeetingService) enqueueNotify(ctx context.Context, meetingID uuid.UUID, recipientID uuid.UUID, kind string) {
	if s.enqueuer == nil {
		return
	}

	err := s.enqueuer.Enqueue(ctx, constants.TaskMeetingNotify, dto.MeetingNotifyPayload{
		MeetingID:   meetingID.String(),
		RecipientID: recipientID.String(),
		Kind:        kind,
	})
	if err != nil {
		logger.Warn("MeetingService:EnqueueNotify", "error", err)
	}
}
