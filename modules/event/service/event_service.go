package service

import (
	"context"
	"strings"
	"time"

	"sponlink-api/core/constants"
	"sponlink-api/core/errors"
	"sponlink-api/core/logger"
	"sponlink-api/core/params"
	"sponlink-api/core/utils"
	"sponlink-api/modules/event/dto"
	"sponlink-api/modules/event/entity"
	"sponlink-api/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/lib/pq"
)

// EventService handles event and sponsorship plan business logic.
type EventService struct {
	repo repository.EventRepositoryInterface
}

// EventServiceInterface defines the service contract.
type EventServiceInterface interface {
	GetEvents(ctx context.Context, filter dto.EventFilter, p params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError)
	GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError)
	GetEventBySlug(ctx context.Context, eventSlug string) (*dto.EventResponse, *errors.AppError)
	GetMyEvents(ctx context.Context, organizerID uuid.UUID) ([]dto.EventResponse, *errors.AppError)
	CreateEvent(ctx context.Context, organizerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) *errors.AppError
	PublishEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) (*dto.EventResponse, *errors.AppError)
	CancelEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) (*dto.EventResponse, *errors.AppError)
	CompleteEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) (*dto.EventResponse, *errors.AppError)
	SetCoverImage(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, coverURL string) (*dto.EventResponse, *errors.AppError)

	CreateSponsorshipPlan(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, req *dto.CreatePlanRequest) (*dto.PlanResponse, *errors.AppError)
	UpdateSponsorshipPlan(ctx context.Context, eventID uuid.UUID, planID uuid.UUID, organizerID uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, *errors.AppError)
	DeleteSponsorshipPlan(ctx context.Context, eventID uuid.UUID, planID uuid.UUID, organizerID uuid.UUID) *errors.AppError
}

func NewEventService(repo repository.EventRepositoryInterface) EventServiceInterface {
	return &EventService{repo: repo}
}

func (s *EventService) GetEvents(ctx context.Context, filter dto.EventFilter, p params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError) {
	events, total, err := s.repo.GetEvents(ctx, filter, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}

	items := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		plans, _ := s.repo.GetPlansByEventID(ctx, events[i].ID)
		items = append(items, *dto.ToEventResponse(&events[i], plans))
	}

	return &dto.PaginatedEventResponse{
		Items:      items,
		TotalItems: total,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

func (s *EventService) GetEventByID(ctx context.Context, id uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	plans, _ := s.repo.GetPlansByEventID(ctx, id)
	return dto.ToEventResponse(event, plans), nil
}

func (s *EventService) GetEventBySlug(ctx context.Context, eventSlug string) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventBySlug(ctx, eventSlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	plans, _ := s.repo.GetPlansByEventID(ctx, event.ID)
	return dto.ToEventResponse(event, plans), nil
}

func (s *EventService) GetMyEvents(ctx context.Context, organizerID uuid.UUID) ([]dto.EventResponse, *errors.AppError) {
	events, err := s.repo.GetEventsByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get events", err)
	}

	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		plans, _ := s.repo.GetPlansByEventID(ctx, events[i].ID)
		result = append(result, *dto.ToEventResponse(&events[i], plans))
	}

	return result, nil
}

// CreateEvent applies the silent-defaulting policy: missing display fields get
// hard-coded defaults instead of a validation error, and new events always
// start in DRAFT.
func (s *EventService) CreateEvent(ctx context.Context, organizerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = constants.DefaultEventTitle
	}

	coverImage := req.CoverImage
	if coverImage == "" {
		coverImage = constants.DefaultEventCoverImage
	}

	timezone := utils.ResolveTimezone(req.Timezone, "Asia/Taipei")

	event := &entity.Event{
		OrganizerID: organizerID,
		OwnerType:   entity.OwnerTypeUser,
		Title:       title,
		Slug:        slug.Make(title) + "-" + utils.GenerateID(),
		CoverImage:  coverImage,
		Timezone:    timezone,
		Location:    classifyLocation(req.Location),
		Status:      entity.EventStatusDraft,
		Tags:        pq.StringArray(req.Tags),
	}

	if req.Description != "" {
		event.Description = &req.Description
	}
	if req.Category != "" {
		event.Category = &req.Category
	}
	if t, err := time.Parse(time.RFC3339, req.StartTime); err == nil {
		event.StartTime = &t
	}
	if t, err := time.Parse(time.RFC3339, req.EndTime); err == nil {
		event.EndTime = &t
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return dto.ToEventResponse(created, nil), nil
}

func (s *EventService) UpdateEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if event.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not the event organizer", nil)
	}

	if req.Title != nil && strings.TrimSpace(*req.Title) != "" {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		event.Description = req.Description
	}
	if req.CoverImage != nil && *req.CoverImage != "" {
		event.CoverImage = *req.CoverImage
	}
	if req.Timezone != nil {
		event.Timezone = utils.ResolveTimezone(*req.Timezone, event.Timezone)
	}
	if req.Location != nil {
		event.Location = classifyLocation(*req.Location)
	}
	if req.Category != nil {
		event.Category = req.Category
	}
	if req.Tags != nil {
		event.Tags = pq.StringArray(req.Tags)
	}
	if req.StartTime != nil {
		if t, parseErr := time.Parse(time.RFC3339, *req.StartTime); parseErr == nil {
			event.StartTime = &t
		}
	}
	if req.EndTime != nil {
		if t, parseErr := time.Parse(time.RFC3339, *req.EndTime); parseErr == nil {
			event.EndTime = &t
		}
	}

	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event", err)
	}

	return s.GetEventByID(ctx, eventID)
}

func (s *EventService) DeleteEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) *errors.AppError {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if event.OrganizerID != organizerID {
		return errors.NewAppError(errors.ErrForbidden, "Not the event organizer", nil)
	}

	deleted, err := s.repo.DeleteEvent(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete event", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return nil
}

// PublishEvent moves DRAFT to PUBLISHED. Publishing an already published
// event is a no-op returning the event unchanged; nothing ever reverts
// PUBLISHED back to DRAFT.
func (s *EventService) PublishEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if event.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not the event organizer", nil)
	}

	if event.Status == entity.EventStatusPublished {
		plans, _ := s.repo.GetPlansByEventID(ctx, eventID)
		return dto.ToEventResponse(event, plans), nil
	}

	if event.Status != entity.EventStatusDraft {
		return nil, errors.NewAppError(errors.ErrInvalidStateTransition, "Only draft events can be published", nil)
	}

	event.Status = entity.EventStatusPublished
	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to publish event", err)
	}

	logger.Info("EventService:PublishEvent:Published", "event_id", eventID)
	return s.GetEventByID(ctx, eventID)
}

func (s *EventService) CancelEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	return s.transition(ctx, eventID, organizerID, entity.EventStatusCancelled)
}

func (s *EventService) CompleteEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	return s.transition(ctx, eventID, organizerID, entity.EventStatusCompleted)
}

func (s *EventService) transition(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, target entity.EventStatus) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if event.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not the event organizer", nil)
	}

	if event.Status == target {
		plans, _ := s.repo.GetPlansByEventID(ctx, eventID)
		return dto.ToEventResponse(event, plans), nil
	}

	if event.Status != entity.EventStatusPublished {
		return nil, errors.NewAppError(errors.ErrInvalidStateTransition, "Only published events can transition", nil)
	}

	event.Status = target
	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update event status", err)
	}

	return s.GetEventByID(ctx, eventID)
}

func (s *EventService) SetCoverImage(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, coverURL string) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if event.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not the event organizer", nil)
	}

	event.CoverImage = coverURL
	if err := s.repo.UpdateEvent(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update cover image", err)
	}

	return s.GetEventByID(ctx, eventID)
}

// ===================== Sponsorship plan sub-CRUD =====================

func (s *EventService) CreateSponsorshipPlan(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID, req *dto.CreatePlanRequest) (*dto.PlanResponse, *errors.AppError) {
	event, appErr := s.ownedEvent(ctx, eventID, organizerID)
	if appErr != nil {
		return nil, appErr
	}

	plan := &entity.SponsorshipPlan{
		EventID:     event.ID,
		Title:       req.Title,
		Price:       req.Price,
		Benefits:    pq.StringArray(req.Benefits),
		MaxSponsors: req.MaxSponsors,
	}
	if req.Description != "" {
		plan.Description = &req.Description
	}

	created, err := s.repo.CreatePlan(ctx, plan)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create sponsorship plan", err)
	}

	return dto.ToPlanResponse(created), nil
}

func (s *EventService) UpdateSponsorshipPlan(ctx context.Context, eventID uuid.UUID, planID uuid.UUID, organizerID uuid.UUID, req *dto.UpdatePlanRequest) (*dto.PlanResponse, *errors.AppError) {
	if _, appErr := s.ownedEvent(ctx, eventID, organizerID); appErr != nil {
		return nil, appErr
	}

	plan, err := s.repo.GetPlanByID(ctx, eventID, planID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get sponsorship plan", err)
	}
	if plan == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Sponsorship plan not found", nil)
	}

	if req.Title != nil && *req.Title != "" {
		plan.Title = *req.Title
	}
	if req.Description != nil {
		plan.Description = req.Description
	}
	if req.Price != nil {
		plan.Price = *req.Price
	}
	if req.Benefits != nil {
		plan.Benefits = pq.StringArray(req.Benefits)
	}
	if req.MaxSponsors != nil {
		plan.MaxSponsors = *req.MaxSponsors
	}

	if err := s.repo.UpdatePlan(ctx, plan); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update sponsorship plan", err)
	}

	return dto.ToPlanResponse(plan), nil
}

func (s *EventService) DeleteSponsorshipPlan(ctx context.Context, eventID uuid.UUID, planID uuid.UUID, organizerID uuid.UUID) *errors.AppError {
	if _, appErr := s.ownedEvent(ctx, eventID, organizerID); appErr != nil {
		return appErr
	}

	deleted, err := s.repo.DeletePlan(ctx, eventID, planID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to delete sponsorship plan", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Sponsorship plan not found", nil)
	}

	return nil
}

func (s *EventService) ownedEvent(ctx context.Context, eventID uuid.UUID, organizerID uuid.UUID) (*entity.Event, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Not the event organizer", nil)
	}
	return event, nil
}

// classifyLocation turns free-text location input into a Location value.
// Virtual-meeting links win, otherwise the text becomes a custom address.
func classifyLocation(text string) entity.Location {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return entity.Location{LocationType: entity.LocationTypeCustom}
	}

	platform := utils.DetectVirtualPlatform(trimmed)
	if platform.IsVirtual {
		return entity.Location{
			Name:         trimmed,
			LocationType: entity.LocationTypeVirtual,
			IsVirtual:    true,
			PlatformName: platform.PlatformName,
		}
	}

	return entity.Location{
		Name:         trimmed,
		Address:      trimmed,
		FullAddress:  trimmed,
		LocationType: entity.LocationTypeCustom,
	}
}
