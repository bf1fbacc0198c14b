package service

import (
	"context"

	"sponlink-api/core/errors"
	"sponlink-api/core/params"
	eventdto "sponlink-api/modules/event/dto"
	eventservice "sponlink-api/modules/event/service"
	"sponlink-api/modules/series/dto"
	"sponlink-api/modules/series/entity"
	"sponlink-api/modules/series/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SeriesService is a read-oriented aggregation layer over event series.
// Member events are re-resolved on every call; there is no caching and a
// deleted member simply disappears from the series view.
type SeriesService struct {
	repo     repository.SeriesRepositoryInterface
	eventSvc eventservice.EventServiceInterface
}

type SeriesServiceInterface interface {
	GetAllEventSeries(ctx context.Context, filter dto.SeriesFilter, p params.QueryParams) ([]dto.SeriesResponse, int, *errors.AppError)
	GetEventSeriesByID(ctx context.Context, id uuid.UUID) (*dto.SeriesDetailResponse, *errors.AppError)
	GetEventsInSeries(ctx context.Context, id uuid.UUID) ([]eventdto.EventResponse, *errors.AppError)
	GetMainEventInSeries(ctx context.Context, id uuid.UUID) (*eventdto.EventResponse, *errors.AppError)
	GetFeaturedEventSeries(ctx context.Context, limit int) ([]dto.SeriesResponse, *errors.AppError)
	CreateEventSeries(ctx context.Context, organizerID uuid.UUID, req *dto.CreateSeriesRequest) (*dto.SeriesResponse, *errors.AppError)
}

func NewSeriesService(repo repository.SeriesRepositoryInterface, eventSvc eventservice.EventServiceInterface) SeriesServiceInterface {
	return &SeriesService{repo: repo, eventSvc: eventSvc}
}

func (s *SeriesService) GetAllEventSeries(ctx context.Context, filter dto.SeriesFilter, p params.QueryParams) ([]dto.SeriesResponse, int, *errors.AppError) {
	items, total, err := s.repo.GetSeries(ctx, filter, p)
	if err != nil {
		return nil, 0, errors.NewAppError(errors.ErrInternalServer, "Failed to get event series", err)
	}

	result := make([]dto.SeriesResponse, 0, len(items))
	for i := range items {
		memberIDs, _ := s.repo.GetMemberEventIDs(ctx, items[i].ID)
		result = append(result, *dto.ToSeriesResponse(&items[i], uuidsToStrings(memberIDs)))
	}

	return result, total, nil
}

func (s *SeriesService) GetEventSeriesByID(ctx context.Context, id uuid.UUID) (*dto.SeriesDetailResponse, *errors.AppError) {
	series, err := s.repo.GetSeriesByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event series", err)
	}
	if series == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event series not found", nil)
	}

	events, appErr := s.GetEventsInSeries(ctx, id)
	if appErr != nil {
		return nil, appErr
	}

	memberIDs, _ := s.repo.GetMemberEventIDs(ctx, id)
	return &dto.SeriesDetailResponse{
		SeriesResponse: *dto.ToSeriesResponse(series, uuidsToStrings(memberIDs)),
		Events:         events,
	}, nil
}

// GetEventsInSeries resolves each member id through the event service and
// drops members that no longer resolve.
func (s *SeriesService) GetEventsInSeries(ctx context.Context, id uuid.UUID) ([]eventdto.EventResponse, *errors.AppError) {
	series, err := s.repo.GetSeriesByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event series", err)
	}
	if series == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event series not found", nil)
	}

	memberIDs, err := s.repo.GetMemberEventIDs(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get series members", err)
	}

	events := make([]eventdto.EventResponse, 0, len(memberIDs))
	for _, eventID := range memberIDs {
		event, appErr := s.eventSvc.GetEventByID(ctx, eventID)
		if appErr != nil || event == nil {
			continue
		}
		events = append(events, *event)
	}

	return events, nil
}

// GetMainEventInSeries returns the designated main event. When main_event_id
// is unset or no longer resolves, the first member stands in.
func (s *SeriesService) GetMainEventInSeries(ctx context.Context, id uuid.UUID) (*eventdto.EventResponse, *errors.AppError) {
	series, err := s.repo.GetSeriesByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event series", err)
	}
	if series == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event series not found", nil)
	}

	if series.MainEventID != nil {
		event, appErr := s.eventSvc.GetEventByID(ctx, *series.MainEventID)
		if appErr == nil && event != nil {
			return event, nil
		}
	}

	events, appErr := s.GetEventsInSeries(ctx, id)
	if appErr != nil {
		return nil, appErr
	}
	if len(events) == 0 {
		return nil, errors.NewAppError(errors.ErrNotFound, "Series has no resolvable events", nil)
	}

	return &events[0], nil
}

func (s *SeriesService) GetFeaturedEventSeries(ctx context.Context, limit int) ([]dto.SeriesResponse, *errors.AppError) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	items, err := s.repo.GetFeaturedSeries(ctx, limit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get featured series", err)
	}

	result := make([]dto.SeriesResponse, 0, len(items))
	for i := range items {
		memberIDs, _ := s.repo.GetMemberEventIDs(ctx, items[i].ID)
		result = append(result, *dto.ToSeriesResponse(&items[i], uuidsToStrings(memberIDs)))
	}

	return result, nil
}

func (s *SeriesService) CreateEventSeries(ctx context.Context, organizerID uuid.UUID, req *dto.CreateSeriesRequest) (*dto.SeriesResponse, *errors.AppError) {
	if req.Title == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Series title is required", nil)
	}

	series := &entity.EventSeries{
		OrganizerID: organizerID,
		Title:       req.Title,
		CoverImage:  req.CoverImage,
		Status:      entity.SeriesStatusActive,
		Tags:        pq.StringArray(req.Tags),
		Featured:    req.Featured,
	}
	if req.Description != "" {
		series.Description = &req.Description
	}

	eventIDs := make([]uuid.UUID, 0, len(req.EventIDs))
	for _, raw := range req.EventIDs {
		eventID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid event ID in series", err)
		}
		eventIDs = append(eventIDs, eventID)
	}

	if req.MainEventID != "" {
		mainID, err := uuid.Parse(req.MainEventID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid main event ID", err)
		}
		series.MainEventID = &mainID
	}

	created, err := s.repo.CreateSeries(ctx, series, eventIDs)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event series", err)
	}

	memberIDs, _ := s.repo.GetMemberEventIDs(ctx, created.ID)
	return dto.ToSeriesResponse(created, uuidsToStrings(memberIDs)), nil
}

func uuidsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
