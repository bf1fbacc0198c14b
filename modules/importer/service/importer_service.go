package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"sponlink-api/core/constants"
	"sponlink-api/core/errors"
	"sponlink-api/core/logger"
	"sponlink-api/core/utils"
	eventdto "sponlink-api/modules/event/dto"
	eventservice "sponlink-api/modules/event/service"
	"sponlink-api/modules/importer/dto"

	"github.com/google/uuid"
)

// ImporterService fetches third-party event pages through the scrape endpoint
// and reshapes them into the internal event form.
type ImporterService struct {
	scrapeBaseURL string
	client        *http.Client
	eventSvc      eventservice.EventServiceInterface
}

type ImporterServiceInterface interface {
	ScrapeLumaEvent(ctx context.Context, req *dto.ImportLumaRequest) (*dto.ImportedEventResponse, *errors.AppError)
	ImportAsDraft(ctx context.Context, organizerID uuid.UUID, req *dto.ImportLumaRequest) (*eventdto.EventResponse, *errors.AppError)
}

func NewImporterService(scrapeBaseURL string, eventSvc eventservice.EventServiceInterface) ImporterServiceInterface {
	return &ImporterService{
		scrapeBaseURL: scrapeBaseURL,
		client:        &http.Client{Timeout: constants.ScrapeRequestTimeout},
		eventSvc:      eventSvc,
	}
}

// ScrapeLumaEvent fetches the event page and maps it to the internal shape.
// Any non-OK response or a scrape without a title fails the whole import; the
// error propagates to the caller with no retry.
func (s *ImporterService) ScrapeLumaEvent(ctx context.Context, req *dto.ImportLumaRequest) (*dto.ImportedEventResponse, *errors.AppError) {
	imported, _, appErr := s.scrape(ctx, req)
	return imported, appErr
}

// scrape also returns the raw scrape payload so ImportAsDraft can reuse the
// original RFC3339 instants. The mapped response carries local wall-clock
// strings, which are for form prefill only.
func (s *ImporterService) scrape(ctx context.Context, req *dto.ImportLumaRequest) (*dto.ImportedEventResponse, *dto.LumaScrapeResponse, *errors.AppError) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, nil, errors.NewAppError(errors.ErrInvalidRequestData, "Event URL is required", nil)
	}

	scraped, appErr := s.fetch(ctx, req.URL)
	if appErr != nil {
		return nil, nil, appErr
	}

	if strings.TrimSpace(scraped.Title) == "" {
		return nil, nil, errors.NewAppError(errors.ErrInvalidInput, "Scraped event has no title", nil)
	}

	timezone := utils.ResolveTimezone(scraped.Timezone, utils.ResolveTimezone(req.Timezone, "Asia/Taipei"))

	result := &dto.ImportedEventResponse{
		Title:       scraped.Title,
		Description: scraped.Description,
		CoverImage:  scraped.CoverImage,
		Timezone:    timezone,
		Location:    mapLocation(scraped),
		Tags:        scraped.Tags,
		Category:    scraped.Category,
		SourceURL:   req.URL,
	}
	if result.Tags == nil {
		result.Tags = []string{}
	}

	if scraped.StartAt != "" {
		if local, err := utils.ConvertToLocalInput(scraped.StartAt, timezone); err == nil {
			result.StartTime = local
		}
	}
	if scraped.EndAt != "" {
		if local, err := utils.ConvertToLocalInput(scraped.EndAt, timezone); err == nil {
			result.EndTime = local
		}
	}

	return result, scraped, nil
}

// ImportAsDraft scrapes the event and persists it as a DRAFT owned by the
// organizer. Used by the background import task.
func (s *ImporterService) ImportAsDraft(ctx context.Context, organizerID uuid.UUID, req *dto.ImportLumaRequest) (*eventdto.EventResponse, *errors.AppError) {
	imported, scraped, appErr := s.scrape(ctx, req)
	if appErr != nil {
		return nil, appErr
	}

	createReq := &eventdto.CreateEventRequest{
		Title:       imported.Title,
		Description: imported.Description,
		CoverImage:  imported.CoverImage,
		Timezone:    imported.Timezone,
		Category:    imported.Category,
		Tags:        imported.Tags,
	}
	if imported.Location.IsVirtual {
		createReq.Location = imported.Location.Name
	} else if imported.Location.FullAddress != "" {
		createReq.Location = imported.Location.FullAddress
	} else {
		createReq.Location = imported.Location.Name
	}
	// CreateEvent expects the original instants. The local strings on the
	// mapped response would shift the event by the zone offset if relabeled.
	if imported.StartTime != "" {
		createReq.StartTime = scraped.StartAt
	}
	if imported.EndTime != "" {
		createReq.EndTime = scraped.EndAt
	}

	created, appErr := s.eventSvc.CreateEvent(ctx, organizerID, createReq)
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("ImporterService:ImportAsDraft:Created", "event_id", created.ID, "source", req.URL)
	return created, nil
}

func (s *ImporterService) fetch(ctx context.Context, eventURL string) (*dto.LumaScrapeResponse, *errors.AppError) {
	endpoint := s.scrapeBaseURL + "?url=" + url.QueryEscape(eventURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Invalid scrape URL", err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		logger.Error("ImporterService:Fetch", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch event page", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrInternalServer,
			fmt.Sprintf("Scrape endpoint returned status %d", resp.StatusCode), nil)
	}

	var scraped dto.LumaScrapeResponse
	if err := json.NewDecoder(resp.Body).Decode(&scraped); err != nil {
		logger.Error("ImporterService:Fetch:Decode", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to decode scrape response", err)
	}

	return &scraped, nil
}

// mapLocation resolves the location sub-object by priority: an explicit
// location_type from the scrape wins, then a Google place_id, then a missing
// address means virtual, anything else is a custom address.
func mapLocation(scraped *dto.LumaScrapeResponse) dto.ImportedLocation {
	loc := dto.ImportedLocation{
		Name:       scraped.Location.Name,
		Address:    scraped.Location.Address,
		City:       scraped.Location.City,
		Country:    scraped.Location.Country,
		PostalCode: scraped.Location.PostalCode,
		Latitude:   scraped.Location.Latitude,
		Longitude:  scraped.Location.Longitude,
		PlaceID:    scraped.Location.PlaceID,
	}
	loc.FullAddress = joinAddress(scraped.Location)

	switch strings.ToUpper(scraped.LocationType) {
	case "VIRTUAL":
		loc.LocationType = "VIRTUAL"
	case "GOOGLE":
		loc.LocationType = "GOOGLE"
	case "CUSTOM":
		loc.LocationType = "CUSTOM"
	default:
		if scraped.Location.PlaceID != "" {
			loc.LocationType = "GOOGLE"
		} else if scraped.Location.Address == "" {
			loc.LocationType = "VIRTUAL"
		} else {
			loc.LocationType = "CUSTOM"
		}
	}

	if loc.LocationType == "VIRTUAL" {
		loc.IsVirtual = true
		if scraped.Location.URL != "" {
			platform := utils.DetectVirtualPlatform(scraped.Location.URL)
			if platform.IsVirtual {
				loc.PlatformName = platform.PlatformName
			}
			if loc.Name == "" {
				loc.Name = scraped.Location.URL
			}
		}
	}

	return loc
}

func joinAddress(l dto.LumaLocation) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{l.Address, l.City, l.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
