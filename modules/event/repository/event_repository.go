package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"sponlink-api/core/database"
	"sponlink-api/core/logger"
	"sponlink-api/core/params"
	"sponlink-api/modules/event/dto"
	"sponlink-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository handles event and sponsorship plan database operations.
type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the repository contract.
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*entity.Event, error)
	GetEvents(ctx context.Context, filter dto.EventFilter, p params.QueryParams) ([]entity.Event, int, error)
	GetEventsByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]entity.Event, error)
	UpdateEvent(ctx context.Context, event *entity.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error)

	CreatePlan(ctx context.Context, plan *entity.SponsorshipPlan) (*entity.SponsorshipPlan, error)
	GetPlanByID(ctx context.Context, eventID uuid.UUID, planID uuid.UUID) (*entity.SponsorshipPlan, error)
	GetPlansByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.SponsorshipPlan, error)
	UpdatePlan(ctx context.Context, plan *entity.SponsorshipPlan) error
	DeletePlan(ctx context.Context, eventID uuid.UUID, planID uuid.UUID) (bool, error)
}

const eventColumns = `
	id, organizer_id, owner_type, title, slug, description, cover_image,
	start_time, end_time, timezone, location, status, category, tags,
	created_at, updated_at
`

// ===================== Event CRUD =====================

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (organizer_id, owner_type, title, slug, description, cover_image,
		                    start_time, end_time, timezone, location, status, category, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.OrganizerID, event.OwnerType, event.Title, event.Slug, event.Description,
		event.CoverImage, event.StartTime, event.EndTime, event.Timezone,
		event.Location, event.Status, event.Category, event.Tags)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) GetEventBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventBySlug", err)
		return nil, err
	}

	return &event, nil
}

// GetEvents applies the optional predicates as a linear WHERE scan: category
// equality, status equality, case-insensitive substring over title,
// description and tags.
func (r *EventRepository) GetEvents(ctx context.Context, filter dto.EventFilter, p params.QueryParams) ([]entity.Event, int, error) {
	offset := (p.PageNumber - 1) * p.PageSize

	baseQuery := `FROM events`
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, filter.Status)
		argIndex++
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) t WHERE t ILIKE $%d))",
			argIndex, argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, countQuery, args...)
	if err != nil {
		logger.Error("EventRepository:GetEvents - Count", err)
		return nil, 0, err
	}

	dataQuery := `SELECT ` + eventColumns + " " + baseQuery + whereClause + `
		ORDER BY created_at DESC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, p.PageSize, offset)

	var events []entity.Event
	err = r.DB.SelectContext(ctx, &events, dataQuery, args...)
	if err != nil {
		logger.Error("EventRepository:GetEvents - Select", err)
		return nil, 0, err
	}

	return events, totalItems, nil
}

func (r *EventRepository) GetEventsByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE organizer_id = $1 ORDER BY created_at DESC`

	var events []entity.Event
	err := r.DB.SelectContext(ctx, &events, query, organizerID)
	if err != nil {
		logger.Error("EventRepository:GetEventsByOrganizerID", err)
		return nil, err
	}

	return events, nil
}

func (r *EventRepository) UpdateEvent(ctx context.Context, event *entity.Event) error {
	query := `
		UPDATE events
		SET title = $2, slug = $3, description = $4, cover_image = $5,
		    start_time = $6, end_time = $7, timezone = $8, location = $9,
		    status = $10, category = $11, tags = $12, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query,
		event.ID, event.Title, event.Slug, event.Description, event.CoverImage,
		event.StartTime, event.EndTime, event.Timezone, event.Location,
		event.Status, event.Category, event.Tags)
	if err != nil {
		logger.Error("EventRepository:UpdateEvent", err)
		return err
	}

	return nil
}

// DeleteEvent removes the event. Sponsorship plans go with it via the
// ON DELETE CASCADE on sponsorship_plans.event_id.
func (r *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM events WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		logger.Error("EventRepository:DeleteEvent", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:DeleteEvent - RowsAffected", err)
		return false, err
	}

	return rowsAffected > 0, nil
}

// ===================== Sponsorship plan sub-CRUD =====================

const planColumns = `
	id, event_id, title, description, price, benefits,
	max_sponsors, current_sponsors, position, created_at, updated_at
`

func (r *EventRepository) CreatePlan(ctx context.Context, plan *entity.SponsorshipPlan) (*entity.SponsorshipPlan, error) {
	query := `
		INSERT INTO sponsorship_plans (event_id, title, description, price, benefits, max_sponsors, current_sponsors, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7,
		        COALESCE((SELECT MAX(position) + 1 FROM sponsorship_plans WHERE event_id = $1), 0))
		RETURNING ` + planColumns

	var created entity.SponsorshipPlan
	err := r.DB.GetContext(ctx, &created, query,
		plan.EventID, plan.Title, plan.Description, plan.Price,
		plan.Benefits, plan.MaxSponsors, plan.CurrentSponsors)
	if err != nil {
		logger.Error("EventRepository:CreatePlan", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetPlanByID(ctx context.Context, eventID uuid.UUID, planID uuid.UUID) (*entity.SponsorshipPlan, error) {
	query := `SELECT ` + planColumns + ` FROM sponsorship_plans WHERE id = $1 AND event_id = $2`

	var plan entity.SponsorshipPlan
	err := r.DB.GetContext(ctx, &plan, query, planID, eventID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetPlanByID", err)
		return nil, err
	}

	return &plan, nil
}

func (r *EventRepository) GetPlansByEventID(ctx context.Context, eventID uuid.UUID) ([]entity.SponsorshipPlan, error) {
	query := `SELECT ` + planColumns + ` FROM sponsorship_plans WHERE event_id = $1 ORDER BY position ASC`

	var plans []entity.SponsorshipPlan
	err := r.DB.SelectContext(ctx, &plans, query, eventID)
	if err != nil {
		logger.Error("EventRepository:GetPlansByEventID", err)
		return nil, err
	}

	return plans, nil
}

func (r *EventRepository) UpdatePlan(ctx context.Context, plan *entity.SponsorshipPlan) error {
	query := `
		UPDATE sponsorship_plans
		SET title = $3, description = $4, price = $5, benefits = $6,
		    max_sponsors = $7, current_sponsors = $8, updated_at = NOW()
		WHERE id = $1 AND event_id = $2
	`

	_, err := r.DB.ExecContext(ctx, query,
		plan.ID, plan.EventID, plan.Title, plan.Description, plan.Price,
		plan.Benefits, plan.MaxSponsors, plan.CurrentSponsors)
	if err != nil {
		logger.Error("EventRepository:UpdatePlan", err)
		return err
	}

	return nil
}

func (r *EventRepository) DeletePlan(ctx context.Context, eventID uuid.UUID, planID uuid.UUID) (bool, error) {
	query := `DELETE FROM sponsorship_plans WHERE id = $1 AND event_id = $2`

	result, err := r.DB.ExecContext(ctx, query, planID, eventID)
	if err != nil {
		logger.Error("EventRepository:DeletePlan", err)
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("EventRepository:DeletePlan - RowsAffected", err)
		return false, err
	}

	return rowsAffected > 0, nil
}
