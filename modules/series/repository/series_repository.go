package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"sponlink-api/core/database"
	"sponlink-api/core/logger"
	"sponlink-api/core/params"
	"sponlink-api/modules/series/dto"
	"sponlink-api/modules/series/entity"

	"github.com/google/uuid"
)

// SeriesRepository handles event series database operations.
type SeriesRepository struct {
	DB database.IDatabase
}

func NewSeriesRepository(db database.IDatabase) *SeriesRepository {
	return &SeriesRepository{DB: db}
}

type SeriesRepositoryInterface interface {
	CreateSeries(ctx context.Context, series *entity.EventSeries, eventIDs []uuid.UUID) (*entity.EventSeries, error)
	GetSeriesByID(ctx context.Context, id uuid.UUID) (*entity.EventSeries, error)
	GetSeries(ctx context.Context, filter dto.SeriesFilter, p params.QueryParams) ([]entity.EventSeries, int, error)
	GetFeaturedSeries(ctx context.Context, limit int) ([]entity.EventSeries, error)
	GetMemberEventIDs(ctx context.Context, seriesID uuid.UUID) ([]uuid.UUID, error)
}

const seriesColumns = `
	id, organizer_id, title, description, cover_image, main_event_id,
	status, tags, featured, created_at, updated_at
`

func (r *SeriesRepository) CreateSeries(ctx context.Context, series *entity.EventSeries, eventIDs []uuid.UUID) (*entity.EventSeries, error) {
	query := `
		INSERT INTO event_series (organizer_id, title, description, cover_image,
		                          main_event_id, status, tags, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + seriesColumns

	var created entity.EventSeries
	err := r.DB.GetContext(ctx, &created, query,
		series.OrganizerID, series.Title, series.Description, series.CoverImage,
		series.MainEventID, series.Status, series.Tags, series.Featured)
	if err != nil {
		logger.Error("SeriesRepository:CreateSeries", err)
		return nil, err
	}

	for i, eventID := range eventIDs {
		_, err := r.DB.ExecContext(ctx, `
			INSERT INTO event_series_events (series_id, event_id, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (series_id, event_id) DO NOTHING`,
			created.ID, eventID, i)
		if err != nil {
			logger.Error("SeriesRepository:CreateSeries:Member", err)
			return nil, err
		}
	}

	return &created, nil
}

func (r *SeriesRepository) GetSeriesByID(ctx context.Context, id uuid.UUID) (*entity.EventSeries, error) {
	query := `SELECT ` + seriesColumns + ` FROM event_series WHERE id = $1`

	var series entity.EventSeries
	err := r.DB.GetContext(ctx, &series, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("SeriesRepository:GetSeriesByID", err)
		return nil, err
	}

	return &series, nil
}

func (r *SeriesRepository) GetSeries(ctx context.Context, filter dto.SeriesFilter, p params.QueryParams) ([]entity.EventSeries, int, error) {
	conditions := []string{"1=1"}
	args := []any{}
	argPos := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filter.Status)
		argPos++
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := `SELECT COUNT(*) FROM event_series WHERE ` + where
	if err := r.DB.GetContext(ctx, &total, countQuery, args...); err != nil {
		logger.Error("SeriesRepository:GetSeries:Count", err)
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM event_series
		WHERE %s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d`, seriesColumns, where, argPos, argPos+1)
	args = append(args, p.PageSize, (p.PageNumber-1)*p.PageSize)

	var items []entity.EventSeries
	if err := r.DB.SelectContext(ctx, &items, query, args...); err != nil {
		logger.Error("SeriesRepository:GetSeries", err)
		return nil, 0, err
	}

	return items, total, nil
}

func (r *SeriesRepository) GetFeaturedSeries(ctx context.Context, limit int) ([]entity.EventSeries, error) {
	query := `
		SELECT ` + seriesColumns + ` FROM event_series
		WHERE featured = TRUE AND status = 'ACTIVE'
		ORDER BY created_at DESC
		LIMIT $1`

	var items []entity.EventSeries
	if err := r.DB.SelectContext(ctx, &items, query, limit); err != nil {
		logger.Error("SeriesRepository:GetFeaturedSeries", err)
		return nil, err
	}

	return items, nil
}

// GetMemberEventIDs returns the series members in join-table position order.
func (r *SeriesRepository) GetMemberEventIDs(ctx context.Context, seriesID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT event_id FROM event_series_events
		WHERE series_id = $1
		ORDER BY position ASC`

	var ids []uuid.UUID
	if err := r.DB.SelectContext(ctx, &ids, query, seriesID); err != nil {
		logger.Error("SeriesRepository:GetMemberEventIDs", err)
		return nil, err
	}

	return ids, nil
}
