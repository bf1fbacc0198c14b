package repository

import (
	"context"
	"database/sql"

	"sponlink-api/core/database"
	"sponlink-api/core/logger"
	"sponlink-api/modules/meeting/entity"

	"github.com/google/uuid"
)

// MeetingRepository handles meeting database operations.
type MeetingRepository struct {
	DB database.IDatabase
}

func NewMeetingRepository(db database.IDatabase) *MeetingRepository {
	return &MeetingRepository{DB: db}
}

type MeetingRepositoryInterface interface {
	CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error)
	GetMeetingByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error)
	GetMeetingsBySponsorID(ctx context.Context, sponsorID uuid.UUID) ([]entity.Meeting, error)
	GetMeetingsByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]entity.Meeting, error)
	UpdateMeeting(ctx context.Context, meeting *entity.Meeting) error
}

const meetingColumns = `
	id, sponsor_id, organizer_id, event_id, title, description,
	proposed_times, confirmed_time, meeting_link, status, created_at, updated_at
`

func (r *MeetingRepository) CreateMeeting(ctx context.Context, meeting *entity.Meeting) (*entity.Meeting, error) {
	query := `
		INSERT INTO meetings (sponsor_id, organizer_id, event_id, title, description,
		                      proposed_times, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + meetingColumns

	var created entity.Meeting
	err := r.DB.GetContext(ctx, &created, query,
		meeting.SponsorID, meeting.OrganizerID, meeting.EventID, meeting.Title,
		meeting.Description, meeting.ProposedTimes, meeting.Status)
	if err != nil {
		logger.Error("MeetingRepository:CreateMeeting", err)
		return nil, err
	}

	return &created, nil
}

func (r *MeetingRepository) GetMeetingByID(ctx context.Context, id uuid.UUID) (*entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

	var meeting entity.Meeting
	err := r.DB.GetContext(ctx, &meeting, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		logger.Error("MeetingRepository:GetMeetingByID", err)
		return nil, err
	}

	return &meeting, nil
}

func (r *MeetingRepository) GetMeetingsBySponsorID(ctx context.Context, sponsorID uuid.UUID) ([]entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE sponsor_id = $1 ORDER BY created_at DESC`

	var meetings []entity.Meeting
	if err := r.DB.SelectContext(ctx, &meetings, query, sponsorID); err != nil {
		logger.Error("MeetingRepository:GetMeetingsBySponsorID", err)
		return nil, err
	}

	return meetings, nil
}

func (r *MeetingRepository) GetMeetingsByOrganizerID(ctx context.Context, organizerID uuid.UUID) ([]entity.Meeting, error) {
	query := `SELECT ` + meetingColumns + ` FROM meetings WHERE organizer_id = $1 ORDER BY created_at DESC`

	var meetings []entity.Meeting
	if err := r.DB.SelectContext(ctx, &meetings, query, organizerID); err != nil {
		logger.Error("MeetingRepository:GetMeetingsByOrganizerID", err)
		return nil, err
	}

	return meetings, nil
}

func (r *MeetingRepository) UpdateMeeting(ctx context.Context, meeting *entity.Meeting) error {
	query := `
		UPDATE meetings
		SET title = $2, description = $3, proposed_times = $4, confirmed_time = $5,
		    meeting_link = $6, status = $7, updated_at = NOW()
		WHERE id = $1`

	_, err := r.DB.ExecContext(ctx, query,
		meeting.ID, meeting.Title, meeting.Description, meeting.ProposedTimes,
		meeting.ConfirmedTime, meeting.MeetingLink, meeting.Status)
	if err != nil {
		logger.Error("MeetingRepository:UpdateMeeting", err)
		return err
	}

	return nil
}
