package repository

import (
	"context"
	"database/sql"
	"errors"

	"sponlink-api/core/database"
	"sponlink-api/modules/profile/entity"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	DB database.IDatabase
}

func NewProfileRepository(db database.IDatabase) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

type ProfileRepositoryInterface interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	CreateProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error

	GetSettingsByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)
	CreateSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)
	UpdateSettings(ctx context.Context, settings *entity.UserSettings) error
}

func (r *ProfileRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	query := `
		SELECT user_id, bio, contact_email, phone, website, organizer_profile, sponsor_profile, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1`

	var profile entity.UserProfile
	err := r.DB.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// CreateProfile inserts an empty profile row. Concurrent first fetches race
// on the insert, so conflicts fall back to the existing row.
func (r *ProfileRepository) CreateProfile(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	query := `
		INSERT INTO user_profiles (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, bio, contact_email, phone, website, organizer_profile, sponsor_profile, created_at, updated_at`

	var profile entity.UserProfile
	if err := r.DB.GetContext(ctx, &profile, query, userID); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		UPDATE user_profiles
		SET bio = $2, contact_email = $3, phone = $4, website = $5,
		    organizer_profile = $6, sponsor_profile = $7, updated_at = NOW()
		WHERE user_id = $1`

	_, err := r.DB.ExecContext(ctx, query,
		profile.UserID, profile.Bio, profile.ContactEmail, profile.Phone, profile.Website,
		profile.OrganizerProfile, profile.SponsorProfile)
	return err
}

func (r *ProfileRepository) GetSettingsByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	query := `
		SELECT user_id, email_notifications, push_notifications, timezone, language, created_at, updated_at
		FROM user_settings
		WHERE user_id = $1`

	var settings entity.UserSettings
	err := r.DB.GetContext(ctx, &settings, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *ProfileRepository) CreateSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	query := `
		INSERT INTO user_settings (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, email_notifications, push_notifications, timezone, language, created_at, updated_at`

	var settings entity.UserSettings
	if err := r.DB.GetContext(ctx, &settings, query, userID); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *ProfileRepository) UpdateSettings(ctx context.Context, settings *entity.UserSettings) error {
	query := `
		UPDATE user_settings
		SET email_notifications = $2, push_notifications = $3, timezone = $4, language = $5, updated_at = NOW()
		WHERE user_id = $1`

	_, err := r.DB.ExecContext(ctx, query,
		settings.UserID, settings.EmailNotifications, settings.PushNotifications,
		settings.Timezone, settings.Language)
	return err
}
