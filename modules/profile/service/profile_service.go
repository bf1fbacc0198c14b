package service

import (
	"context"

	"sponlink-api/core/errors"
	"sponlink-api/core/logger"
	"sponlink-api/core/utils"
	"sponlink-api/modules/profile/dto"
	"sponlink-api/modules/profile/entity"
	"sponlink-api/modules/profile/repository"

	"github.com/google/uuid"
)

type ProfileService struct {
	repo repository.ProfileRepositoryInterface
}

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError)
	GetSettings(ctx context.Context, userID uuid.UUID) (*dto.SettingsResponse, *errors.AppError)
	UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, *errors.AppError)
}

func NewProfileService(repo repository.ProfileRepositoryInterface) ProfileServiceInterface {
	return &ProfileService{repo: repo}
}

// GetProfile returns the user's profile, creating an empty one on first
// fetch so callers never see a missing profile.
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, *errors.AppError) {
	profile, appErr := s.getOrCreate(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToProfileResponse(profile), nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError) {
	profile, appErr := s.getOrCreate(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.ContactEmail != nil {
		profile.ContactEmail = req.ContactEmail
	}
	if req.Phone != nil {
		profile.Phone = req.Phone
	}
	if req.Website != nil {
		profile.Website = req.Website
	}
	if req.OrganizerProfile != nil {
		profile.OrganizerProfile = entity.JSONB(req.OrganizerProfile)
	}
	if req.SponsorProfile != nil {
		profile.SponsorProfile = entity.JSONB(req.SponsorProfile)
	}

	if err := s.repo.UpdateProfile(ctx, profile); err != nil {
		logger.Error("ProfileService:UpdateProfile:UpdateProfile", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update profile", err)
	}

	return dto.ToProfileResponse(profile), nil
}

func (s *ProfileService) getOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, *errors.AppError) {
	profile, err := s.repo.GetProfileByUserID(ctx, userID)
	if err != nil {
		logger.Error("ProfileService:GetOrCreate:GetProfileByUserID", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get profile", err)
	}
	if profile != nil {
		return profile, nil
	}

	profile, err = s.repo.CreateProfile(ctx, userID)
	if err != nil {
		logger.Error("ProfileService:GetOrCreate:CreateProfile", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create profile", err)
	}
	return profile, nil
}

// GetSettings returns the user's settings, creating a defaults row on first
// fetch.
func (s *ProfileService) GetSettings(ctx context.Context, userID uuid.UUID) (*dto.SettingsResponse, *errors.AppError) {
	settings, appErr := s.getOrCreateSettings(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToSettingsResponse(settings), nil
}

func (s *ProfileService) UpdateSettings(ctx context.Context, userID uuid.UUID, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, *errors.AppError) {
	settings, appErr := s.getOrCreateSettings(ctx, userID)
	if appErr != nil {
		return nil, appErr
	}

	if req.EmailNotifications != nil {
		settings.EmailNotifications = *req.EmailNotifications
	}
	if req.PushNotifications != nil {
		settings.PushNotifications = *req.PushNotifications
	}
	if req.Timezone != nil {
		settings.Timezone = utils.ResolveTimezone(*req.Timezone, settings.Timezone)
	}
	if req.Language != nil {
		settings.Language = *req.Language
	}

	if err := s.repo.UpdateSettings(ctx, settings); err != nil {
		logger.Error("ProfileService:UpdateSettings:UpdateSettings", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to update settings", err)
	}

	return dto.ToSettingsResponse(settings), nil
}

func (s *ProfileService) getOrCreateSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, *errors.AppError) {
	settings, err := s.repo.GetSettingsByUserID(ctx, userID)
	if err != nil {
		logger.Error("ProfileService:GetOrCreateSettings:GetSettingsByUserID", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get settings", err)
	}
	if settings != nil {
		return settings, nil
	}

	settings, err = s.repo.CreateSettings(ctx, userID)
	if err != nil {
		logger.Error("ProfileService:GetOrCreateSettings:CreateSettings", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create settings", err)
	}
	return settings, nil
}
