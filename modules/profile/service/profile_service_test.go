package service

import (
	"context"
	"testing"
	"time"

	"sponlink-api/modules/profile/dto"
	"sponlink-api/modules/profile/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.UserProfile
	settings map[uuid.UUID]*entity.UserSettings
	creates  int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[uuid.UUID]*entity.UserProfile),
		settings: make(map[uuid.UUID]*entity.UserSettings),
	}
}

func (f *fakeProfileRepo) GetProfileByUserID(_ context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) CreateProfile(_ context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	f.creates++
	if existing, ok := f.profiles[userID]; ok {
		return existing, nil
	}
	p := &entity.UserProfile{UserID: userID, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.profiles[userID] = p
	return p, nil
}

func (f *fakeProfileRepo) UpdateProfile(_ context.Context, profile *entity.UserProfile) error {
	f.profiles[profile.UserID] = profile
	return nil
}

func (f *fakeProfileRepo) GetSettingsByUserID(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	return f.settings[userID], nil
}

func (f *fakeProfileRepo) CreateSettings(_ context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	if existing, ok := f.settings[userID]; ok {
		return existing, nil
	}
	s := &entity.UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		Timezone:           "Asia/Taipei",
		Language:           "zh-TW",
	}
	f.settings[userID] = s
	return s, nil
}

func (f *fakeProfileRepo) UpdateSettings(_ context.Context, settings *entity.UserSettings) error {
	f.settings[settings.UserID] = settings
	return nil
}

func TestGetProfileAutoCreates(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	userID := uuid.New()

	result, appErr := svc.GetProfile(context.Background(), userID)
	require.Nil(t, appErr)
	assert.Equal(t, userID, result.UserID)
	assert.Nil(t, result.Bio)
	assert.Equal(t, 1, repo.creates)

	// Second fetch reuses the existing row.
	_, appErr = svc.GetProfile(context.Background(), userID)
	require.Nil(t, appErr)
	assert.Equal(t, 1, repo.creates)
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	userID := uuid.New()
	ctx := context.Background()

	bio := "Organizing tech meetups in Taipei"
	_, appErr := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{Bio: &bio})
	require.Nil(t, appErr)

	website := "https://example.org"
	result, appErr := svc.UpdateProfile(ctx, userID, &dto.UpdateProfileRequest{
		Website:          &website,
		OrganizerProfile: map[string]interface{}{"company": "Acme Events"},
	})
	require.Nil(t, appErr)

	// Earlier fields survive a partial update.
	assert.Equal(t, bio, *result.Bio)
	assert.Equal(t, website, *result.Website)
	assert.Equal(t, "Acme Events", result.OrganizerProfile["company"])
	assert.Nil(t, result.SponsorProfile)
}

func TestUpdateProfileCreatesWhenMissing(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)

	phone := "+886-2-1234-5678"
	result, appErr := svc.UpdateProfile(context.Background(), uuid.New(), &dto.UpdateProfileRequest{Phone: &phone})
	require.Nil(t, appErr)
	assert.Equal(t, phone, *result.Phone)
	assert.Equal(t, 1, repo.creates)
}

func TestSettingsDefaultsAndUpdate(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := NewProfileService(repo)
	userID := uuid.New()
	ctx := context.Background()

	settings, appErr := svc.GetSettings(ctx, userID)
	require.Nil(t, appErr)
	assert.True(t, settings.EmailNotifications)
	assert.Equal(t, "Asia/Taipei", settings.Timezone)

	off := false
	tz := "EST"
	updated, appErr := svc.UpdateSettings(ctx, userID, &dto.UpdateSettingsRequest{
		EmailNotifications: &off,
		Timezone:           &tz,
	})
	require.Nil(t, appErr)
	assert.False(t, updated.EmailNotifications)
	assert.True(t, updated.PushNotifications)
	// Abbreviations resolve to IANA names before persisting.
	assert.Equal(t, "America/New_York", updated.Timezone)
}
