package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"sponlink-api/core/config"
	"sponlink-api/core/constants"
	"sponlink-api/core/errors"
	"sponlink-api/core/utils"
	"sponlink-api/modules/auth/dto"
	"sponlink-api/modules/auth/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Token signing reads the config singleton.
	if _, err := config.Load(); err != nil {
		panic(err)
	}
	m.Run()
}

type fakeAuthRepo struct {
	users        map[string]*entity.User // keyed by email
	socialLogins map[string]*entity.SocialLogin
	states       map[string]time.Time
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		users:        make(map[string]*entity.User),
		socialLogins: make(map[string]*entity.SocialLogin),
		states:       make(map[string]time.Time),
	}
}

func (f *fakeAuthRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	return f.users[email], nil
}

func (f *fakeAuthRepo) GetUserByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAuthRepo) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	created := *user
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.users[created.Email] = &created
	return &created, nil
}

func (f *fakeAuthRepo) UpdateUser(_ context.Context, user *entity.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeAuthRepo) SaveOAuthState(_ context.Context, state string, expiresAt time.Time) error {
	f.states[state] = expiresAt
	return nil
}

func (f *fakeAuthRepo) ConsumeOAuthState(_ context.Context, state string) (bool, error) {
	expiresAt, ok := f.states[state]
	delete(f.states, state)
	return ok && expiresAt.After(time.Now()), nil
}

func (f *fakeAuthRepo) GetSocialLogin(_ context.Context, provider string, providerUserID string) (*entity.SocialLogin, error) {
	return f.socialLogins[provider+":"+providerUserID], nil
}

func (f *fakeAuthRepo) SaveSocialLogin(_ context.Context, login *entity.SocialLogin) error {
	f.socialLogins[login.Provider+":"+login.ProviderUserID] = login
	return nil
}

type fakeCache struct {
	values      map[string]string
	blacklisted map[string]bool
	attempts    map[string]int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		values:      make(map[string]string),
		blacklisted: make(map[string]bool),
		attempts:    make(map[string]int),
	}
}

func (f *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeCache) Del(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeCache) Expire(_ context.Context, _ string, _ time.Duration) error { return nil }

func (f *fakeCache) AddToTokenBlacklist(_ context.Context, token string) error {
	f.blacklisted[token] = true
	return nil
}

func (f *fakeCache) IsTokenBlacklisted(_ context.Context, token string) (bool, error) {
	return f.blacklisted[token], nil
}

func (f *fakeCache) IncrementLoginAttempt(_ context.Context, key string) error {
	f.attempts[key]++
	return nil
}

func (f *fakeCache) IsLoginBlocked(_ context.Context, key string) (bool, error) {
	return f.attempts[key] >= constants.MaxLoginAttempts, nil
}

func (f *fakeCache) Client() *redis.Client { return nil }

func newTestService() (AuthServiceInterface, *fakeAuthRepo, *fakeCache) {
	repo := newFakeAuthRepo()
	c := newFakeCache()
	return NewAuthService(repo, c), repo, c
}

func TestRegisterCreatesUserWithHashedPassword(t *testing.T) {
	svc, repo, _ := newTestService()

	result, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ada@example.com",
		Password: "correct horse",
		Name:     "Ada",
	})
	require.Nil(t, appErr)

	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "ada@example.com", result.User.Email)
	assert.Equal(t, entity.SystemRoleUser, result.User.SystemRole)
	assert.Equal(t, constants.DefaultLanguage, result.User.PreferredLanguage)

	stored := repo.users["ada@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse", stored.Password)
	assert.Contains(t, stored.Password, "$")
	assert.True(t, utils.ComparePassword(stored.Password, "correct horse"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, appErr := svc.Register(ctx, &dto.RegisterRequest{Email: "ada@example.com", Password: "long enough"})
	require.Nil(t, appErr)

	_, appErr = svc.Register(ctx, &dto.RegisterRequest{Email: "ada@example.com", Password: "another pass"})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrAlreadyExists, appErr.Code)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _, _ := newTestService()

	_, appErr := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "ada@example.com",
		Password: strings.Repeat("x", constants.MinPasswordLength-1),
	})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidRequestData, appErr.Code)
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, appErr := svc.Register(ctx, &dto.RegisterRequest{Email: "ada@example.com", Password: "correct horse"})
	require.Nil(t, appErr)

	result, appErr := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "correct horse"})
	require.Nil(t, appErr)
	assert.NotEmpty(t, result.AccessToken)
}

func TestLoginFailsClosed(t *testing.T) {
	svc, repo, c := newTestService()
	ctx := context.Background()

	_, appErr := svc.Register(ctx, &dto.RegisterRequest{Email: "ada@example.com", Password: "correct horse"})
	require.Nil(t, appErr)

	// Account without a local password (created through OAuth).
	repo.users["oauth@example.com"] = &entity.User{ID: uuid.New(), Email: "oauth@example.com"}

	cases := []dto.LoginRequest{
		{Email: "ada@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "whatever"},
		{Email: "oauth@example.com", Password: "anything"},
	}
	for _, req := range cases {
		_, appErr := svc.Login(ctx, &req)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
		assert.Equal(t, "Invalid email or password", appErr.Message)
	}

	assert.Equal(t, 1, c.attempts["ada@example.com"])
}

func TestLoginBlockedAfterTooManyAttempts(t *testing.T) {
	svc, _, c := newTestService()
	ctx := context.Background()

	_, appErr := svc.Register(ctx, &dto.RegisterRequest{Email: "ada@example.com", Password: "correct horse"})
	require.Nil(t, appErr)

	c.attempts["ada@example.com"] = constants.MaxLoginAttempts

	// Even the correct password is rejected while blocked.
	_, loginErr := svc.Login(ctx, &dto.LoginRequest{Email: "ada@example.com", Password: "correct horse"})
	require.NotNil(t, loginErr)
	assert.Equal(t, errors.ErrUnauthorized, loginErr.Code)
	assert.Contains(t, loginErr.Message, "Too many failed attempts")
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc, _, c := newTestService()

	appErr := svc.Logout(context.Background(), "some.jwt.token")
	require.Nil(t, appErr)
	assert.True(t, c.blacklisted["some.jwt.token"])
}

func TestRefreshTokenRotates(t *testing.T) {
	svc, repo, c := newTestService()
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, &entity.User{Email: "ada@example.com", SystemRole: entity.SystemRoleUser})
	require.NoError(t, err)

	refresh, err := utils.GenerateToken(user.ID, &user.Email, user.SystemRole, constants.ScopeTokenRefresh)
	require.NoError(t, err)

	result, appErr := svc.RefreshToken(ctx, refresh)
	require.Nil(t, appErr)
	assert.NotEmpty(t, result.AccessToken)
	assert.True(t, c.blacklisted[refresh], "exchanged refresh token should be revoked")

	// Second exchange of the same token must fail.
	_, appErr = svc.RefreshToken(ctx, refresh)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestRefreshTokenRejectsAccessScope(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	user, err := repo.CreateUser(ctx, &entity.User{Email: "ada@example.com", SystemRole: entity.SystemRoleUser})
	require.NoError(t, err)

	access, err := utils.GenerateToken(user.ID, &user.Email, user.SystemRole, constants.ScopeTokenAccess)
	require.NoError(t, err)

	_, appErr := svc.RefreshToken(ctx, access)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrUnauthorized, appErr.Code)
}

func TestGetMeNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, appErr := svc.GetMe(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
