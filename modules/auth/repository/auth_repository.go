package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"sponlink-api/core/database"
	"sponlink-api/modules/auth/entity"

	"github.com/google/uuid"
)

type AuthRepository struct {
	DB database.IDatabase
}

func NewAuthRepository(db database.IDatabase) *AuthRepository {
	return &AuthRepository{DB: db}
}

type AuthRepositoryInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateUser(ctx context.Context, user *entity.User) error

	SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)

	GetSocialLogin(ctx context.Context, provider string, providerUserID string) (*entity.SocialLogin, error)
	SaveSocialLogin(ctx context.Context, login *entity.SocialLogin) error
}

func (r *AuthRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, email, name, password, system_role, preferred_language, avatar_url, created_at, updated_at
		FROM users
		WHERE email = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT id, email, name, password, system_role, preferred_language, avatar_url, created_at, updated_at
		FROM users
		WHERE id = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *AuthRepository) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, name, password, system_role, preferred_language, avatar_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, email, name, password, system_role, preferred_language, avatar_url, created_at, updated_at`

	var created entity.User
	err := r.DB.GetContext(ctx, &created, query,
		user.Email, user.Name, user.Password, user.SystemRole, user.PreferredLanguage, user.AvatarURL)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *AuthRepository) UpdateUser(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET name = $2, password = $3, preferred_language = $4, avatar_url = $5, updated_at = NOW()
		WHERE id = $1`

	_, err := r.DB.ExecContext(ctx, query,
		user.ID, user.Name, user.Password, user.PreferredLanguage, user.AvatarURL)
	return err
}

func (r *AuthRepository) SaveOAuthState(ctx context.Context, state string, expiresAt time.Time) error {
	query := `INSERT INTO oauth_states (state, expires_at) VALUES ($1, $2)`
	_, err := r.DB.ExecContext(ctx, query, state, expiresAt)
	return err
}

// ConsumeOAuthState deletes the state row and reports whether it existed and
// had not expired. Each state is single use.
func (r *AuthRepository) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	query := `DELETE FROM oauth_states WHERE state = $1 AND expires_at > NOW()`
	result, err := r.DB.ExecContext(ctx, query, state)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *AuthRepository) GetSocialLogin(ctx context.Context, provider string, providerUserID string) (*entity.SocialLogin, error) {
	query := `
		SELECT id, user_id, provider, provider_user_id, created_at, updated_at
		FROM social_logins
		WHERE provider = $1 AND provider_user_id = $2`

	var login entity.SocialLogin
	err := r.DB.GetContext(ctx, &login, query, provider, providerUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &login, nil
}

func (r *AuthRepository) SaveSocialLogin(ctx context.Context, login *entity.SocialLogin) error {
	query := `
		INSERT INTO social_logins (user_id, provider, provider_user_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider, provider_user_id) DO UPDATE SET updated_at = NOW()`

	_, err := r.DB.ExecContext(ctx, query, login.UserID, login.Provider, login.ProviderUserID)
	return err
}
