package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"sponlink-api/core/cache"
	"sponlink-api/core/config"
	"sponlink-api/core/constants"
	"sponlink-api/core/errors"
	"sponlink-api/core/logger"
	"sponlink-api/core/utils"
	"sponlink-api/modules/auth/dto"
	"sponlink-api/modules/auth/entity"
	"sponlink-api/modules/auth/repository"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type AuthService struct {
	repo  repository.AuthRepositoryInterface
	cache cache.Cache
}

type AuthServiceInterface interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, *errors.AppError)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, accessToken string) *errors.AppError
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, *errors.AppError)
	GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError)

	GoogleAuthURL(ctx context.Context) (*dto.GoogleAuthURLResponse, *errors.AppError)
	GoogleCallback(ctx context.Context, state string, code string) (*dto.TokenResponse, *errors.AppError)
}

func NewAuthService(repo repository.AuthRepositoryInterface, c cache.Cache) AuthServiceInterface {
	return &AuthService{repo: repo, cache: c}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, *errors.AppError) {
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "A valid email is required", nil)
	}
	if len(req.Password) < constants.MinPasswordLength {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData,
			fmt.Sprintf("Password must be at least %d characters", constants.MinPasswordLength), nil)
	}

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:Register:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check existing user", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "Email is already registered", nil)
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("AuthService:Register:HashPassword", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to hash password", err)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = email[:strings.Index(email, "@")]
	}
	lang := req.PreferredLanguage
	if lang == "" {
		lang = constants.DefaultLanguage
	}

	user, err := s.repo.CreateUser(ctx, &entity.User{
		Email:             email,
		Name:              name,
		Password:          hashed,
		SystemRole:        entity.SystemRoleUser,
		PreferredLanguage: lang,
	})
	if err != nil {
		logger.Error("AuthService:Register:CreateUser", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, *errors.AppError) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Email and password are required", nil)
	}

	blocked, err := s.cache.IsLoginBlocked(ctx, email)
	if err != nil {
		logger.Error("AuthService:Login:IsLoginBlocked", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check login attempts", err)
	}
	if blocked {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Too many failed attempts, try again later", nil)
	}

	user, appErr := s.verifyCredentials(ctx, email, req.Password)
	if appErr != nil {
		return nil, appErr
	}
	if user == nil {
		if err := s.cache.IncrementLoginAttempt(ctx, email); err != nil {
			logger.Error("AuthService:Login:IncrementLoginAttempt", err)
		}
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid email or password", nil)
	}

	return s.issueTokens(user)
}

// verifyCredentials fails closed: a missing user, an account without a local
// password, and a mismatch all look the same to the caller.
func (s *AuthService) verifyCredentials(ctx context.Context, email string, password string) (*entity.User, *errors.AppError) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		logger.Error("AuthService:VerifyCredentials:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil || user.Password == "" {
		return nil, nil
	}
	if !utils.ComparePassword(user.Password, password) {
		return nil, nil
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, accessToken string) *errors.AppError {
	if err := s.cache.AddToTokenBlacklist(ctx, accessToken); err != nil {
		logger.Error("AuthService:Logout:AddToTokenBlacklist", err)
		return errors.NewAppError(errors.ErrInternalServer, "Failed to revoke token", err)
	}
	return nil
}

func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, *errors.AppError) {
	if refreshToken == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Refresh token is required", nil)
	}

	blacklisted, err := s.cache.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		logger.Error("AuthService:RefreshToken:IsTokenBlacklisted", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check token", err)
	}
	if blacklisted {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Refresh token has been revoked", nil)
	}

	claims, err := utils.ValidateAndParseToken(refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid refresh token", err)
	}
	if claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Token is not a refresh token", nil)
	}

	user, err := s.repo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		logger.Error("AuthService:RefreshToken:GetUserByID", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User no longer exists", nil)
	}

	// Rotation: the old refresh token is dead once exchanged.
	if err := s.cache.AddToTokenBlacklist(ctx, refreshToken); err != nil {
		logger.Error("AuthService:RefreshToken:AddToTokenBlacklist", err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) GetMe(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, *errors.AppError) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		logger.Error("AuthService:GetMe:GetUserByID", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "User not found", nil)
	}

	resp := dto.ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) GoogleAuthURL(ctx context.Context) (*dto.GoogleAuthURLResponse, *errors.AppError) {
	oauthCfg, appErr := s.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	state := utils.GenerateRandomString(32)
	if state == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate state", nil)
	}
	if err := s.repo.SaveOAuthState(ctx, state, time.Now().Add(constants.OAuthStateTTL)); err != nil {
		logger.Error("AuthService:GoogleAuthURL:SaveOAuthState", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save state", err)
	}

	return &dto.GoogleAuthURLResponse{URL: oauthCfg.AuthCodeURL(state)}, nil
}

func (s *AuthService) GoogleCallback(ctx context.Context, state string, code string) (*dto.TokenResponse, *errors.AppError) {
	if state == "" || code == "" {
		return nil, errors.NewAppError(errors.ErrInvalidRequestData, "Missing state or code", nil)
	}

	valid, err := s.repo.ConsumeOAuthState(ctx, state)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:ConsumeOAuthState", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to verify state", err)
	}
	if !valid {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired state", nil)
	}

	oauthCfg, appErr := s.googleOAuthConfig()
	if appErr != nil {
		return nil, appErr
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		logger.Error("AuthService:GoogleCallback:Exchange", err)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Failed to exchange authorization code", err)
	}

	info, appErr := fetchGoogleUserInfo(ctx, oauthCfg, token)
	if appErr != nil {
		return nil, appErr
	}
	if info.Email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Google account has no email", nil)
	}

	user, appErr := s.findOrCreateGoogleUser(ctx, info)
	if appErr != nil {
		return nil, appErr
	}

	return s.issueTokens(user)
}

func (s *AuthService) findOrCreateGoogleUser(ctx context.Context, info *dto.GoogleUserInfo) (*entity.User, *errors.AppError) {
	login, err := s.repo.GetSocialLogin(ctx, constants.OAuthProviderGoogle, info.ID)
	if err != nil {
		logger.Error("AuthService:FindOrCreateGoogleUser:GetSocialLogin", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up social login", err)
	}
	if login != nil {
		user, err := s.repo.GetUserByID(ctx, login.UserID)
		if err != nil {
			logger.Error("AuthService:FindOrCreateGoogleUser:GetUserByID", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
		}
		if user != nil {
			return user, nil
		}
	}

	user, err := s.repo.GetUserByEmail(ctx, info.Email)
	if err != nil {
		logger.Error("AuthService:FindOrCreateGoogleUser:GetUserByEmail", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to look up user", err)
	}
	if user == nil {
		var avatar *string
		if info.Picture != "" {
			avatar = &info.Picture
		}
		user, err = s.repo.CreateUser(ctx, &entity.User{
			Email:             info.Email,
			Name:              info.Name,
			SystemRole:        entity.SystemRoleUser,
			PreferredLanguage: constants.DefaultLanguage,
			AvatarURL:         avatar,
		})
		if err != nil {
			logger.Error("AuthService:FindOrCreateGoogleUser:CreateUser", err)
			return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create user", err)
		}
	}

	if err := s.repo.SaveSocialLogin(ctx, &entity.SocialLogin{
		UserID:         user.ID,
		Provider:       constants.OAuthProviderGoogle,
		ProviderUserID: info.ID,
	}); err != nil {
		logger.Error("AuthService:FindOrCreateGoogleUser:SaveSocialLogin", err)
	}

	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*dto.TokenResponse, *errors.AppError) {
	access, err := utils.GenerateToken(user.ID, &user.Email, user.SystemRole, constants.ScopeTokenAccess)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Access", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue access token", err)
	}
	refresh, err := utils.GenerateToken(user.ID, &user.Email, user.SystemRole, constants.ScopeTokenRefresh)
	if err != nil {
		logger.Error("AuthService:IssueTokens:Refresh", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to issue refresh token", err)
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         dto.ToUserResponse(user),
	}, nil
}

func (s *AuthService) googleOAuthConfig() (*oauth2.Config, *errors.AppError) {
	cfg, ok := config.GetSafe()
	if !ok || cfg.GoogleAPI.ClientID == "" || cfg.GoogleAPI.ClientSecret == "" {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Google OAuth is not configured", nil)
	}

	return &oauth2.Config{
		ClientID:     cfg.GoogleAPI.ClientID,
		ClientSecret: cfg.GoogleAPI.ClientSecret,
		RedirectURL:  cfg.GoogleAPI.RedirectURI,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}, nil
}

func fetchGoogleUserInfo(ctx context.Context, cfg *oauth2.Config, token *oauth2.Token) (*dto.GoogleUserInfo, *errors.AppError) {
	client := cfg.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		logger.Error("AuthService:FetchGoogleUserInfo:Get", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch user info", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrUnauthorized,
			fmt.Sprintf("User info request returned status %d", resp.StatusCode), nil)
	}

	var info dto.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		logger.Error("AuthService:FetchGoogleUserInfo:Decode", err)
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to decode user info", err)
	}
	return &info, nil
}
