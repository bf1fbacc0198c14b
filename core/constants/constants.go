package constants

import "time"

// Database
const (
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 10
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Timeouts
const (
	DefaultTimeout        = 5 * time.Second
	DefaultRequestTimeout = 15 * time.Second
	ScrapeRequestTimeout  = 20 * time.Second
)

// Token scopes
const (
	ScopeTokenAccess        = "access"
	ScopeTokenRefresh       = "refresh"
	ScopeTokenResetPassword = "reset_password"
)

// Echo context keys
const (
	ContextTokenData = "token_data"
)

// Redis keys
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
	RedisKeyLoginAttempt   = "login:attempt:"
)

// Login throttling
const (
	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// TokenBlacklistTTL is the fallback blacklist lifetime when no config is
// loaded. It matches the default refresh token lifetime.
const TokenBlacklistTTL = 7 * 24 * time.Hour

// Account defaults and validation
const (
	MinPasswordLength = 8
	DefaultLanguage   = "zh-TW"
)

// OAuth
const (
	OAuthProviderGoogle = "google"
	OAuthStateTTL       = 10 * time.Minute
)

// Event defaults applied by the silent-defaulting policy on create.
const (
	DefaultEventTitle      = "未命名活動"
	DefaultEventCoverImage = "https://cdn.sponlink.app/defaults/event-cover.png"
)

// Upload limits for event cover images.
const (
	MaxUploadSizeBytes = 5 * 1024 * 1024
)

// Asynq task types
const (
	TaskLumaImport    = "importer:luma"
	TaskMeetingNotify = "meeting:notify"
)
