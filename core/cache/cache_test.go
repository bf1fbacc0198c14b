package cache

import (
	"context"
	"testing"
	"time"

	"sponlink-api/core/config"
	"sponlink-api/core/constants"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBlacklist(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	client, mock := redismock.NewClientMock()
	c := NewWithClient(client)
	ctx := context.Background()

	// Revocation holds for the whole refresh token lifetime, not a shorter
	// window after which a blacklisted token would come back to life.
	ttl := time.Duration(cfg.JWT.RefreshExpireMins) * time.Minute

	key := constants.RedisKeyTokenBlacklist + "some.jwt"
	mock.ExpectSet(key, "1", ttl).SetVal("OK")
	require.NoError(t, c.AddToTokenBlacklist(ctx, "some.jwt"))

	mock.ExpectExists(key).SetVal(1)
	blacklisted, err := c.IsTokenBlacklisted(ctx, "some.jwt")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	mock.ExpectExists(constants.RedisKeyTokenBlacklist + "other.jwt").SetVal(0)
	blacklisted, err = c.IsTokenBlacklisted(ctx, "other.jwt")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginAttemptWindowStartsOnFirstFailure(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client)
	ctx := context.Background()

	key := constants.RedisKeyLoginAttempt + "ada@example.com"

	// First failure opens the window.
	mock.ExpectIncr(key).SetVal(1)
	mock.ExpectExpire(key, constants.BlockDuration).SetVal(true)
	require.NoError(t, c.IncrementLoginAttempt(ctx, "ada@example.com"))

	// Later failures only count.
	mock.ExpectIncr(key).SetVal(2)
	require.NoError(t, c.IncrementLoginAttempt(ctx, "ada@example.com"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsLoginBlocked(t *testing.T) {
	client, mock := redismock.NewClientMock()
	c := NewWithClient(client)
	ctx := context.Background()

	key := constants.RedisKeyLoginAttempt + "ada@example.com"

	mock.ExpectGet(key).RedisNil()
	blocked, err := c.IsLoginBlocked(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, blocked)

	mock.ExpectGet(key).SetVal("4")
	blocked, err = c.IsLoginBlocked(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.False(t, blocked)

	mock.ExpectGet(key).SetVal("5")
	blocked, err = c.IsLoginBlocked(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, blocked)

	assert.NoError(t, mock.ExpectationsWereMet())
}
