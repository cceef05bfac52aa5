package auth

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// TokenChecker verifies bearer tokens against the session store.
// Any error is treated by the callers as unauthenticated.
type TokenChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewTokenChecker(ttl time.Duration, redisClient *redis.Client) *TokenChecker {
	return &TokenChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (tc *TokenChecker) IsLogged(ctx context.Context, token string) (bool, error) {
	sessionKey := sessionKeyPrefix + token
	cmd := tc.redisClient.Get(ctx, sessionKey)
	if err := cmd.Err(); err != nil {
		return false, err
	}

	createdAtUnix, err := strconv.ParseInt(cmd.Val(), 10, 64)
	if err != nil {
		return false, err
	}

	createdAt := time.Unix(createdAtUnix, 0)
	if time.Since(createdAt) > tc.ttl {
		return false, nil
	}

	return true, nil
}
