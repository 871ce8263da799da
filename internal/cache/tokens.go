package cache

import (
	"context"
	"time"
)

// RevokeToken marks a token id as revoked until ttl elapses. Without Redis
// revocation is not tracked.
func RevokeToken(ctx context.Context, jti string, ttl time.Duration) error {
	if client == nil || jti == "" || ttl <= 0 {
		return nil
	}
	return client.Set(ctx, RevokedTokenKey(jti), "1", ttl).Err()
}

// IsTokenRevoked reports whether jti was revoked. Redis failures fail open.
func IsTokenRevoked(ctx context.Context, jti string) bool {
	if client == nil || jti == "" {
		return false
	}
	n, err := client.Exists(ctx, RevokedTokenKey(jti)).Result()
	return err == nil && n > 0
}
