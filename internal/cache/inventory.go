package cache

import (
	"context"
	"time"
)

const (
	UserKeyPrefix      = "user:"
	LocationKeyPrefix  = "location:"
	LocationsKey       = "locations:all"
	RevokedTokenPrefix = "blacklist:"
)

const (
	UserTTL     = 5 * time.Minute
	LocationTTL = 10 * time.Minute
)

func UserKey(userID string) string {
	return UserKeyPrefix + userID
}

func LocationKey(locationID string) string {
	return LocationKeyPrefix + locationID
}

func RevokedTokenKey(jti string) string {
	return RevokedTokenPrefix + jti
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID string) {
	Invalidate(ctx, UserKey(userID))
}

func InvalidateLocations(ctx context.Context) {
	Invalidate(ctx, LocationsKey)
}
