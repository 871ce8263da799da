package service

import (
	"context"
	"errors"
	"time"

	"pescart/internal/cache"
	"pescart/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenIssuer   = "pescart-api"
	TokenAudience = "pescart-client"
)

// Claims is the verified identity carried by a session token.
type Claims struct {
	UserID    string
	Email     string
	ID        string
	ExpiresAt time.Time
}

// TokenManager issues and verifies HS256 session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for user.
func (m *TokenManager) Issue(user *models.User) (string, error) {
	if len(m.secret) == 0 {
		return "", errors.New("JWT secret not configured")
	}

	now := m.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iss":   TokenIssuer,
		"aud":   TokenAudience,
		"exp":   now.Add(m.ttl).Unix(),
		"iat":   now.Unix(),
		"nbf":   now.Unix(),
		"jti":   uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses tokenString and checks signature, issuer, audience, expiry
// and revocation. Every failure is Unauthorized.
func (m *TokenManager) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, models.NewUnauthorizedError("Authorization required")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithAudience(TokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, models.NewUnauthorizedError("Invalid or expired token")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, models.NewUnauthorizedError("Invalid subject claim")
	}

	out := &Claims{UserID: sub}
	out.Email, _ = claims["email"].(string)
	out.ID, _ = claims["jti"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}

	if cache.IsTokenRevoked(ctx, out.ID) {
		return nil, models.NewUnauthorizedError("Token has been revoked")
	}
	return out, nil
}

// Revoke blacklists the token until it would have expired anyway.
func (m *TokenManager) Revoke(ctx context.Context, claims *Claims) error {
	return cache.RevokeToken(ctx, claims.ID, claims.ExpiresAt.Sub(m.now()))
}
