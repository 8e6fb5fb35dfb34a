package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"HRDeskGo/utils"
)

// ErrNoSession means no valid session existed at the point of use.
var ErrNoSession = errors.New("no authenticated session")

// SessionTokenKey is the context key under which the auth middleware
// stores the raw bearer token.
const SessionTokenKey = "sessionToken"

// Session identifies the authenticated caller.
type Session struct {
	UserID string
	Email  string
}

// SessionSource resolves the current session. Implementations must
// re-validate at each call: tokens can expire or be revoked between a
// task load and a later notification insert.
type SessionSource interface {
	Current(ctx context.Context) (*Session, error)
}

// TokenSessions resolves sessions from the bearer token carried in the
// request context, checking the Redis revocation set on every call.
type TokenSessions struct {
	redis *redis.Client
}

func NewTokenSessions(rdb *redis.Client) *TokenSessions {
	return &TokenSessions{redis: rdb}
}

func (s *TokenSessions) Current(ctx context.Context) (*Session, error) {
	token, _ := ctx.Value(SessionTokenKey).(string)
	if token == "" {
		return nil, ErrNoSession
	}

	claims, err := utils.ParseToken(token)
	if err != nil {
		return nil, ErrNoSession
	}

	if s.redis != nil {
		revoked, err := s.redis.Exists(ctx, revocationKey(token)).Result()
		if err != nil {
			return nil, fmt.Errorf("check token revocation: %w", err)
		}
		if revoked > 0 {
			return nil, ErrNoSession
		}
	}

	return &Session{UserID: claims.UserID, Email: claims.Email}, nil
}

// Revoke signs the token out; the key expires with the token itself.
func (s *TokenSessions) Revoke(ctx context.Context, token string) error {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return ErrNoSession
	}

	// A token without an expiry cannot be keyed with a matching TTL.
	if claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.redis.Set(ctx, revocationKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func revocationKey(token string) string {
	return "revoked:" + token
}
