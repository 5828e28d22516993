// Package cache holds the Redis-backed stores for short-lived auth state:
// password-reset OTPs and the refresh-session allowlist. Engagement counts are
// never cached here; those are always recomputed from the relational store.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	platformconfig "github.com/newspulse/api/internal/platform/config"
)

// ErrNotFound is returned when a key is absent or expired.
var ErrNotFound = errors.New("cache: key not found")

// Store wraps a Redis client with the small set of operations this service
// needs.
type Store struct {
	client *redis.Client
}

// NewStore connects to Redis and verifies the connection.
func NewStore(cfg *platformconfig.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Store{client: client}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.client.Close()
}

func otpKey(email string) string {
	return "otp:" + email
}

func sessionKey(userID int64) string {
	return fmt.Sprintf("sessions:%d", userID)
}

// SetOTP stores a password-reset OTP for the given account, replacing any
// previous one.
func (s *Store) SetOTP(ctx context.Context, email, otp string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKey(email), otp, ttl).Err()
}

// GetOTP returns the pending OTP for the account, or ErrNotFound.
func (s *Store) GetOTP(ctx context.Context, email string) (string, error) {
	v, err := s.client.Get(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	return v, err
}

// DeleteOTP removes a consumed or invalidated OTP.
func (s *Store) DeleteOTP(ctx context.Context, email string) error {
	return s.client.Del(ctx, otpKey(email)).Err()
}

// AddRefreshSession allowlists a refresh token id for the user.
func (s *Store) AddRefreshSession(ctx context.Context, userID int64, jti string, ttl time.Duration) error {
	key := sessionKey(userID)
	if err := s.client.SAdd(ctx, key, jti).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, ttl).Err()
}

// HasRefreshSession reports whether a refresh token id is still allowlisted.
func (s *Store) HasRefreshSession(ctx context.Context, userID int64, jti string) (bool, error) {
	return s.client.SIsMember(ctx, sessionKey(userID), jti).Result()
}

// RevokeRefreshSessions drops every refresh session for the user, for example
// after a password reset.
func (s *Store) RevokeRefreshSessions(ctx context.Context, userID int64) error {
	return s.client.Del(ctx, sessionKey(userID)).Err()
}
