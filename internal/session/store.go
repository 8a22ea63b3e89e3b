// Package session stores login session markers in Redis. A marker exists
// while an admin holds a valid refresh token; logout removes it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/ShivenPandit/Super-Mall-Web-App/pkg/errors"
)

const keyPrefix = "supermall:session:"

// Marker records an active admin session.
type Marker struct {
	AdminID   string    `json:"adminId"`
	Email     string    `json:"email"`
	LoginTime time.Time `json:"loginTime"`
}

// Store persists session markers in Redis with a TTL matching the refresh
// token lifetime.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store. Markers expire after ttl.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Set writes the session marker for an admin, replacing any existing one.
func (s *Store) Set(ctx context.Context, m Marker) error {
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal session marker: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+m.AdminID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("store session marker: %w", err)
	}

	return nil
}

// Get returns the session marker for an admin, or ErrNotFound when no
// session is active.
func (s *Store) Get(ctx context.Context, adminID string) (*Marker, error) {
	payload, err := s.client.Get(ctx, keyPrefix+adminID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("fetch session marker: %w", err)
	}

	var m Marker
	if err := json.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("unmarshal session marker: %w", err)
	}

	return &m, nil
}

// Delete removes the session marker for an admin. Deleting a missing
// marker is not an error.
func (s *Store) Delete(ctx context.Context, adminID string) error {
	if err := s.client.Del(ctx, keyPrefix+adminID).Err(); err != nil {
		return fmt.Errorf("delete session marker: %w", err)
	}
	return nil
}
