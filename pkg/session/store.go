// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/brokerage-service/internal/roles"
)

const keyPrefix = "brokerage:session:"

var (
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)

// RedisStore keeps selections in redis, expiring after ttl.
type RedisStore struct {
	client RedisClientInterface
	ttl    time.Duration
}

// key scopes the selection to the user, a session id alone is client supplied.
func (s *RedisStore) key(userID, sessionID string) string {
	return keyPrefix + userID + ":" + sessionID + ":role"
}

func (s *RedisStore) Get(ctx context.Context, userID, sessionID string) (roles.Role, bool, error) {
	v, err := s.client.Get(ctx, s.key(userID, sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("failed to read session: %w", err)
	}

	r, err := roles.Parse(v)
	if err != nil {
		return "", false, nil
	}

	return r, true, nil
}

func (s *RedisStore) Set(ctx context.Context, userID, sessionID string, role roles.Role) error {
	return s.client.Set(ctx, s.key(userID, sessionID), string(role), s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, userID, sessionID string) error {
	return s.client.Del(ctx, s.key(userID, sessionID)).Err()
}

func NewRedisStore(client RedisClientInterface, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

type entryKey struct {
	userID    string
	sessionID string
}

type entry struct {
	role    roles.Role
	expires time.Time
}

// MemoryStore is a process-local Store for single-instance deployments and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[entryKey]entry
	ttl     time.Duration
	now     func() time.Time
}

func (s *MemoryStore) Get(_ context.Context, userID, sessionID string) (roles.Role, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[entryKey{userID, sessionID}]
	if !ok {
		return "", false, nil
	}

	if s.ttl > 0 && !s.now().Before(e.expires) {
		delete(s.entries, entryKey{userID, sessionID})
		return "", false, nil
	}

	return e.role, true, nil
}

func (s *MemoryStore) Set(_ context.Context, userID, sessionID string, role roles.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[entryKey{userID, sessionID}] = entry{role: role, expires: s.now().Add(s.ttl)}

	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userID, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, entryKey{userID, sessionID})

	return nil
}

// NewMemoryStore returns a store whose entries expire after ttl, never when ttl is 0.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[entryKey]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}
