// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/brokerage-service/internal/roles"
)

// Store persists the selected role of a user's session.
type Store interface {
	Get(ctx context.Context, userID, sessionID string) (roles.Role, bool, error)
	Set(ctx context.Context, userID, sessionID string, role roles.Role) error
	Delete(ctx context.Context, userID, sessionID string) error
}

// RoleResolverInterface returns the roles a user holds through a live membership or claim.
type RoleResolverInterface interface {
	ListRoles(ctx context.Context, userID string) ([]roles.Role, error)
}

type ManagerInterface interface {
	Load(ctx context.Context, sessionID, userID string) (*State, error)
}

// RedisClientInterface is the subset of redis.Cmdable used by RedisStore.
type RedisClientInterface interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}
