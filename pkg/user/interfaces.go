// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"context"

	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

type ServiceInterface interface {
	GetUser(ctx context.Context, userID string) (*types.User, error)
	ListRoles(ctx context.Context, userID string) ([]roles.Role, error)
}

type StorageInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
	ListUserRoles(ctx context.Context, userID string) ([]roles.Role, error)
}

type KratosClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.User, error)
}
