// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"

	"github.com/canonical/brokerage-service/internal/types"
)

// AuthorityInterface is the backend authority on superadmin claims.
type AuthorityInterface interface {
	IsSuperadmin(ctx context.Context, userID string) (bool, error)
}

type CheckerInterface interface {
	Check(ctx context.Context, userID string) Result
}

// UsersInterface resolves any user's profile and roles for the admin dashboard.
type UsersInterface interface {
	GetUser(ctx context.Context, userID string) (*types.User, error)
}
