// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

// StorageInterface is the subset of internal/storage the hooks need.
type StorageInterface interface {
	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
	ListUserRoles(ctx context.Context, userID string) ([]roles.Role, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identity *KratosIdentity) (*types.User, error)
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
