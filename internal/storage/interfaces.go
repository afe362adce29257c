// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

type StorageInterface interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	UpsertUser(ctx context.Context, u *types.User) (*types.User, error)
	ListUserRoles(ctx context.Context, userID string) ([]roles.Role, error)
	IsSuperadmin(ctx context.Context, userID string) (bool, error)
	AddRoleClaim(ctx context.Context, userID string, role roles.Role) error
	RemoveRoleClaim(ctx context.Context, userID string, role roles.Role) error

	HasMembership(ctx context.Context, c types.Container, userID string, role roles.Role) (bool, error)
	ContainerRoles(ctx context.Context, c types.Container, userID string) ([]roles.Role, error)
	AddMembership(ctx context.Context, c types.Container, userID string, role roles.Role) (*types.Membership, error)

	GetInvitation(ctx context.Context, id string) (*types.Invitation, error)
	ListPendingInvitations(ctx context.Context, email string) ([]*types.Invitation, error)
	ListSentInvitations(ctx context.Context, inviterID string, page db.Pagination) ([]*types.Invitation, error)
	CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, id string, at time.Time) error
	DeleteInvitation(ctx context.Context, id string) error
}
