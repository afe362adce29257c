// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"time"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

type ServiceInterface interface {
	ListPending(ctx context.Context, userID string) ([]*View, error)
	ListSent(ctx context.Context, userID string, page db.Pagination) ([]*View, error)
	Create(ctx context.Context, inviterID string, req *CreateRequest) (*types.Invitation, error)
	Accept(ctx context.Context, userID, id string) (*AcceptResult, error)
	Reject(ctx context.Context, userID, id string) error
}

type StorageInterface interface {
	AddRoleClaim(ctx context.Context, userID string, role roles.Role) error
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

type UserResolverInterface interface {
	GetUser(ctx context.Context, userID string) (*types.User, error)
}

type AuthzInterface interface {
	AssignMembership(ctx context.Context, c types.Container, userID string, role roles.Role) error
}

type AuthorityInterface interface {
	IsSuperadmin(ctx context.Context, userID string) (bool, error)
}
