// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"

	"github.com/canonical/brokerage-service/internal/types"
	"github.com/canonical/brokerage-service/pkg/invitation"
	"github.com/canonical/brokerage-service/pkg/session"
)

// InboxAPI is the part of Client the Inbox drives.
type InboxAPI interface {
	Me(ctx context.Context) (*types.User, error)
	RefreshRoles(ctx context.Context) (*session.View, error)
	ListInvitations(ctx context.Context) ([]*invitation.View, error)
	AcceptInvitation(ctx context.Context, id string) (*invitation.AcceptResult, error)
	RejectInvitation(ctx context.Context, id string) error
}
