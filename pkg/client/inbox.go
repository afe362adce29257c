// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package client

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/types"
	"github.com/canonical/brokerage-service/pkg/invitation"
	"github.com/canonical/brokerage-service/pkg/session"
)

const GenericFailureMessage = "something went wrong, please try again"

var _ InboxAPI = (*Client)(nil)

// Inbox keeps a caller side copy of the pending invitations together with the
// user and role state they affect.
type Inbox struct {
	api InboxAPI

	mu          sync.Mutex
	user        *types.User
	roles       *session.View
	invitations []*invitation.View

	logger logging.LoggerInterface
}

func (i *Inbox) User() *types.User {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.user
}

func (i *Inbox) Roles() *session.View {
	i.mu.Lock()
	defer i.mu.Unlock()

	return i.roles
}

func (i *Inbox) Invitations() []*invitation.View {
	i.mu.Lock()
	defer i.mu.Unlock()

	return slices.Clone(i.invitations)
}

// Load fetches the pending invitations.
func (i *Inbox) Load(ctx context.Context) error {
	views, err := i.api.ListInvitations(ctx)
	if err != nil {
		return err
	}

	i.mu.Lock()
	i.invitations = views
	i.mu.Unlock()

	return nil
}

// Reconcile refreshes user and roles together, then reloads the invitations
// once both are in.
func (i *Inbox) Reconcile(ctx context.Context) error {
	var (
		u     *types.User
		roles *session.View
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		u, err = i.api.Me(gctx)
		if err != nil {
			return fmt.Errorf("failed to refresh user: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		roles, err = i.api.RefreshRoles(gctx)
		if err != nil {
			return fmt.Errorf("failed to refresh roles: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	i.mu.Lock()
	i.user = u
	i.roles = roles
	i.mu.Unlock()

	return i.Load(ctx)
}

// Accept drops the invitation from the list before calling the API and
// reconciles afterwards, whatever the outcome.
func (i *Inbox) Accept(ctx context.Context, id string) (*invitation.AcceptResult, error) {
	i.remove(id)

	result, err := i.api.AcceptInvitation(ctx, id)

	i.settle(ctx, "accepting", id)

	if err != nil {
		return nil, err
	}

	return result, nil
}

// Reject drops the invitation optimistically, only a failure triggers a reconcile.
func (i *Inbox) Reject(ctx context.Context, id string) error {
	i.remove(id)

	err := i.api.RejectInvitation(ctx, id)
	if err == nil {
		return nil
	}

	i.settle(ctx, "rejecting", id)

	return err
}

// settle reconciles after a mutation, reloading the list alone when the refresh fails
// so an optimistic removal never outlives a failed call.
func (i *Inbox) settle(ctx context.Context, action, id string) {
	err := i.Reconcile(ctx)
	if err == nil {
		return
	}

	i.logger.Errorf("failed to reconcile inbox after %s %s: %v", action, id, err)

	if err := i.Load(ctx); err != nil {
		i.logger.Errorf("failed to reload invitations after %s %s: %v", action, id, err)
	}
}

func (i *Inbox) remove(id string) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.invitations = slices.DeleteFunc(slices.Clone(i.invitations), func(v *invitation.View) bool {
		return v.Invitation != nil && v.ID == id
	})
}

// Message turns an Inbox error into the text shown to the user.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" && apiErr.Status < 500 {
		return apiErr.Message
	}

	return GenericFailureMessage
}

func NewInbox(api InboxAPI, logger logging.LoggerInterface) *Inbox {
	i := new(Inbox)

	i.api = api
	i.logger = logger

	return i
}
