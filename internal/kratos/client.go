// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/types"
	ory "github.com/ory/client-go"
)

var ErrIdentityNotFound = errors.New("identity not found")

type ClientInterface interface {
	GetIdentity(ctx context.Context, id string) (*types.User, error)
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// GetIdentity maps the identity traits to a user profile.
func (c *Client) GetIdentity(ctx context.Context, id string) (*types.User, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentity")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, 0)
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, 1)

	return UserFromTraits(identity.Id, identity.Traits), nil
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetIdentityIDByEmail")
	defer span.End()

	// NOTE: empty page token because of https://github.com/ory/sdk/issues/461
	ids, _, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", ErrIdentityNotFound
	}

	return ids[0].Id, nil
}

// UserFromTraits reads the email and name.first / name.last traits of the default schema.
func UserFromTraits(id string, traits any) *types.User {
	u := &types.User{ID: id}

	t, ok := traits.(map[string]any)
	if !ok {
		return u
	}

	u.Email, _ = t["email"].(string)

	if name, ok := t["name"].(map[string]any); ok {
		u.FirstName, _ = name["first"].(string)
		u.LastName, _ = name["last"].(string)
	}

	return u
}
