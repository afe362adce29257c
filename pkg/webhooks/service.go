// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks serves the Kratos registration hook and the Hydra token hook.
package webhooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/brokerage-service/internal/kratos"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/types"
)

const RolesClaim = "roles"

var (
	ErrMissingIdentity = errors.New("identity id is empty")
	ErrMissingEmail    = errors.New("identity has no email trait")
	ErrMissingSubject  = errors.New("token hook session has no subject")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// HandleRegistration stores the profile of a freshly registered identity.
func (s *Service) HandleRegistration(ctx context.Context, identity *KratosIdentity) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identity == nil || identity.ID == "" {
		return nil, ErrMissingIdentity
	}

	u := kratos.UserFromTraits(identity.ID, identity.Traits)
	if u.Email == "" {
		return nil, ErrMissingEmail
	}

	s.logger.Debugf("registering profile for identity %s", identity.ID)

	stored, err := s.storage.UpsertUser(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("failed to store profile: %w", err)
	}

	s.logger.Infof("stored profile for identity %s", identity.ID)

	return stored, nil
}

// HandleTokenHook adds the subject's roles to both the ID and access tokens.
// Users without roles get no claim at all.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req == nil || req.Session == nil || req.Session.DefaultSession == nil || req.Session.DefaultSession.Subject == "" {
		return nil, ErrMissingSubject
	}

	subject := req.Session.DefaultSession.Subject

	rs, err := s.storage.ListUserRoles(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	resp := new(TokenHookResponse)

	rs = roles.Normalize(rs)
	if len(rs) == 0 {
		return resp, nil
	}

	claim := roles.Strings(rs)
	resp.Session.IDToken = map[string]any{RolesClaim: claim}
	resp.Session.AccessToken = map[string]any{RolesClaim: claim}

	s.logger.Debugf("issuing %d roles for %s", len(claim), subject)

	return resp, nil
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
