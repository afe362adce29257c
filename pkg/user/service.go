// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/brokerage-service/internal/kratos"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/storage"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/types"
)

var ErrUserNotFound = errors.New("user not found")

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	kratos  KratosClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// GetUser resolves the profile and the roles of userID.
// A profile missing locally is provisioned from the identity provider.
func (s *Service) GetUser(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.GetUser")
	defer span.End()

	u, err := s.storage.GetUser(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		u, err = s.provision(ctx, userID)
	}

	if err != nil {
		return nil, err
	}

	rs, err := s.storage.ListUserRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	u.Roles = rs

	return u, nil
}

func (s *Service) ListRoles(ctx context.Context, userID string) ([]roles.Role, error) {
	ctx, span := s.tracer.Start(ctx, "user.Service.ListRoles")
	defer span.End()

	rs, err := s.storage.ListUserRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return rs, nil
}

func (s *Service) provision(ctx context.Context, userID string) (*types.User, error) {
	if s.kratos == nil {
		return nil, ErrUserNotFound
	}

	identity, err := s.kratos.GetIdentity(ctx, userID)
	if errors.Is(err, kratos.ErrIdentityNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch identity: %w", err)
	}

	u, err := s.storage.UpsertUser(ctx, identity)
	if err != nil {
		return nil, fmt.Errorf("failed to store user: %w", err)
	}

	s.logger.Infof("provisioned user %s from identity provider", userID)

	return u, nil
}

func NewService(storage StorageInterface, kratos KratosClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage
	s.kratos = kratos

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
