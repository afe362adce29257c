// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"fmt"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
)

var _ ManagerInterface = (*Manager)(nil)

type Manager struct {
	store    Store
	resolver RoleResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Load builds the role selection state of sessionID for userID.
func (m *Manager) Load(ctx context.Context, sessionID, userID string) (*State, error) {
	ctx, span := m.tracer.Start(ctx, "session.Manager.Load")
	defer span.End()

	rs, err := m.resolver.ListRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	selected, ok, err := m.store.Get(ctx, userID, sessionID)
	if err != nil {
		// a lost selection only falls back to the first role
		m.logger.Warnf("failed to read selected role of session %s: %v", sessionID, err)
		ok = false
	}

	s := &State{
		sessionID: sessionID,
		userID:    userID,
		available: roles.Normalize(rs),
		store:     m.store,
		resolver:  m.resolver,
	}

	if ok {
		s.selected = selected
	}

	return s, nil
}

func NewManager(store Store, resolver RoleResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Manager {
	m := new(Manager)

	m.store = store
	m.resolver = resolver

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
