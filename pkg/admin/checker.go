// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package admin re-validates superadmin claims against the backend authority.
package admin

import (
	"context"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

type Result string

const (
	// Checking is the state clients show until a Result arrives.
	Checking                Result = "checking"
	AuthenticationRequired  Result = "authentication_required"
	InsufficientPermissions Result = "insufficient_permissions"
	Granted                 Result = "granted"
)

func (r Result) Message() string {
	switch r {
	case Checking:
		return "checking permissions"
	case AuthenticationRequired:
		return "authentication required"
	case InsufficientPermissions:
		return "insufficient permissions"
	case Granted:
		return "access granted"
	}

	return ""
}

var _ CheckerInterface = (*Checker)(nil)

// Checker asks the authority on every call, results are never cached.
type Checker struct {
	authority AuthorityInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Checker) Check(ctx context.Context, userID string) Result {
	ctx, span := c.tracer.Start(ctx, "admin.Checker.Check")
	defer span.End()

	if userID == "" {
		return AuthenticationRequired
	}

	ok, err := c.authority.IsSuperadmin(ctx, userID)
	if err != nil {
		c.logger.Errorf("superadmin check failed for %s: %v", userID, err)
		c.logger.Security().AuthzFailure(userID, "superadmin")
		return InsufficientPermissions
	}

	if !ok {
		c.logger.Security().AuthzFailureNotEnoughPermissions(userID, "superadmin")
		return InsufficientPermissions
	}

	c.logger.Security().AuthzSuccess(userID, "superadmin")

	return Granted
}

func NewChecker(authority AuthorityInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Checker {
	c := new(Checker)

	c.authority = authority

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
