// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/types"
	"github.com/canonical/brokerage-service/pkg/admin"
	"github.com/canonical/brokerage-service/pkg/authentication"
	"github.com/canonical/brokerage-service/pkg/session"
)

type Config struct {
	Strict       bool
	FallbackPath string
}

var _ GuardInterface = (*Guard)(nil)

// Guard feeds Decide with the caller's session and resolves admin delegation.
type Guard struct {
	sessions session.ManagerInterface
	checker  admin.CheckerInterface

	strict   bool
	fallback string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Evaluate never returns DelegateAdmin, the admin check is run in place.
func (g *Guard) Evaluate(ctx context.Context, allowed []roles.Role, fallback string) Decision {
	ctx, span := g.tracer.Start(ctx, "guard.Guard.Evaluate")
	defer span.End()

	if fallback == "" {
		fallback = g.fallback
	}

	in := Input{
		AllowedRoles: allowed,
		FallbackPath: fallback,
		Strict:       g.strict,
	}

	if p, ok := authentication.PrincipalFromContext(ctx); ok {
		sessionID, _ := authentication.GetSessionID(ctx)

		state, err := g.sessions.Load(ctx, sessionID, p.Subject)
		if err != nil {
			g.logger.Errorf("failed to load roles of %s: %v", p.Subject, err)
			return Decision{Outcome: RedirectFallback, Redirect: fallback}
		}

		in.User = &types.User{ID: p.Subject, Roles: state.AvailableRoles()}
		in.SelectedRole, _ = state.SelectedRole()
	}

	d := Decide(in)

	if d.Outcome != DelegateAdmin {
		return d
	}

	switch g.checker.Check(ctx, in.User.ID) {
	case admin.Granted:
		d.Outcome = Render
	case admin.AuthenticationRequired:
		d.Outcome, d.Redirect = RedirectLogin, LoginPath
	default:
		d.Outcome = Denied
	}

	return d
}

func NewGuard(sessions session.ManagerInterface, checker admin.CheckerInterface, cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Guard {
	g := new(Guard)

	g.sessions = sessions
	g.checker = checker

	g.strict = cfg.Strict
	g.fallback = cfg.FallbackPath
	if g.fallback == "" {
		g.fallback = DefaultFallbackPath
	}

	g.tracer = tracer
	g.monitor = monitor
	g.logger = logger

	return g
}
