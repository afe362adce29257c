// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/events"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/storage"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/admin"
	"github.com/canonical/brokerage-service/pkg/guard"
	"github.com/canonical/brokerage-service/pkg/invitation"
	"github.com/canonical/brokerage-service/pkg/metrics"
	"github.com/canonical/brokerage-service/pkg/session"
	"github.com/canonical/brokerage-service/pkg/status"
	"github.com/canonical/brokerage-service/pkg/user"
	"github.com/canonical/brokerage-service/pkg/webhooks"
)

// StorageInterface is everything the HTTP services read and write.
type StorageInterface interface {
	user.StorageInterface
	invitation.StorageInterface
}

// Config carries the backends picked at startup.
type Config struct {
	Storage StorageInterface
	DB      db.DBClientInterface

	// Kratos is nil when identities are not provisioned on demand.
	Kratos    user.KratosClientInterface
	Authz     invitation.AuthzInterface
	Authority admin.AuthorityInterface
	Sessions  session.Store
	Publisher events.PublisherInterface

	// Authenticate puts the caller's Principal in the request context.
	Authenticate func(http.Handler) http.Handler

	InvitationLifetime time.Duration
	Guard              guard.Config
	Routes             guard.RouteTable
	CORSOrigins        []string
	ReadinessChecks    map[string]status.Pinger
}

var _ StorageInterface = (*storage.Storage)(nil)

func NewRouter(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) http.Handler {
	router := chi.NewMux()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	routes := cfg.Routes
	if routes == nil {
		routes = guard.DefaultRoutes()
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
	)

	if cfg.Authenticate != nil {
		middlewares = append(middlewares, cfg.Authenticate)
	}

	if cfg.DB != nil {
		middlewares = append(middlewares, db.TransactionMiddleware(cfg.DB, logger))
	}

	router.Use(middlewares...)

	users := user.NewService(cfg.Storage, cfg.Kratos, tracer, monitor, logger)
	sessions := session.NewManager(cfg.Sessions, users, tracer, monitor, logger)
	checker := admin.NewChecker(cfg.Authority, tracer, monitor, logger)
	guardian := guard.NewGuard(sessions, checker, cfg.Guard, tracer, monitor, logger)
	invitations := invitation.NewService(
		cfg.Storage,
		users,
		cfg.Authz,
		cfg.Authority,
		cfg.Publisher,
		cfg.InvitationLifetime,
		tracer,
		monitor,
		logger,
	)

	inviters, _ := routes.Lookup(guard.InvitationsSentPath)
	requireInviter := guard.NewMiddleware(guardian, logger).RequireRoles(cfg.Guard.FallbackPath, inviters.AllowedRoles...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(cfg.ReadinessChecks, tracer, monitor, logger).RegisterEndpoints(router)
	user.NewAPI(users, tracer, logger).RegisterEndpoints(router)
	session.NewAPI(sessions, tracer, logger).RegisterEndpoints(router)
	admin.NewAPI(checker, users, logger).RegisterEndpoints(router)
	guard.NewAPI(guardian, routes, tracer).RegisterEndpoints(router)
	invitation.NewAPI(invitations, requireInviter, tracer, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhooks.NewService(cfg.Storage, tracer, monitor, logger), logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
