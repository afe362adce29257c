// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

const (
	// HeaderName carries the identity authenticated by the proxy in front of the service
	HeaderName = "X-Kratos-Authenticated-Identity-Id"
	// SessionHeaderName carries the proxy session, when forwarded
	SessionHeaderName = "X-Kratos-Session-Id"
)

// Middleware trusts the identity headers set by the authenticating proxy.
// Requests without them continue anonymously.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		sessionID := r.Header.Get(SessionHeaderName)
		if sessionID == "" {
			sessionID = r.Header.Get(authentication.SessionIDHeader)
		}

		ctx = authentication.WithPrincipal(ctx, &authentication.Principal{Subject: userID, SessionID: sessionID})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
