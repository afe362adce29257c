// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

func TestHTTPMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		headers         map[string]string
		expectedUser    string
		expectedSession string
	}{
		{
			name: "anonymous request",
		},
		{
			name:            "identity without session",
			headers:         map[string]string{HeaderName: "u1"},
			expectedUser:    "u1",
			expectedSession: "u1",
		},
		{
			name:            "proxy session wins over client header",
			headers:         map[string]string{HeaderName: "u1", SessionHeaderName: "kratos-s", authentication.SessionIDHeader: "client-s"},
			expectedUser:    "u1",
			expectedSession: "kratos-s",
		},
		{
			name:            "client session header",
			headers:         map[string]string{HeaderName: "u1", authentication.SessionIDHeader: "client-s"},
			expectedUser:    "u1",
			expectedSession: "client-s",
		},
	}

	logger := logging.NewNoopLogger()
	m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user, session string
			handler := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				user, _ = authentication.GetUserID(r.Context())
				session, _ = authentication.GetSessionID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/me", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			handler.ServeHTTP(httptest.NewRecorder(), req)

			if user != tt.expectedUser {
				t.Errorf("expected user %q, got %q", tt.expectedUser, user)
			}
			if session != tt.expectedSession {
				t.Errorf("expected session %q, got %q", tt.expectedSession, session)
			}
		})
	}
}
