// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/admin"
	"github.com/canonical/brokerage-service/pkg/authentication"
	"github.com/canonical/brokerage-service/pkg/session"
)

//go:generate mockgen -build_flags=--mod=mod -package guard -destination ./mock_guard.go -source=./interfaces.go

func newGuard(ctrl *gomock.Controller, held []roles.Role, holdErr error, store session.Store, checker admin.CheckerInterface, strict bool) *Guard {
	resolver := session.NewMockRoleResolverInterface(ctrl)
	resolver.EXPECT().ListRoles(gomock.Any(), gomock.Any()).Return(held, holdErr).AnyTimes()

	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	manager := session.NewManager(store, resolver, tracer, monitor, logger)

	return NewGuard(manager, checker, Config{Strict: strict}, tracer, monitor, logger)
}

func TestGuard_Evaluate(t *testing.T) {
	tests := []struct {
		name        string
		anonymous   bool
		held        []roles.Role
		holdErr     error
		selected    roles.Role
		allowed     []roles.Role
		adminResult admin.Result
		strict      bool
		expected    Outcome
	}{
		{name: "anonymous", anonymous: true, allowed: []roles.Role{roles.BrokerageOwner}, expected: RedirectLogin},
		{name: "allowed", held: []roles.Role{roles.BrokerageOwner}, allowed: []roles.Role{roles.BrokerageOwner}, expected: Render},
		{name: "not allowed", held: []roles.Role{roles.BrokerageOwner}, allowed: []roles.Role{roles.Superadmin}, expected: RedirectFallback},
		{name: "role lookup failure fails closed", holdErr: errors.New("db down"), allowed: []roles.Role{roles.BrokerageOwner}, expected: RedirectFallback},
		{name: "verified superadmin", held: []roles.Role{roles.Superadmin}, allowed: []roles.Role{roles.Superadmin}, adminResult: admin.Granted, expected: Render},
		{name: "unverified superadmin", held: []roles.Role{roles.Superadmin}, allowed: []roles.Role{roles.Superadmin}, adminResult: admin.InsufficientPermissions, expected: Denied},
		{
			name:     "selected role honoured",
			held:     []roles.Role{roles.BrokerageOwner, roles.RealEstateAgent},
			selected: roles.RealEstateAgent,
			allowed:  []roles.Role{roles.BrokerageOwner},
			strict:   true,
			expected: RedirectFallback,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			checker := admin.NewMockCheckerInterface(ctrl)
			if tt.adminResult != "" {
				checker.EXPECT().Check(gomock.Any(), "u1").Return(tt.adminResult)
			}

			store := session.NewMemoryStore(0)
			if tt.selected != "" {
				_ = store.Set(context.Background(), "u1", "s1", tt.selected)
			}

			g := newGuard(ctrl, tt.held, tt.holdErr, store, checker, tt.strict)

			ctx := context.Background()
			if !tt.anonymous {
				ctx = authentication.WithPrincipal(ctx, &authentication.Principal{Subject: "u1", SessionID: "s1"})
			}

			d := g.Evaluate(ctx, tt.allowed, "")
			if d.Outcome != tt.expected {
				t.Errorf("expected %s, got %+v", tt.expected, d)
			}

			if d.Outcome == RedirectFallback && d.Redirect != DefaultFallbackPath {
				t.Errorf("expected fallback %s, got %s", DefaultFallbackPath, d.Redirect)
			}
		})
	}
}

func TestMiddleware_RequireRoles(t *testing.T) {
	tests := []struct {
		name             string
		decision         Decision
		accept           string
		expectedStatus   int
		expectedLocation string
		expectedRedirect string
	}{
		{name: "render", decision: Decision{Outcome: Render}, expectedStatus: http.StatusOK},
		{name: "api login", decision: Decision{Outcome: RedirectLogin, Redirect: "/auth"}, expectedStatus: http.StatusUnauthorized, expectedRedirect: "/auth"},
		{name: "api fallback", decision: Decision{Outcome: RedirectFallback, Redirect: "/dashboard"}, expectedStatus: http.StatusForbidden, expectedRedirect: "/dashboard"},
		{name: "browser fallback", accept: "text/html", decision: Decision{Outcome: RedirectFallback, Redirect: "/home"}, expectedStatus: http.StatusSeeOther, expectedLocation: "/home"},
		{name: "denied", decision: Decision{Outcome: Denied}, expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			g := NewMockGuardInterface(ctrl)
			g.EXPECT().Evaluate(gomock.Any(), []roles.Role{roles.BrokerageOwner}, "/home").Return(tt.decision)

			h := NewMiddleware(g, logging.NewNoopLogger()).RequireRoles("/home", roles.BrokerageOwner)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v0/brokerages", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if loc := w.Header().Get("Location"); loc != tt.expectedLocation {
				t.Errorf("expected location %q, got %q", tt.expectedLocation, loc)
			}

			if tt.expectedRedirect == "" {
				return
			}

			var body struct {
				Redirect string `json:"redirect"`
			}
			_ = json.NewDecoder(w.Body).Decode(&body)

			if body.Redirect != tt.expectedRedirect {
				t.Errorf("expected redirect %q, got %q", tt.expectedRedirect, body.Redirect)
			}
		})
	}
}

func TestAPI_Access(t *testing.T) {
	ctrl := gomock.NewController(t)

	g := NewMockGuardInterface(ctrl)
	g.EXPECT().Evaluate(gomock.Any(), []roles.Role{roles.Superadmin}, "").Return(Decision{Outcome: RedirectFallback, Redirect: "/dashboard"})

	mux := chi.NewMux()
	NewAPI(g, DefaultRoutes(), tracing.NewNoopTracer()).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/access?route=/admin/users", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Data AccessResponse `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}

	if body.Data.Route.Path != "/admin" || body.Data.Outcome != RedirectFallback || body.Data.Redirect != "/dashboard" {
		t.Errorf("unexpected body %+v", body.Data)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/access?route=/unknown", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/access", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestAPI_AccessFallback(t *testing.T) {
	tests := []struct {
		name     string
		fallback string
		expected string
	}{
		{name: "local path", fallback: "/home", expected: "/home"},
		{name: "local path with query", fallback: "/home?tab=team", expected: "/home?tab=team"},
		{name: "absolute url", fallback: "https://evil.example.com", expected: ""},
		{name: "scheme relative", fallback: "//evil.example.com", expected: ""},
		{name: "backslash", fallback: "/\\evil.example.com", expected: ""},
		{name: "relative", fallback: "home", expected: ""},
		{name: "javascript", fallback: "javascript:alert(1)", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			g := NewMockGuardInterface(ctrl)
			g.EXPECT().Evaluate(gomock.Any(), []roles.Role{roles.Superadmin}, tt.expected).Return(Decision{Outcome: Render})

			mux := chi.NewMux()
			NewAPI(g, DefaultRoutes(), tracing.NewNoopTracer()).RegisterEndpoints(mux)

			q := url.Values{"route": {"/admin/users"}, "fallback": {tt.fallback}}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/access?"+q.Encode(), nil))

			if w.Code != http.StatusOK {
				t.Errorf("expected 200, got %d", w.Code)
			}
		})
	}
}
