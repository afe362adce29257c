// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

func serve(t *testing.T, mux *chi.Mux, method, path, body string, principal *authentication.Principal) (*httptest.ResponseRecorder, View) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if principal != nil {
		req = req.WithContext(authentication.WithPrincipal(req.Context(), principal))
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	var resp struct {
		Data View `json:"data"`
	}
	_ = json.NewDecoder(w.Body).Decode(&resp)

	return w, resp.Data
}

func TestAPI(t *testing.T) {
	ctrl := gomock.NewController(t)

	resolver := NewMockRoleResolverInterface(ctrl)
	resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return([]roles.Role{roles.BrokerageOwner, roles.RealEstateAgent}, nil).AnyTimes()

	mux := chi.NewMux()
	NewAPI(newManager(NewMemoryStore(0), resolver), tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	p := &authentication.Principal{Subject: "u1", SessionID: "sid-1"}

	w, view := serve(t, mux, http.MethodGet, "/api/v0/me/roles", "", p)
	if w.Code != http.StatusOK || !view.MultiRole || view.SelectedRole != "" {
		t.Fatalf("unexpected response %d %+v", w.Code, view)
	}

	w, view = serve(t, mux, http.MethodPut, "/api/v0/me/roles/selected", `{"role": "real_estate_agent"}`, p)
	if w.Code != http.StatusOK || view.SelectedRole != roles.RealEstateAgent {
		t.Fatalf("unexpected response %d %+v", w.Code, view)
	}

	w, _ = serve(t, mux, http.MethodPut, "/api/v0/me/roles/selected", `{"role": "owner"}`, p)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown role, got %d", w.Code)
	}

	w, _ = serve(t, mux, http.MethodPut, "/api/v0/me/roles/selected", `not json`, p)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %d", w.Code)
	}

	// another session of the same user has its own selection
	_, view = serve(t, mux, http.MethodGet, "/api/v0/me/roles", "", &authentication.Principal{Subject: "u1", SessionID: "sid-2"})
	if view.SelectedRole != "" {
		t.Errorf("expected independent session, got %q", view.SelectedRole)
	}

	w, view = serve(t, mux, http.MethodPost, "/api/v0/me/roles/refresh", "", p)
	if w.Code != http.StatusOK || view.SelectedRole != roles.RealEstateAgent {
		t.Errorf("unexpected response %d %+v", w.Code, view)
	}

	w, _ = serve(t, mux, http.MethodDelete, "/api/v0/me/session", "", p)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	_, view = serve(t, mux, http.MethodGet, "/api/v0/me/roles", "", p)
	if view.SelectedRole != "" {
		t.Errorf("expected selection to be reset, got %q", view.SelectedRole)
	}

	w, _ = serve(t, mux, http.MethodGet, "/api/v0/me/roles", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAPI_LoadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)

	manager := NewMockManagerInterface(ctrl)
	manager.EXPECT().Load(gomock.Any(), "u1", "u1").Return(nil, errors.New("db down"))

	mux := chi.NewMux()
	NewAPI(manager, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	w, _ := serve(t, mux, http.MethodGet, "/api/v0/me/roles", "", &authentication.Principal{Subject: "u1"})
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestAPI_SharedSessionID(t *testing.T) {
	ctrl := gomock.NewController(t)

	held := []roles.Role{roles.BrokerageOwner, roles.RealEstateAgent}

	resolver := NewMockRoleResolverInterface(ctrl)
	resolver.EXPECT().ListRoles(gomock.Any(), "victim").Return(held, nil).AnyTimes()
	resolver.EXPECT().ListRoles(gomock.Any(), "attacker").Return(held, nil).AnyTimes()

	mux := chi.NewMux()
	NewAPI(newManager(NewMemoryStore(0), resolver), tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

	victim := &authentication.Principal{Subject: "victim", SessionID: "victim"}
	attacker := &authentication.Principal{Subject: "attacker", SessionID: "victim"}

	if w, _ := serve(t, mux, http.MethodPut, "/api/v0/me/roles/selected", `{"role": "brokerage_owner"}`, victim); w.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", w.Code)
	}

	w, view := serve(t, mux, http.MethodPut, "/api/v0/me/roles/selected", `{"role": "real_estate_agent"}`, attacker)
	if w.Code != http.StatusOK || view.SelectedRole != roles.RealEstateAgent {
		t.Fatalf("unexpected response %d %+v", w.Code, view)
	}

	if _, view := serve(t, mux, http.MethodGet, "/api/v0/me/roles", "", victim); view.SelectedRole != roles.BrokerageOwner {
		t.Errorf("expected selection of victim to survive, got %q", view.SelectedRole)
	}

	serve(t, mux, http.MethodDelete, "/api/v0/me/session", "", attacker)

	if _, view := serve(t, mux, http.MethodGet, "/api/v0/me/roles", "", victim); view.SelectedRole != roles.BrokerageOwner {
		t.Errorf("expected reset of another user to leave the selection, got %q", view.SelectedRole)
	}
}
