// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

type SelectRoleRequest struct {
	Role string `json:"role"`
}

type API struct {
	manager ManagerInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/me/roles", a.getRoles)
	mux.Put("/api/v0/me/roles/selected", a.selectRole)
	mux.Post("/api/v0/me/roles/refresh", a.refreshRoles)
	mux.Delete("/api/v0/me/session", a.reset)
}

func (a *API) load(w http.ResponseWriter, r *http.Request) (*State, bool) {
	ctx := r.Context()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}

	sessionID, _ := authentication.GetSessionID(ctx)

	state, err := a.manager.Load(ctx, sessionID, userID)
	if err != nil {
		a.logger.Errorf("failed to load session %s: %v", sessionID, err)
		types.WriteError(w, http.StatusInternalServerError, "failed to load roles")
		return nil, false
	}

	return state, true
}

func (a *API) getRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.getRoles")
	defer span.End()

	state, ok := a.load(w, r.WithContext(ctx))
	if !ok {
		return
	}

	types.WriteData(w, http.StatusOK, state.View())
}

func (a *API) selectRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.selectRole")
	defer span.End()

	state, ok := a.load(w, r.WithContext(ctx))
	if !ok {
		return
	}

	var req SelectRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	role, err := roles.Parse(req.Role)
	if err != nil {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := state.SetSelectedRole(ctx, role); err != nil {
		a.logger.Errorf("failed to select role: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to select role")
		return
	}

	types.WriteData(w, http.StatusOK, state.View())
}

func (a *API) refreshRoles(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.refreshRoles")
	defer span.End()

	state, ok := a.load(w, r.WithContext(ctx))
	if !ok {
		return
	}

	if err := state.RefreshRoles(ctx); err != nil {
		a.logger.Errorf("failed to refresh roles: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to refresh roles")
		return
	}

	types.WriteData(w, http.StatusOK, state.View())
}

func (a *API) reset(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "session.API.reset")
	defer span.End()

	state, ok := a.load(w, r.WithContext(ctx))
	if !ok {
		return
	}

	if err := state.Reset(ctx); err != nil {
		a.logger.Errorf("failed to reset session: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to reset session")
		return
	}

	types.WriteJSON(w, http.StatusOK, types.Response{Message: "session reset"})
}

func NewAPI(manager ManagerInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.manager = manager
	a.tracer = tracer
	a.logger = logger

	return a
}
