// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

type API struct {
	service ServiceInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/me", a.me)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "user.API.me")
	defer span.End()

	userID, ok := authentication.GetUserID(ctx)
	if !ok {
		types.WriteError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := a.service.GetUser(ctx, userID)
	if errors.Is(err, ErrUserNotFound) {
		types.WriteError(w, http.StatusNotFound, "user not found")
		return
	}

	if err != nil {
		a.logger.Errorf("failed to resolve user %s: %v", userID, err)
		types.WriteError(w, http.StatusInternalServerError, "failed to resolve user")
		return
	}

	types.WriteData(w, http.StatusOK, u)
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.tracer = tracer
	a.logger = logger

	return a
}
