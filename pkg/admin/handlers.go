// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/pkg/authentication"
	"github.com/canonical/brokerage-service/pkg/user"
)

type CheckResponse struct {
	Result  Result `json:"result"`
	Granted bool   `json:"granted"`
}

type API struct {
	checker CheckerInterface
	users   UsersInterface

	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/admin/check", a.check)
	mux.With(NewMiddleware(a.checker).Protect).Get("/api/v0/admin/users/{id}", a.getUser)
}

func (a *API) check(w http.ResponseWriter, r *http.Request) {
	userID, _ := authentication.GetUserID(r.Context())

	result := a.checker.Check(r.Context(), userID)

	types.WriteJSON(w, http.StatusOK, types.Response{
		Data:    CheckResponse{Result: result, Granted: result == Granted},
		Message: result.Message(),
	})
}

func (a *API) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	u, err := a.users.GetUser(r.Context(), id)
	if errors.Is(err, user.ErrUserNotFound) {
		types.WriteError(w, http.StatusNotFound, "user not found")
		return
	}

	if err != nil {
		a.logger.Errorf("failed to resolve user %s: %v", id, err)
		types.WriteError(w, http.StatusInternalServerError, "failed to resolve user")
		return
	}

	adminID, _ := authentication.GetUserID(r.Context())
	a.logger.Security().AdminAction(adminID, "view", "user:"+id)

	types.WriteData(w, http.StatusOK, u)
}

func NewAPI(checker CheckerInterface, users UsersInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checker = checker
	a.users = users
	a.logger = logger

	return a
}
