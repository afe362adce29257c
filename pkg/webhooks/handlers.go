// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/registration", a.registration)
	mux.Post("/webhooks/token", a.token)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	identity := new(KratosIdentity)
	if err := json.NewDecoder(r.Body).Decode(identity); err != nil {
		a.logger.Errorf("invalid registration payload: %v", err)
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := a.service.HandleRegistration(r.Context(), identity)
	if errors.Is(err, ErrMissingIdentity) || errors.Is(err, ErrMissingEmail) {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err != nil {
		a.logger.Errorf("registration hook failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to store profile")
		return
	}

	types.WriteData(w, http.StatusOK, u)
}

// token answers Hydra directly, the body is the hook response and not an envelope.
func (a *API) token(w http.ResponseWriter, r *http.Request) {
	req := new(oauth2.TokenHookRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.logger.Errorf("invalid token hook payload: %v", err)
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), req)
	if errors.Is(err, ErrMissingSubject) {
		types.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err != nil {
		a.logger.Errorf("token hook failed: %v", err)
		types.WriteError(w, http.StatusInternalServerError, "failed to resolve roles")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.logger = logger

	return a
}
