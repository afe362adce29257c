// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	inviters func(http.Handler) http.Handler

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/invitations", a.listPending)
	mux.With(a.inviters).Get("/api/v0/invitations/sent", a.listSent)
	mux.With(a.inviters).Post("/api/v0/invitations", a.create)
	mux.Post("/api/v0/invitations/{id}/accept", a.accept)
	mux.Post("/api/v0/invitations/{id}/reject", a.reject)
}

func (a *API) listPending(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.listPending")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	invitations, err := a.service.ListPending(ctx, userID)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteData(w, http.StatusOK, invitations)
}

func (a *API) listSent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.listSent")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)
	page := db.PaginationFromQuery(r.URL.Query().Get("page"), r.URL.Query().Get("size"))

	invitations, err := a.service.ListSent(ctx, userID, page)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, types.Response{
		Data: invitations,
		Meta: &types.Page{Page: page.Page, Size: page.Size},
	})
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.create")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	req := new(CreateRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		types.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	invitation, err := a.service.Create(ctx, userID, req)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusCreated, types.Response{Data: invitation, Message: "invitation sent"})
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.accept")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	result, err := a.service.Accept(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, types.Response{Data: result, Message: result.Message})
}

func (a *API) reject(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invitation.API.reject")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	if err := a.service.Reject(ctx, userID, chi.URLParam(r, "id")); err != nil {
		a.writeServiceError(w, err)
		return
	}

	types.WriteJSON(w, http.StatusOK, types.Response{Message: "invitation rejected"})
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	status, message := StatusFor(err)
	if status >= http.StatusInternalServerError {
		a.logger.Errorf("invitation request failed: %v", err)
	}

	types.WriteError(w, status, message)
}

// StatusFor maps service errors to an HTTP status and a user facing message.
func StatusFor(err error) (int, string) {
	var writeErr *BackendWriteError

	switch {
	case errors.Is(err, ErrNotAuthenticated):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, ErrInvitationNotFound):
		return http.StatusNotFound, "invitation not found"
	case errors.Is(err, ErrEmailMismatch):
		return http.StatusForbidden, "this invitation was sent to a different email address"
	case errors.Is(err, ErrInvitationExpired):
		return http.StatusGone, "this invitation has expired"
	case errors.Is(err, ErrNoTarget):
		return http.StatusUnprocessableEntity, "this invitation is not linked to a brokerage, project or simulation"
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "you cannot invite people to this container"
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, err.Error()
	case errors.As(err, &writeErr):
		return http.StatusInternalServerError, "could not save your answer, please try again"
	}

	return http.StatusInternalServerError, "something went wrong, please try again"
}

// NewAPI builds the invitation endpoints, inviters gates sending and the sent list.
func NewAPI(service ServiceInterface, inviters func(http.Handler) http.Handler, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.inviters = inviters
	if a.inviters == nil {
		a.inviters = func(next http.Handler) http.Handler { return next }
	}

	a.tracer = tracer
	a.logger = logger

	return a
}
