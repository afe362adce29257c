// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/internal/tracing"
)

type AccessResponse struct {
	Route Route `json:"route"`
	Decision
}

type API struct {
	guard  GuardInterface
	routes RouteTable

	tracer tracing.TracingInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/access", a.access)
	mux.Get("/api/v0/routes", a.listRoutes)
}

func (a *API) access(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "guard.API.access")
	defer span.End()

	path := r.URL.Query().Get("route")
	if path == "" {
		types.WriteError(w, http.StatusBadRequest, "route is required")
		return
	}

	route, ok := a.routes.Lookup(path)
	if !ok {
		types.WriteError(w, http.StatusNotFound, "unknown route")
		return
	}

	d := a.guard.Evaluate(ctx, route.AllowedRoles, localPath(r.URL.Query().Get("fallback")))

	types.WriteData(w, http.StatusOK, AccessResponse{Route: route, Decision: d})
}

// localPath returns p when it is a path on this host, or "" so the configured fallback applies.
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.ContainsAny(p, "\\\r\n") {
		return ""
	}

	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return ""
	}

	return p
}

func (a *API) listRoutes(w http.ResponseWriter, r *http.Request) {
	types.WriteData(w, http.StatusOK, a.routes)
}

func NewAPI(guard GuardInterface, routes RouteTable, tracer tracing.TracingInterface) *API {
	return &API{guard: guard, routes: routes, tracer: tracer}
}
