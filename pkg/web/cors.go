// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/canonical/brokerage-service/internal/identity"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{
				http.MethodHead,
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
			},
			AllowedHeaders: []string{
				"Accept",
				"Authorization",
				"Content-Type",
				identity.HeaderName,
				identity.SessionHeaderName,
				authentication.SessionIDHeader,
			},
			AllowCredentials: true,
			MaxAge:           300,
		},
	)
}
