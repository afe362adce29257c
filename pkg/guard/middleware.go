// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"net/http"

	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

type Middleware struct {
	guard  GuardInterface
	logger logging.LoggerInterface
}

// RequireRoles guards next with allowed, sending denied callers to fallback.
// Browsers are redirected, API clients get the redirect target in the JSON body.
func (m *Middleware) RequireRoles(fallback string, allowed ...roles.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := m.guard.Evaluate(r.Context(), allowed, fallback)

			if d.Outcome == Render {
				next.ServeHTTP(w, r)
				return
			}

			userID, _ := authentication.GetUserID(r.Context())
			m.logger.Security().AuthzFailure(userID, r.URL.Path)

			switch d.Outcome {
			case RedirectLogin:
				writeRedirect(w, r, http.StatusUnauthorized, "authentication required", d.Redirect)
			case RedirectFallback:
				writeRedirect(w, r, http.StatusForbidden, "role not allowed", d.Redirect)
			default:
				types.WriteError(w, http.StatusForbidden, "insufficient permissions")
			}
		})
	}
}

func writeRedirect(w http.ResponseWriter, r *http.Request, status int, message, location string) {
	if types.WantsHTML(r) {
		http.Redirect(w, r, location, http.StatusSeeOther)
		return
	}

	types.WriteRedirect(w, status, message, location)
}

func NewMiddleware(guard GuardInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{guard: guard, logger: logger}
}
