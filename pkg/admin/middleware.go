// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"net/http"

	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/pkg/authentication"
)

// LoginPath is where unauthenticated browsers are sent.
const LoginPath = "/auth"

type Middleware struct {
	checker CheckerInterface
}

// Protect lets the request through only when the caller is a verified superadmin.
func (m *Middleware) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := authentication.GetUserID(r.Context())

		switch result := m.checker.Check(r.Context(), userID); result {
		case Granted:
			next.ServeHTTP(w, r)
		case AuthenticationRequired:
			if types.WantsHTML(r) {
				http.Redirect(w, r, LoginPath, http.StatusSeeOther)
				return
			}
			types.WriteRedirect(w, http.StatusUnauthorized, result.Message(), LoginPath)
		default:
			types.WriteError(w, http.StatusForbidden, InsufficientPermissions.Message())
		}
	})
}

func NewMiddleware(checker CheckerInterface) *Middleware {
	return &Middleware{checker: checker}
}
