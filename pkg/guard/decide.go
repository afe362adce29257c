// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package guard decides whether a user may reach a role-scoped route.
package guard

import (
	"slices"

	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

const (
	LoginPath           = "/auth"
	DefaultFallbackPath = "/dashboard"
)

type Outcome string

const (
	Loading          Outcome = "loading"
	RedirectLogin    Outcome = "redirect_login"
	RedirectFallback Outcome = "redirect_fallback"
	DelegateAdmin    Outcome = "delegate_admin"
	Render           Outcome = "render"
	// Denied is only produced once a delegated admin check has failed.
	Denied Outcome = "insufficient_permissions"
)

type Input struct {
	User         *types.User
	Loading      bool
	SelectedRole roles.Role
	AllowedRoles []roles.Role
	FallbackPath string
	// Strict disables access through held roles other than the effective one.
	Strict bool
}

type Decision struct {
	Outcome       Outcome    `json:"outcome"`
	EffectiveRole roles.Role `json:"effective_role,omitempty"`
	Redirect      string     `json:"redirect,omitempty"`
}

// EffectiveRole is the selected role when the user holds it, else the first held role.
func EffectiveRole(u *types.User, selected roles.Role) roles.Role {
	if u == nil {
		return ""
	}

	if selected != "" && u.HasRole(selected) {
		return selected
	}

	if len(u.Roles) > 0 {
		return u.Roles[0]
	}

	return ""
}

// Decide is evaluated from scratch on every request.
func Decide(in Input) Decision {
	if in.Loading {
		return Decision{Outcome: Loading}
	}

	if in.User == nil {
		return Decision{Outcome: RedirectLogin, Redirect: LoginPath}
	}

	effective := EffectiveRole(in.User, in.SelectedRole)

	byEffective := effective != "" && slices.Contains(in.AllowedRoles, effective)
	byHeld := !in.Strict && roles.ContainsAny(in.User.Roles, in.AllowedRoles)

	if !byEffective && !byHeld {
		fallback := in.FallbackPath
		if fallback == "" {
			fallback = DefaultFallbackPath
		}
		return Decision{Outcome: RedirectFallback, EffectiveRole: effective, Redirect: fallback}
	}

	superadminAllowed := slices.Contains(in.AllowedRoles, roles.Superadmin)

	if effective == roles.Superadmin && superadminAllowed {
		return Decision{Outcome: DelegateAdmin, EffectiveRole: effective}
	}

	if !byEffective && onlySuperadminQualifies(in.User.Roles, in.AllowedRoles) {
		return Decision{Outcome: DelegateAdmin, EffectiveRole: effective}
	}

	return Decision{Outcome: Render, EffectiveRole: effective}
}

func onlySuperadminQualifies(held, allowed []roles.Role) bool {
	for _, r := range held {
		if r != roles.Superadmin && slices.Contains(allowed, r) {
			return false
		}
	}

	return slices.Contains(held, roles.Superadmin) && slices.Contains(allowed, roles.Superadmin)
}
