// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"testing"

	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

func user(rs ...roles.Role) *types.User {
	return &types.User{ID: "u1", Roles: rs}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name     string
		in       Input
		expected Decision
	}{
		{
			name:     "loading takes no decision",
			in:       Input{Loading: true, AllowedRoles: []roles.Role{roles.Superadmin}},
			expected: Decision{Outcome: Loading},
		},
		{
			name:     "anonymous user goes to login",
			in:       Input{AllowedRoles: []roles.Role{roles.BrokerageOwner}, FallbackPath: "/home"},
			expected: Decision{Outcome: RedirectLogin, Redirect: "/auth"},
		},
		{
			name:     "anonymous user with no allowed roles goes to login",
			in:       Input{},
			expected: Decision{Outcome: RedirectLogin, Redirect: "/auth"},
		},
		{
			name:     "owner on admin route goes to default fallback",
			in:       Input{User: user(roles.BrokerageOwner), AllowedRoles: []roles.Role{roles.Superadmin}},
			expected: Decision{Outcome: RedirectFallback, EffectiveRole: roles.BrokerageOwner, Redirect: "/dashboard"},
		},
		{
			name:     "custom fallback",
			in:       Input{User: user(roles.BrokerageOwner), AllowedRoles: []roles.Role{roles.RealEstateAgent}, FallbackPath: "/home"},
			expected: Decision{Outcome: RedirectFallback, EffectiveRole: roles.BrokerageOwner, Redirect: "/home"},
		},
		{
			name:     "first role is effective without selection",
			in:       Input{User: user(roles.BrokerageOwner, roles.RealEstateAgent), AllowedRoles: []roles.Role{roles.BrokerageOwner}},
			expected: Decision{Outcome: Render, EffectiveRole: roles.BrokerageOwner},
		},
		{
			// known quirk: any held role grants access, not only the selected one
			name: "held role grants access despite another selection",
			in: Input{
				User:         user(roles.BrokerageOwner, roles.RealEstateAgent),
				SelectedRole: roles.RealEstateAgent,
				AllowedRoles: []roles.Role{roles.BrokerageOwner},
			},
			expected: Decision{Outcome: Render, EffectiveRole: roles.RealEstateAgent},
		},
		{
			name: "strict mode only honours the selected role",
			in: Input{
				User:         user(roles.BrokerageOwner, roles.RealEstateAgent),
				SelectedRole: roles.RealEstateAgent,
				AllowedRoles: []roles.Role{roles.BrokerageOwner},
				Strict:       true,
			},
			expected: Decision{Outcome: RedirectFallback, EffectiveRole: roles.RealEstateAgent, Redirect: "/dashboard"},
		},
		{
			name: "selection not held falls back to first role",
			in: Input{
				User:         user(roles.MortgageApplicant),
				SelectedRole: roles.Superadmin,
				AllowedRoles: []roles.Role{roles.Superadmin},
			},
			expected: Decision{Outcome: RedirectFallback, EffectiveRole: roles.MortgageApplicant, Redirect: "/dashboard"},
		},
		{
			name:     "superadmin is delegated",
			in:       Input{User: user(roles.Superadmin), AllowedRoles: []roles.Role{roles.Superadmin}},
			expected: Decision{Outcome: DelegateAdmin, EffectiveRole: roles.Superadmin},
		},
		{
			name:     "superadmin on a route that also allows owners is delegated",
			in:       Input{User: user(roles.Superadmin, roles.BrokerageOwner), AllowedRoles: []roles.Role{roles.BrokerageOwner, roles.Superadmin}},
			expected: Decision{Outcome: DelegateAdmin, EffectiveRole: roles.Superadmin},
		},
		{
			name: "owner selection on a mixed route renders directly",
			in: Input{
				User:         user(roles.Superadmin, roles.BrokerageOwner),
				SelectedRole: roles.BrokerageOwner,
				AllowedRoles: []roles.Role{roles.BrokerageOwner, roles.Superadmin},
			},
			expected: Decision{Outcome: Render, EffectiveRole: roles.BrokerageOwner},
		},
		{
			name: "access only through a held superadmin claim is delegated",
			in: Input{
				User:         user(roles.Superadmin, roles.BrokerageOwner),
				SelectedRole: roles.BrokerageOwner,
				AllowedRoles: []roles.Role{roles.Superadmin},
			},
			expected: Decision{Outcome: DelegateAdmin, EffectiveRole: roles.BrokerageOwner},
		},
		{
			name:     "superadmin on a route not allowing it",
			in:       Input{User: user(roles.Superadmin), AllowedRoles: []roles.Role{roles.MortgageApplicant}},
			expected: Decision{Outcome: RedirectFallback, EffectiveRole: roles.Superadmin, Redirect: "/dashboard"},
		},
		{
			name:     "user without roles",
			in:       Input{User: user(), AllowedRoles: []roles.Role{roles.MortgageApplicant}},
			expected: Decision{Outcome: RedirectFallback, Redirect: "/dashboard"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.in); got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestDecide_AnonymousAlwaysRedirectsToLogin(t *testing.T) {
	for _, allowed := range [][]roles.Role{nil, roles.All(), {roles.Superadmin}} {
		for _, selected := range append(roles.All(), "") {
			d := Decide(Input{SelectedRole: selected, AllowedRoles: allowed})
			if d.Outcome != RedirectLogin || d.Redirect != LoginPath {
				t.Errorf("allowed %v selected %q: expected login redirect, got %+v", allowed, selected, d)
			}
		}
	}
}

func TestRouteTable_Lookup(t *testing.T) {
	table := DefaultRoutes()

	tests := []struct {
		path     string
		expected string
		found    bool
	}{
		{path: "/admin", expected: "/admin", found: true},
		{path: "/admin/users", expected: "/admin", found: true},
		{path: "/administrator", found: false},
		{path: "/simulations/42", expected: "/simulations", found: true},
		{path: "/invitations", expected: "/invitations", found: true},
		{path: "/invitations/sent", expected: InvitationsSentPath, found: true},
		{path: "/", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := table.Lookup(tt.path)
			if ok != tt.found || r.Path != tt.expected {
				t.Errorf("expected %q %v, got %q %v", tt.expected, tt.found, r.Path, ok)
			}
		})
	}
}

func TestRouteTable_LongestPrefix(t *testing.T) {
	table := RouteTable{
		{Path: "/admin", AllowedRoles: []roles.Role{roles.Superadmin}},
		{Path: "/admin/reports", AllowedRoles: []roles.Role{roles.BrokerageOwner}},
	}

	r, _ := table.Lookup("/admin/reports/2026")
	if r.Path != "/admin/reports" {
		t.Errorf("expected most specific route, got %q", r.Path)
	}
}
