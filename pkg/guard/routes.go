// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"strings"

	"github.com/canonical/brokerage-service/internal/roles"
)

type Route struct {
	Path         string       `json:"path"`
	AllowedRoles []roles.Role `json:"allowed_roles"`
}

// InvitationsSentPath is the inviter view, sending invitations requires one of its roles.
const InvitationsSentPath = "/invitations/sent"

type RouteTable []Route

// DefaultRoutes lists the dashboards of the application.
func DefaultRoutes() RouteTable {
	return RouteTable{
		{Path: "/admin", AllowedRoles: []roles.Role{roles.Superadmin}},
		{Path: "/brokerage", AllowedRoles: []roles.Role{roles.BrokerageOwner, roles.Superadmin}},
		{Path: "/assistant", AllowedRoles: []roles.Role{roles.BrokerAssistant}},
		{Path: "/agent", AllowedRoles: []roles.Role{roles.RealEstateAgent}},
		{Path: "/applicant", AllowedRoles: []roles.Role{roles.MortgageApplicant}},
		{Path: "/simulations", AllowedRoles: []roles.Role{
			roles.SimulationCollaborator,
			roles.MortgageApplicant,
			roles.BrokerAssistant,
			roles.BrokerageOwner,
		}},
		{Path: "/invitations", AllowedRoles: []roles.Role{
			roles.BrokerageOwner,
			roles.BrokerAssistant,
			roles.MortgageApplicant,
			roles.RealEstateAgent,
			roles.SimulationCollaborator,
		}},
		{Path: InvitationsSentPath, AllowedRoles: []roles.Role{
			roles.BrokerageOwner,
			roles.BrokerAssistant,
			roles.Superadmin,
		}},
	}
}

// Lookup returns the route with the longest path prefixing path.
func (t RouteTable) Lookup(path string) (Route, bool) {
	var (
		best  Route
		found bool
	)

	for _, r := range t {
		if path != r.Path && !strings.HasPrefix(path, r.Path+"/") {
			continue
		}

		if !found || len(r.Path) > len(best.Path) {
			best, found = r, true
		}
	}

	return best, found
}
