// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package roles is the catalog of roles a user can hold.
package roles

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownRole = errors.New("unknown role")

// Role is a closed enumeration, values outside the catalog never leave Parse.
type Role string

const (
	Superadmin             Role = "superadmin"
	BrokerageOwner         Role = "brokerage_owner"
	BrokerAssistant        Role = "broker_assistant"
	MortgageApplicant      Role = "mortgage_applicant"
	RealEstateAgent        Role = "real_estate_agent"
	SimulationCollaborator Role = "simulation_collaborator"
)

var catalog = []Role{
	Superadmin,
	BrokerageOwner,
	BrokerAssistant,
	MortgageApplicant,
	RealEstateAgent,
	SimulationCollaborator,
}

// All returns every role in catalog order.
func All() []Role {
	return slices.Clone(catalog)
}

func Parse(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}

	return r, nil
}

func (r Role) IsValid() bool {
	return slices.Contains(catalog, r)
}

func (r Role) String() string {
	return string(r)
}

func (r Role) DisplayName() string {
	switch r {
	case Superadmin:
		return "Super Admin"
	case BrokerageOwner:
		return "Brokerage Owner"
	case BrokerAssistant:
		return "Broker Assistant"
	case MortgageApplicant:
		return "Mortgage Applicant"
	case RealEstateAgent:
		return "Real Estate Agent"
	case SimulationCollaborator:
		return "Simulation Collaborator"
	}

	return ""
}

// Global reports whether the role is a platform-wide claim rather than a membership.
func (r Role) Global() bool {
	return r == Superadmin
}

func (r Role) order() int {
	return slices.Index(catalog, r)
}

// Normalize drops duplicates and sorts rs in catalog order.
func Normalize(rs []Role) []Role {
	out := make([]Role, 0, len(rs))
	for _, r := range rs {
		if r.IsValid() && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}

	slices.SortFunc(out, func(a, b Role) int {
		return a.order() - b.order()
	})

	return out
}

// ContainsAny reports whether any role of held is in allowed.
func ContainsAny(held, allowed []Role) bool {
	for _, r := range held {
		if slices.Contains(allowed, r) {
			return true
		}
	}

	return false
}

func Strings(rs []Role) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}
