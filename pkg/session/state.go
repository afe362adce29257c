// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"fmt"
	"slices"

	"github.com/canonical/brokerage-service/internal/roles"
)

// State is the role selection of one authenticated session.
// It is built per request by Manager.Load and is not shared between goroutines.
type State struct {
	sessionID string
	userID    string

	available []roles.Role
	selected  roles.Role

	store    Store
	resolver RoleResolverInterface
}

func (s *State) SessionID() string {
	return s.sessionID
}

func (s *State) UserID() string {
	return s.userID
}

// AvailableRoles returns the roles backed by a live membership, in catalog order.
func (s *State) AvailableRoles() []roles.Role {
	return slices.Clone(s.available)
}

func (s *State) IsMultiRole() bool {
	return len(s.available) > 1
}

// RoleSwitcher returns the roles a switcher renders, nothing for single-role users.
func (s *State) RoleSwitcher() []roles.Role {
	if !s.IsMultiRole() {
		return []roles.Role{}
	}

	return s.AvailableRoles()
}

// SelectedRole returns the explicit selection, if any.
// The selection is not guaranteed to be held by the user.
func (s *State) SelectedRole() (roles.Role, bool) {
	return s.selected, s.selected != ""
}

// SetSelectedRole records role as the active one without checking the user holds it.
func (s *State) SetSelectedRole(ctx context.Context, role roles.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: %q", roles.ErrUnknownRole, role)
	}

	if err := s.store.Set(ctx, s.userID, s.sessionID, role); err != nil {
		return fmt.Errorf("failed to store selected role: %w", err)
	}

	s.selected = role

	return nil
}

// RefreshRoles reloads the available roles and drops a selection that is no longer held.
func (s *State) RefreshRoles(ctx context.Context) error {
	rs, err := s.resolver.ListRoles(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("failed to refresh roles: %w", err)
	}

	s.available = roles.Normalize(rs)

	if s.selected != "" && !slices.Contains(s.available, s.selected) {
		if err := s.store.Delete(ctx, s.userID, s.sessionID); err != nil {
			return fmt.Errorf("failed to clear selected role: %w", err)
		}
		s.selected = ""
	}

	return nil
}

// Reset forgets the selection, used on logout.
func (s *State) Reset(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.userID, s.sessionID); err != nil {
		return fmt.Errorf("failed to reset session: %w", err)
	}

	s.selected = ""

	return nil
}

// View is the JSON rendering of a State.
type View struct {
	AvailableRoles []roles.Role `json:"available_roles"`
	SelectedRole   roles.Role   `json:"selected_role,omitempty"`
	MultiRole      bool         `json:"multi_role"`
	Switcher       []roles.Role `json:"switcher"`
}

func (s *State) View() View {
	return View{
		AvailableRoles: s.AvailableRoles(),
		SelectedRole:   s.selected,
		MultiRole:      s.IsMultiRole(),
		Switcher:       s.RoleSwitcher(),
	}
}
