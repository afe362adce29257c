// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go

func newManager(store Store, resolver RoleResolverInterface) *Manager {
	return NewManager(store, resolver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestState_MultiRole(t *testing.T) {
	tests := []struct {
		name      string
		held      []roles.Role
		multi     bool
		available []roles.Role
		switcher  []roles.Role
	}{
		{
			name:      "no roles",
			held:      []roles.Role{},
			available: []roles.Role{},
			switcher:  []roles.Role{},
		},
		{
			name:      "single role renders no switcher",
			held:      []roles.Role{roles.MortgageApplicant},
			available: []roles.Role{roles.MortgageApplicant},
			switcher:  []roles.Role{},
		},
		{
			name:      "duplicates collapse to a single role",
			held:      []roles.Role{roles.RealEstateAgent, roles.RealEstateAgent},
			available: []roles.Role{roles.RealEstateAgent},
			switcher:  []roles.Role{},
		},
		{
			name:      "multi role in catalog order",
			held:      []roles.Role{roles.RealEstateAgent, roles.BrokerageOwner},
			multi:     true,
			available: []roles.Role{roles.BrokerageOwner, roles.RealEstateAgent},
			switcher:  []roles.Role{roles.BrokerageOwner, roles.RealEstateAgent},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			resolver := NewMockRoleResolverInterface(ctrl)
			resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return(tt.held, nil)

			s, err := newManager(NewMemoryStore(0), resolver).Load(context.Background(), "s1", "u1")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if s.IsMultiRole() != tt.multi {
				t.Errorf("expected multi role %v, got %v", tt.multi, s.IsMultiRole())
			}

			if !reflect.DeepEqual(s.AvailableRoles(), tt.available) {
				t.Errorf("expected available %v, got %v", tt.available, s.AvailableRoles())
			}

			if !reflect.DeepEqual(s.RoleSwitcher(), tt.switcher) {
				t.Errorf("expected switcher %v, got %v", tt.switcher, s.RoleSwitcher())
			}
		})
	}
}

func TestState_SetSelectedRole(t *testing.T) {
	ctrl := gomock.NewController(t)

	resolver := NewMockRoleResolverInterface(ctrl)
	resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return([]roles.Role{roles.BrokerageOwner}, nil).Times(2)

	store := NewMemoryStore(0)
	m := newManager(store, resolver)

	s, _ := m.Load(context.Background(), "s1", "u1")

	if _, ok := s.SelectedRole(); ok {
		t.Fatalf("expected no selection")
	}

	// selection is not validated against held roles
	if err := s.SetSelectedRole(context.Background(), roles.Superadmin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.SetSelectedRole(context.Background(), roles.Role("owner")); !errors.Is(err, roles.ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole, got %v", err)
	}

	reloaded, _ := m.Load(context.Background(), "s1", "u1")
	if r, ok := reloaded.SelectedRole(); !ok || r != roles.Superadmin {
		t.Errorf("expected persisted selection, got %q", r)
	}
}

func TestState_RefreshRoles(t *testing.T) {
	ctrl := gomock.NewController(t)

	resolver := NewMockRoleResolverInterface(ctrl)
	gomock.InOrder(
		resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return([]roles.Role{roles.BrokerageOwner, roles.RealEstateAgent}, nil),
		resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return([]roles.Role{roles.BrokerageOwner, roles.RealEstateAgent, roles.BrokerAssistant}, nil),
		resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return([]roles.Role{roles.BrokerageOwner}, nil),
		resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return(nil, errors.New("db down")),
	)

	store := NewMemoryStore(0)
	s, _ := newManager(store, resolver).Load(context.Background(), "s1", "u1")
	_ = s.SetSelectedRole(context.Background(), roles.RealEstateAgent)

	if err := s.RefreshRoles(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(s.AvailableRoles()) != 3 {
		t.Errorf("expected new role to be available, got %v", s.AvailableRoles())
	}

	if r, _ := s.SelectedRole(); r != roles.RealEstateAgent {
		t.Errorf("expected selection to survive, got %q", r)
	}

	if err := s.RefreshRoles(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.SelectedRole(); ok {
		t.Errorf("expected stale selection to be dropped")
	}

	if _, ok, _ := store.Get(context.Background(), "u1", "s1"); ok {
		t.Errorf("expected stale selection to be removed from the store")
	}

	if err := s.RefreshRoles(context.Background()); err == nil {
		t.Errorf("expected error")
	}
}

func TestState_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)

	resolver := NewMockRoleResolverInterface(ctrl)
	resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return([]roles.Role{roles.BrokerageOwner, roles.RealEstateAgent}, nil)

	store := NewMemoryStore(0)
	s, _ := newManager(store, resolver).Load(context.Background(), "s1", "u1")
	_ = s.SetSelectedRole(context.Background(), roles.RealEstateAgent)

	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.SelectedRole(); ok {
		t.Errorf("expected selection to be cleared")
	}

	if _, ok, _ := store.Get(context.Background(), "u1", "s1"); ok {
		t.Errorf("expected store entry to be removed")
	}
}

func TestManager_Load(t *testing.T) {
	ctrl := gomock.NewController(t)

	resolver := NewMockRoleResolverInterface(ctrl)
	store := NewMockStore(ctrl)

	resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return([]roles.Role{roles.BrokerageOwner}, nil)
	store.EXPECT().Get(gomock.Any(), "u1", "s1").Return(roles.Role(""), false, errors.New("redis down"))

	s, err := newManager(store, resolver).Load(context.Background(), "s1", "u1")
	if err != nil {
		t.Fatalf("store failures must not fail the load: %v", err)
	}

	if _, ok := s.SelectedRole(); ok {
		t.Errorf("expected no selection")
	}

	resolver.EXPECT().ListRoles(gomock.Any(), "u1").Return(nil, errors.New("db down"))

	if _, err := newManager(store, resolver).Load(context.Background(), "s1", "u1"); err == nil {
		t.Errorf("expected error when roles cannot be resolved")
	}
}
