// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/events"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/storage"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/types"
	"github.com/canonical/brokerage-service/pkg/user"
)

//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_invitation.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitation -destination ./mock_events.go -source=../../internal/events/events.go

const (
	userID       = "0192a3f0-0000-7000-8000-000000000001"
	invitationID = "0192a3f0-0000-7000-8000-0000000000aa"
	brokerageID  = "0192a3f0-0000-7000-8000-0000000000bb"
	projectID    = "0192a3f0-0000-7000-8000-0000000000cc"
)

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type mocks struct {
	storage   *MockStorageInterface
	users     *MockUserResolverInterface
	authz     *MockAuthzInterface
	authority *MockAuthorityInterface
	publisher *MockPublisherInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, *mocks) {
	m := &mocks{
		storage:   NewMockStorageInterface(ctrl),
		users:     NewMockUserResolverInterface(ctrl),
		authz:     NewMockAuthzInterface(ctrl),
		authority: NewMockAuthorityInterface(ctrl),
		publisher: NewMockPublisherInterface(ctrl),
	}

	s := NewService(m.storage, m.users, m.authz, m.authority, m.publisher, 7*24*time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	s.now = func() time.Time { return now }

	return s, m
}

func ptr(s string) *string {
	return &s
}

func pendingInvitation() *types.Invitation {
	return &types.Invitation{
		ID:          invitationID,
		Email:       "Ana@Example.com",
		Role:        roles.BrokerAssistant,
		BrokerageID: ptr(brokerageID),
		InviterID:   "inviter",
		InviterName: "Rui Costa",
		CreatedAt:   now.Add(-24 * time.Hour),
		ExpiresAt:   now.Add(6 * 24 * time.Hour),
	}
}

func ana() *types.User {
	return &types.User{ID: userID, Email: "ana@example.com"}
}

func TestService_ListPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	expired := pendingInvitation()
	expired.ExpiresAt = now.Add(-time.Hour)

	m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
	m.storage.EXPECT().ListPendingInvitations(gomock.Any(), "ana@example.com").Return([]*types.Invitation{pendingInvitation(), expired}, nil)

	views, err := s.ListPending(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(views) != 2 {
		t.Fatalf("expected 2 invitations, got %d", len(views))
	}

	if views[0].DaysRemaining != 6 || views[0].ExpiryLabel != "expires in 6 days" {
		t.Errorf("unexpected view %+v", views[0])
	}

	if views[1].DaysRemaining != 0 || views[1].ExpiryLabel != ExpiresSoon {
		t.Errorf("unexpected expired view %+v", views[1])
	}
}

func TestService_ListPending_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	if _, err := s.ListPending(context.Background(), ""); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}

	m.users.EXPECT().GetUser(gomock.Any(), userID).Return(nil, user.ErrUserNotFound)

	if _, err := s.ListPending(context.Background(), userID); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestService_ListSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	page := db.NewPagination(2, 10)
	m.storage.EXPECT().ListSentInvitations(gomock.Any(), userID, page).Return([]*types.Invitation{pendingInvitation()}, nil)

	views, err := s.ListSent(context.Background(), userID, page)
	if err != nil || len(views) != 1 {
		t.Fatalf("unexpected result %v %v", views, err)
	}
}

func TestService_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	target := types.Container{Kind: types.ContainerBrokerage, ID: brokerageID}

	m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
	m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)

	gomock.InOrder(
		m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(false, nil),
		m.storage.EXPECT().AddMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(&types.Membership{ID: "m1", Container: target}, nil),
		m.storage.EXPECT().AddRoleClaim(gomock.Any(), userID, roles.BrokerAssistant).Return(nil),
		m.authz.EXPECT().AssignMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(nil),
		m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), invitationID, now).Return(nil),
		m.publisher.EXPECT().Publish(gomock.Any(), events.Event{
			Type:         events.InvitationAccepted,
			InvitationID: invitationID,
			UserID:       userID,
			Email:        "Ana@Example.com",
			Role:         "broker_assistant",
			Container:    "brokerage:" + brokerageID,
			OccurredAt:   now,
		}).Return(nil),
	)

	result, err := s.Accept(context.Background(), userID, invitationID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AlreadyMember || result.Membership == nil || result.Membership.ID != "m1" {
		t.Errorf("unexpected result %+v", result)
	}

	if result.Invitation.AcceptedAt == nil || !result.Invitation.AcceptedAt.Equal(now) {
		t.Errorf("expected accepted_at to be set")
	}
}

func TestService_Accept_ProjectTakesPrecedence(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	i := pendingInvitation()
	i.ProjectID = ptr(projectID)
	target := types.Container{Kind: types.ContainerProject, ID: projectID}

	m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
	m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(i, nil)
	m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(false, nil)
	m.storage.EXPECT().AddMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(&types.Membership{}, nil).Times(1)
	m.storage.EXPECT().AddRoleClaim(gomock.Any(), userID, roles.BrokerAssistant).Return(nil)
	m.authz.EXPECT().AssignMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(nil)
	m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), invitationID, now).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	if _, err := s.Accept(context.Background(), userID, invitationID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Accept_AlreadyMember(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*mocks, types.Container)
	}{
		{
			name: "membership found",
			setup: func(m *mocks, target types.Container) {
				m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(true, nil)
			},
		},
		{
			name: "membership inserted concurrently",
			setup: func(m *mocks, target types.Container) {
				m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(false, nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(nil, storage.ErrDuplicateKey)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, m := newTestService(ctrl)

			target := types.Container{Kind: types.ContainerBrokerage, ID: brokerageID}

			m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
			m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
			tt.setup(m, target)
			m.authz.EXPECT().AssignMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(nil)
			m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), invitationID, now).Return(nil)
			m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

			result, err := s.Accept(context.Background(), userID, invitationID)
			if err != nil {
				t.Fatalf("expected soft success, got %v", err)
			}

			if !result.AlreadyMember || result.Message != AlreadyMemberMessage || result.Membership != nil {
				t.Errorf("unexpected result %+v", result)
			}
		})
	}
}

func TestService_Accept_Failures(t *testing.T) {
	writeErr := errors.New("connection reset")

	tests := []struct {
		name        string
		userID      string
		setup       func(*mocks, types.Container)
		expectedErr error
		writeStep   string
	}{
		{
			name:        "unauthenticated",
			setup:       func(*mocks, types.Container) {},
			expectedErr: ErrNotAuthenticated,
		},
		{
			name:   "not found",
			userID: userID,
			setup: func(m *mocks, _ types.Container) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name:   "already accepted",
			userID: userID,
			setup: func(m *mocks, _ types.Container) {
				i := pendingInvitation()
				accepted := now.Add(-time.Hour)
				i.AcceptedAt = &accepted
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(i, nil)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name:   "email mismatch performs no writes",
			userID: userID,
			setup: func(m *mocks, _ types.Container) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID, Email: "eve@example.com"}, nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
			},
			expectedErr: ErrEmailMismatch,
		},
		{
			name:   "expired",
			userID: userID,
			setup: func(m *mocks, _ types.Container) {
				i := pendingInvitation()
				i.ExpiresAt = now.Add(-time.Minute)
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(i, nil)
			},
			expectedErr: ErrInvitationExpired,
		},
		{
			name:   "general invitation",
			userID: userID,
			setup: func(m *mocks, _ types.Container) {
				i := pendingInvitation()
				i.BrokerageID = nil
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(i, nil)
			},
			expectedErr: ErrNoTarget,
		},
		{
			name:   "membership insert fails",
			userID: userID,
			setup: func(m *mocks, target types.Container) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
				m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(false, nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(nil, writeErr)
			},
			expectedErr: writeErr,
			writeStep:   "membership",
		},
		{
			name:   "role claim insert fails",
			userID: userID,
			setup: func(m *mocks, target types.Container) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
				m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(false, nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(&types.Membership{}, nil)
				m.storage.EXPECT().AddRoleClaim(gomock.Any(), userID, roles.BrokerAssistant).Return(writeErr)
			},
			expectedErr: writeErr,
			writeStep:   "role claim",
		},
		{
			name:   "accepted_at update fails",
			userID: userID,
			setup: func(m *mocks, target types.Container) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
				m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(false, nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(&types.Membership{}, nil)
				m.storage.EXPECT().AddRoleClaim(gomock.Any(), userID, roles.BrokerAssistant).Return(storage.ErrDuplicateKey)
				m.authz.EXPECT().AssignMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(nil)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), invitationID, now).Return(writeErr)
			},
			expectedErr: writeErr,
			writeStep:   "accepted_at",
		},
		{
			name:   "accepted concurrently",
			userID: userID,
			setup: func(m *mocks, target types.Container) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
				m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(true, nil)
				m.authz.EXPECT().AssignMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(nil)
				m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), invitationID, now).Return(storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name:   "existing member tuple write fails",
			userID: userID,
			setup: func(m *mocks, target types.Container) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
				m.storage.EXPECT().HasMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(true, nil)
				m.authz.EXPECT().AssignMembership(gomock.Any(), target, userID, roles.BrokerAssistant).Return(writeErr)
			},
			expectedErr: writeErr,
			writeStep:   "authorization",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, m := newTestService(ctrl)

			tt.setup(m, types.Container{Kind: types.ContainerBrokerage, ID: brokerageID})

			_, err := s.Accept(context.Background(), tt.userID, invitationID)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}

			var we *BackendWriteError
			if tt.writeStep != "" && (!errors.As(err, &we) || we.Step != tt.writeStep) {
				t.Errorf("expected write error on %q, got %v", tt.writeStep, err)
			}
		})
	}
}

func TestService_Accept_PublishFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
	m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
	m.storage.EXPECT().HasMembership(gomock.Any(), gomock.Any(), userID, roles.BrokerAssistant).Return(true, nil)
	m.authz.EXPECT().AssignMembership(gomock.Any(), gomock.Any(), userID, roles.BrokerAssistant).Return(nil)
	m.storage.EXPECT().MarkInvitationAccepted(gomock.Any(), invitationID, now).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker unreachable"))

	if _, err := s.Accept(context.Background(), userID, invitationID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, m := newTestService(ctrl)

	m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
	m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
	m.storage.EXPECT().DeleteInvitation(gomock.Any(), invitationID).Return(nil)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e events.Event) error {
		if e.Type != events.InvitationRejected || e.Container != "brokerage:"+brokerageID {
			t.Errorf("unexpected event %+v", e)
		}
		return nil
	})

	if err := s.Reject(context.Background(), userID, invitationID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_Reject_Failures(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*mocks)
		expectedErr error
	}{
		{
			name: "email mismatch",
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID, Email: "eve@example.com"}, nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
			},
			expectedErr: ErrEmailMismatch,
		},
		{
			name: "already rejected",
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
		{
			name: "deleted concurrently",
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().GetInvitation(gomock.Any(), invitationID).Return(pendingInvitation(), nil)
				m.storage.EXPECT().DeleteInvitation(gomock.Any(), invitationID).Return(storage.ErrNotFound)
			},
			expectedErr: ErrInvitationNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, m := newTestService(ctrl)

			tt.setup(m)

			if err := s.Reject(context.Background(), userID, invitationID); !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestService_Create(t *testing.T) {
	target := types.Container{Kind: types.ContainerBrokerage, ID: brokerageID}

	tests := []struct {
		name        string
		req         *CreateRequest
		setup       func(*mocks)
		expectedErr error
	}{
		{
			name: "owner invites",
			req:  &CreateRequest{Email: " Joao@Example.com ", Role: "real_estate_agent", BrokerageID: ptr(brokerageID), ProjectID: ptr("")},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{roles.BrokerageOwner}, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i *types.Invitation) (*types.Invitation, error) {
					if i.Email != "joao@example.com" || i.ProjectID != nil || !i.ExpiresAt.Equal(now.Add(7*24*time.Hour)) {
						t.Errorf("unexpected invitation %+v", i)
					}
					out := *i
					out.ID = invitationID
					return &out, nil
				})
			},
		},
		{
			name: "owner invites another owner",
			req:  &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{roles.BrokerageOwner}, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(&types.Invitation{ID: invitationID}, nil)
			},
		},
		{
			name: "assistant invites an agent",
			req:  &CreateRequest{Email: "joao@example.com", Role: "real_estate_agent", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{roles.BrokerAssistant}, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(&types.Invitation{ID: invitationID}, nil)
			},
		},
		{
			name: "assistant cannot grant owner",
			req:  &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{roles.BrokerAssistant}, nil)
				m.authority.EXPECT().IsSuperadmin(gomock.Any(), userID).Return(false, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "agent cannot invite",
			req:  &CreateRequest{Email: "joao@example.com", Role: "real_estate_agent", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{roles.RealEstateAgent}, nil)
				m.authority.EXPECT().IsSuperadmin(gomock.Any(), userID).Return(false, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "self invitation",
			req:  &CreateRequest{Email: "ANA@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "unknown inviter",
			req:  &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(nil, user.ErrUserNotFound)
			},
			expectedErr: ErrNotAuthenticated,
		},
		{
			name: "superadmin invites",
			req:  &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{}, nil)
				m.authority.EXPECT().IsSuperadmin(gomock.Any(), userID).Return(true, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(&types.Invitation{ID: invitationID}, nil)
			},
		},
		{
			name: "outsider",
			req:  &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{}, nil)
				m.authority.EXPECT().IsSuperadmin(gomock.Any(), userID).Return(false, nil)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "authority failure denies",
			req:  &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{}, nil)
				m.authority.EXPECT().IsSuperadmin(gomock.Any(), userID).Return(true, errors.New("timeout"))
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "unknown container",
			req:  &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup: func(m *mocks) {
				m.users.EXPECT().GetUser(gomock.Any(), userID).Return(ana(), nil)
				m.storage.EXPECT().ContainerRoles(gomock.Any(), target, userID).Return([]roles.Role{roles.BrokerageOwner}, nil)
				m.storage.EXPECT().CreateInvitation(gomock.Any(), gomock.Any()).Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "invalid email",
			req:         &CreateRequest{Email: "not-an-email", Role: "brokerage_owner", BrokerageID: ptr(brokerageID)},
			setup:       func(*mocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "unknown role",
			req:         &CreateRequest{Email: "joao@example.com", Role: "owner", BrokerageID: ptr(brokerageID)},
			setup:       func(*mocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "superadmin cannot be invited",
			req:         &CreateRequest{Email: "joao@example.com", Role: "superadmin", BrokerageID: ptr(brokerageID)},
			setup:       func(*mocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "no container",
			req:         &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner"},
			setup:       func(*mocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "two containers",
			req:         &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr(brokerageID), ProjectID: ptr(projectID)},
			setup:       func(*mocks) {},
			expectedErr: ErrInvalidRequest,
		},
		{
			name:        "malformed container id",
			req:         &CreateRequest{Email: "joao@example.com", Role: "brokerage_owner", BrokerageID: ptr("b1")},
			setup:       func(*mocks) {},
			expectedErr: ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			s, m := newTestService(ctrl)

			tt.setup(m)

			i, err := s.Create(context.Background(), userID, tt.req)
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}

			if tt.expectedErr == nil && i.ID != invitationID {
				t.Errorf("unexpected invitation %+v", i)
			}
		})
	}

	ctrl := gomock.NewController(t)
	s, _ := newTestService(ctrl)

	if _, err := s.Create(context.Background(), "", &CreateRequest{}); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestCanGrant(t *testing.T) {
	tests := []struct {
		inviter  roles.Role
		invited  roles.Role
		expected bool
	}{
		{roles.BrokerageOwner, roles.BrokerageOwner, true},
		{roles.BrokerageOwner, roles.MortgageApplicant, true},
		{roles.BrokerAssistant, roles.RealEstateAgent, true},
		{roles.BrokerAssistant, roles.BrokerageOwner, false},
		{roles.RealEstateAgent, roles.MortgageApplicant, false},
		{roles.SimulationCollaborator, roles.SimulationCollaborator, false},
		{roles.BrokerageOwner, roles.Superadmin, false},
	}

	for _, tt := range tests {
		if got := CanGrant(tt.inviter, tt.invited); got != tt.expected {
			t.Errorf("CanGrant(%s, %s) = %v, expected %v", tt.inviter, tt.invited, got, tt.expected)
		}
	}
}
