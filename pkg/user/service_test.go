// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package user

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/brokerage-service/internal/kratos"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/storage"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package user -destination ./mock_user.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package user -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

func TestService_GetUser(t *testing.T) {
	userID := "0192a3f0-0000-7000-8000-000000000001"
	profile := &types.User{ID: userID, Email: "ana@example.com", FirstName: "Ana"}
	held := []roles.Role{roles.BrokerageOwner, roles.RealEstateAgent}

	tests := []struct {
		name        string
		setup       func(*MockStorageInterface, *MockKratosClientInterface)
		expectedErr error
		wantRoles   []roles.Role
	}{
		{
			name: "existing user",
			setup: func(s *MockStorageInterface, k *MockKratosClientInterface) {
				s.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID, Email: "ana@example.com"}, nil)
				s.EXPECT().ListUserRoles(gomock.Any(), userID).Return(held, nil)
			},
			wantRoles: held,
		},
		{
			name: "provisioned from identity provider",
			setup: func(s *MockStorageInterface, k *MockKratosClientInterface) {
				s.EXPECT().GetUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				k.EXPECT().GetIdentity(gomock.Any(), userID).Return(profile, nil)
				s.EXPECT().UpsertUser(gomock.Any(), profile).Return(profile, nil)
				s.EXPECT().ListUserRoles(gomock.Any(), userID).Return([]roles.Role{}, nil)
			},
			wantRoles: []roles.Role{},
		},
		{
			name: "unknown identity",
			setup: func(s *MockStorageInterface, k *MockKratosClientInterface) {
				s.EXPECT().GetUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				k.EXPECT().GetIdentity(gomock.Any(), userID).Return(nil, kratos.ErrIdentityNotFound)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "role lookup fails",
			setup: func(s *MockStorageInterface, k *MockKratosClientInterface) {
				s.EXPECT().GetUser(gomock.Any(), userID).Return(&types.User{ID: userID}, nil)
				s.EXPECT().ListUserRoles(gomock.Any(), userID).Return(nil, errors.New("db down"))
			},
			expectedErr: errors.New("any"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockStorage := NewMockStorageInterface(ctrl)
			mockKratos := NewMockKratosClientInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

			tt.setup(mockStorage, mockKratos)

			s := NewService(mockStorage, mockKratos, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), mockLogger)

			u, err := s.GetUser(context.Background(), userID)

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				if errors.Is(tt.expectedErr, ErrUserNotFound) && !errors.Is(err, ErrUserNotFound) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(u.Roles, tt.wantRoles) {
				t.Errorf("expected roles %v, got %v", tt.wantRoles, u.Roles)
			}
		})
	}
}

func TestService_GetUser_WithoutIdentityProvider(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().GetUser(gomock.Any(), "u1").Return(nil, storage.ErrNotFound)

	s := NewService(mockStorage, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), NewMockLoggerInterface(ctrl))

	if _, err := s.GetUser(context.Background(), "u1"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestService_ListRoles(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListUserRoles(gomock.Any(), "u1").Return([]roles.Role{roles.Superadmin}, nil)

	s := NewService(mockStorage, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), NewMockLoggerInterface(ctrl))

	rs, err := s.ListRoles(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rs) != 1 || rs[0] != roles.Superadmin {
		t.Errorf("unexpected roles %v", rs)
	}
}
