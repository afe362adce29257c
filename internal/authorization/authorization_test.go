// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	fga "github.com/openfga/go-sdk"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/brokerage-service/internal/openfga"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func setupTracer(mockTracer *MockTracingInterface, names ...string) {
	for _, name := range names {
		mockTracer.EXPECT().Start(gomock.Any(), name).
			Return(context.Background(), trace.SpanFromContext(context.Background()))
	}
}

func TestAuthorizer_Check(t *testing.T) {
	user := "user:123"
	relation := "member"
	object := "brokerage:456"
	contextualTuples := []openfga.Tuple{*openfga.NewTuple("user:789", "brokerage_owner", "brokerage:456")}

	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(true, nil)
			},
			expectedResult: true,
		},
		{
			name: "success - not allowed",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, nil)
			},
			expectedResult: false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), user, relation, object, contextualTuples).Return(false, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			setupTracer(mockTracer, "authorization.Authorizer.Check")
			tc.setupMocks(mockClient)

			result, err := a.Check(context.Background(), user, relation, object, contextualTuples...)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_IsSuperadmin(t *testing.T) {
	testCases := []struct {
		name     string
		allowed  bool
		err      error
		expected bool
	}{
		{name: "superadmin", allowed: true, expected: true},
		{name: "not superadmin", allowed: false, expected: false},
		{name: "backend error", err: errors.New("boom"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			setupTracer(mockTracer, "authorization.Authorizer.IsSuperadmin", "authorization.Authorizer.Check")
			mockClient.EXPECT().Check(gomock.Any(), "user:u1", SUPERADMIN_RELATION, "platform:global").Return(tc.allowed, tc.err)

			ok, err := a.IsSuperadmin(context.Background(), "u1")
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
			if (err != nil) != (tc.err != nil) {
				t.Errorf("expected error %v, got %v", tc.err, err)
			}
		})
	}
}

func TestAuthorizer_AssignSuperadmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	a := NewAuthorizer(mockClient, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	setupTracer(mockTracer, "authorization.Authorizer.AssignSuperadmin", "authorization.Authorizer.RemoveSuperadmin")
	mockClient.EXPECT().WriteTuple(gomock.Any(), "user:u1", "superadmin", "platform:global").Return(nil)
	mockClient.EXPECT().DeleteTuple(gomock.Any(), "user:u1", "superadmin", "platform:global").Return(nil)

	if err := a.AssignSuperadmin(context.Background(), "u1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := a.RemoveSuperadmin(context.Background(), "u1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthorizer_AssignMembership(t *testing.T) {
	project := types.Container{Kind: types.ContainerProject, ID: "p1"}

	testCases := []struct {
		name        string
		role        roles.Role
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr bool
	}{
		{
			name: "writes role relation",
			role: roles.MortgageApplicant,
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:u1", "mortgage_applicant", "project:p1").Return(false, nil)
				mockClient.EXPECT().WriteTuple(gomock.Any(), "user:u1", "mortgage_applicant", "project:p1").Return(nil)
			},
		},
		{
			name: "existing relation is not written again",
			role: roles.MortgageApplicant,
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:u1", "mortgage_applicant", "project:p1").Return(true, nil)
			},
		},
		{
			name: "propagates check error",
			role: roles.RealEstateAgent,
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:u1", "real_estate_agent", "project:p1").Return(false, errors.New("boom"))
			},
			expectedErr: true,
		},
		{
			name: "propagates client error",
			role: roles.RealEstateAgent,
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:u1", "real_estate_agent", "project:p1").Return(false, nil)
				mockClient.EXPECT().WriteTuple(gomock.Any(), "user:u1", "real_estate_agent", "project:p1").Return(errors.New("boom"))
			},
			expectedErr: true,
		},
		{
			name:        "rejects global role",
			role:        roles.Superadmin,
			setupMocks:  func(*MockAuthzClientInterface) {},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			setupTracer(mockTracer, "authorization.Authorizer.AssignMembership")
			tc.setupMocks(mockClient)

			err := a.AssignMembership(context.Background(), project, "u1", tc.role)
			if (err != nil) != tc.expectedErr {
				t.Errorf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizer_RemoveMembership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	a := NewAuthorizer(mockClient, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	setupTracer(mockTracer, "authorization.Authorizer.RemoveMembership")
	mockClient.EXPECT().DeleteTuple(gomock.Any(), "user:u1", "brokerage_owner", "brokerage:b1").Return(nil)

	err := a.RemoveMembership(context.Background(), types.Container{Kind: types.ContainerBrokerage, ID: "b1"}, "u1", roles.BrokerageOwner)
	if err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthorizer_CheckContainerAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)

	a := NewAuthorizer(mockClient, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

	setupTracer(mockTracer, "authorization.Authorizer.CheckContainerAccess", "authorization.Authorizer.Check")
	mockClient.EXPECT().Check(gomock.Any(), "user:u1", MEMBER_RELATION, "simulation:s1").Return(true, nil)

	ok, err := a.CheckContainerAccess(context.Background(), types.Container{Kind: types.ContainerSimulation, ID: "s1"}, "u1")
	if err != nil || !ok {
		t.Errorf("expected access, got %v %v", ok, err)
	}
}

func TestAuthorizer_ValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*MockAuthzClientInterface)
		expectedErr error
	}{
		{
			name: "model matches",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name: "model differs",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			expectedErr: ErrInvalidAuthModel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))

			setupTracer(mockTracer, "authorization.Authorizer.ValidateModel")
			tc.setupMocks(mockClient)

			if err := a.ValidateModel(context.Background()); !errors.Is(err, tc.expectedErr) {
				t.Errorf("expected %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestAuthorizationModelProvider(t *testing.T) {
	model := NewAuthorizationModelProvider("v0").GetModel()
	if model == nil {
		t.Fatal("expected the v0 model to load")
	}

	if model.SchemaVersion != "1.1" {
		t.Errorf("unexpected schema version %s", model.SchemaVersion)
	}

	defs := map[string]fga.TypeDefinition{}
	for _, td := range model.TypeDefinitions {
		defs[td.Type] = td
	}

	for _, name := range []string{"user", "platform", "brokerage", "project", "simulation"} {
		if _, ok := defs[name]; !ok {
			t.Errorf("missing type %s", name)
		}
	}

	brokerage := defs["brokerage"]
	relations := brokerage.GetRelations()
	for _, r := range roles.All() {
		if r.Global() {
			continue
		}
		if _, ok := relations[r.String()]; !ok {
			t.Errorf("brokerage is missing relation %s", r)
		}
	}
	if _, ok := relations[MEMBER_RELATION]; !ok {
		t.Error("brokerage is missing the member relation")
	}

	if NewAuthorizationModelProvider("v9").GetModel() != nil {
		t.Error("unknown version should not load")
	}
}
