// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/brokerage-service/internal/openfga"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ValidateModel(context.Context) error

	IsSuperadmin(context.Context, string) (bool, error)
	AssignSuperadmin(context.Context, string) error
	RemoveSuperadmin(context.Context, string) error

	AssignMembership(context.Context, types.Container, string, roles.Role) error
	RemoveMembership(context.Context, types.Container, string, roles.Role) error
	CheckContainerAccess(context.Context, types.Container, string) (bool, error)
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
}
