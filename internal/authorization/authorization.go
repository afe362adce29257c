// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/openfga"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model := NewAuthorizationModelProvider("v0").GetModel()
	if model == nil {
		return ErrInvalidAuthModel
	}

	eq, err := a.client.CompareModel(ctx, *model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

// IsSuperadmin checks the superadmin relation on the platform object.
func (a *Authorizer) IsSuperadmin(ctx context.Context, userId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsSuperadmin")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), SUPERADMIN_RELATION, PlatformTuple())
}

func (a *Authorizer) AssignSuperadmin(ctx context.Context, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignSuperadmin")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), SUPERADMIN_RELATION, PlatformTuple())
}

func (a *Authorizer) RemoveSuperadmin(ctx context.Context, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveSuperadmin")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), SUPERADMIN_RELATION, PlatformTuple())
}

// AssignMembership writes the role relation of the user on the container.
// It is a no-op when the relation already holds, so it is safe to repeat.
func (a *Authorizer) AssignMembership(ctx context.Context, c types.Container, userId string, role roles.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignMembership")
	defer span.End()

	if role.Global() {
		return fmt.Errorf("role %s cannot be scoped to %s", role, c)
	}

	user, object := UserTuple(userId), ContainerTuple(c)

	exists, err := a.client.Check(ctx, user, role.String(), object)
	if err != nil {
		return err
	}

	if exists {
		return nil
	}

	return a.client.WriteTuple(ctx, user, role.String(), object)
}

func (a *Authorizer) RemoveMembership(ctx context.Context, c types.Container, userId string, role roles.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveMembership")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), role.String(), ContainerTuple(c))
}

func (a *Authorizer) CheckContainerAccess(ctx context.Context, c types.Container, userId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckContainerAccess")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), MEMBER_RELATION, ContainerTuple(c))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
