// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

// membershipTable maps a container kind to its membership relation and foreign key column.
func membershipTable(kind types.ContainerKind) (string, string, error) {
	switch kind {
	case types.ContainerBrokerage:
		return "brokerage_members", "brokerage_id", nil
	case types.ContainerProject:
		return "project_members", "project_id", nil
	case types.ContainerSimulation:
		return "simulation_participants", "simulation_id", nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnknownContainer, kind)
}

func (s *Storage) HasMembership(ctx context.Context, c types.Container, userID string, role roles.Role) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasMembership")
	defer span.End()

	return s.membershipExists(ctx, c, sq.Eq{"user_id": userID, "role": role.String()})
}

// ContainerRoles lists the roles the user holds on the container, in catalog order.
func (s *Storage) ContainerRoles(ctx context.Context, c types.Container, userID string) ([]roles.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ContainerRoles")
	defer span.End()

	table, column, err := membershipTable(c.Kind)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Statement(ctx).
		Select("role::text").
		From(table).
		Where(sq.Eq{column: c.ID, "user_id": userID}).
		QueryContext(ctx)

	if err != nil {
		if IsInvalidInput(err) {
			return []roles.Role{}, nil
		}
		return nil, fmt.Errorf("failed to list roles on %s: %w", c, err)
	}
	defer rows.Close()

	held := make([]roles.Role, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}

		r, err := roles.Parse(raw)
		if err != nil {
			s.logger.Warnf("skipping role %q of user %s on %s: %v", raw, userID, c, err)
			continue
		}
		held = append(held, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles.Normalize(held), nil
}

func (s *Storage) membershipExists(ctx context.Context, c types.Container, filter sq.Eq) (bool, error) {
	table, column, err := membershipTable(c.Kind)
	if err != nil {
		return false, err
	}

	var exists bool
	err = s.db.Statement(ctx).
		Select("count(*) > 0").
		From(table).
		Where(sq.Eq{column: c.ID}).
		Where(filter).
		QueryRowContext(ctx).
		Scan(&exists)

	if err != nil {
		if IsInvalidInput(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check membership on %s: %w", c, err)
	}

	return exists, nil
}

func (s *Storage) AddMembership(ctx context.Context, c types.Container, userID string, role roles.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMembership")
	defer span.End()

	table, column, err := membershipTable(c.Kind)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	m := &types.Membership{ID: id.String(), Container: c, UserID: userID, Role: role}
	err = s.db.Statement(ctx).
		Insert(table).
		Columns("id", column, "user_id", "role").
		Values(m.ID, c.ID, userID, role.String()).
		Suffix("ON CONFLICT DO NOTHING RETURNING created_at").
		QueryRowContext(ctx).
		Scan(&m.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to add membership on %s: %w", c, ErrDuplicateKey)
	}

	if err != nil {
		if sentinel := classify(err); sentinel != nil {
			return nil, fmt.Errorf("failed to add membership on %s: %w", c, sentinel)
		}
		return nil, fmt.Errorf("failed to add membership: %w", err)
	}

	return m, nil
}
