// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) GetUser(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id::text", "email", "first_name", "last_name").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || IsInvalidInput(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// UpsertUser inserts the profile or refreshes email and names of an existing one.
func (s *Storage) UpsertUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertUser")
	defer span.End()

	var out types.User
	err := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "first_name", "last_name").
		Values(u.ID, u.Email, u.FirstName, u.LastName).
		Suffix("ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, first_name = EXCLUDED.first_name, last_name = EXCLUDED.last_name").
		Suffix("RETURNING id::text, email, first_name, last_name").
		QueryRowContext(ctx).
		Scan(&out.ID, &out.Email, &out.FirstName, &out.LastName)

	if err != nil {
		if sentinel := classify(err); sentinel != nil {
			return nil, fmt.Errorf("failed to upsert user %s: %w", u.ID, sentinel)
		}
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &out, nil
}

// ListUserRoles returns the superadmin claim plus every membership role, in catalog order.
// Claims other than superadmin in user_roles do not grant a role on their own.
func (s *Storage) ListUserRoles(ctx context.Context, userID string) ([]roles.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUserRoles")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("role::text").
		From("user_roles").
		Where(sq.Eq{"user_id": userID, "role": roles.Superadmin.String()})

	for _, kind := range []types.ContainerKind{types.ContainerBrokerage, types.ContainerProject, types.ContainerSimulation} {
		table, _, _ := membershipTable(kind)
		query = query.Suffix(fmt.Sprintf("UNION SELECT role::text FROM %s WHERE user_id = ?", table), userID)
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		if IsInvalidInput(err) {
			return []roles.Role{}, nil
		}
		return nil, fmt.Errorf("failed to list user roles: %w", err)
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
			s.logger.Warnf("skipping role %q of user %s: %v", raw, userID, err)
			continue
		}
		held = append(held, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles.Normalize(held), nil
}

// IsSuperadmin asks the database authority function.
func (s *Storage) IsSuperadmin(ctx context.Context, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IsSuperadmin")
	defer span.End()

	var ok bool
	err := s.db.Statement(ctx).
		Select().
		Column(sq.Expr("is_superadmin(?)", userID)).
		QueryRowContext(ctx).
		Scan(&ok)

	if err != nil {
		if IsInvalidInput(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check superadmin: %w", err)
	}

	return ok, nil
}

// AddRoleClaim records a global role claim, an existing claim is left untouched.
func (s *Storage) AddRoleClaim(ctx context.Context, userID string, role roles.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddRoleClaim")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, role.String()).
		Suffix("ON CONFLICT (user_id, role) DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		if sentinel := classify(err); sentinel != nil {
			return fmt.Errorf("failed to add role claim: %w", sentinel)
		}
		return fmt.Errorf("failed to add role claim: %w", err)
	}

	return nil
}

// RemoveRoleClaim drops a global role claim, ErrNotFound when the user never held it.
func (s *Storage) RemoveRoleClaim(ctx context.Context, userID string, role roles.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveRoleClaim")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("user_roles").
		Where(sq.Eq{"user_id": userID, "role": role.String()}).
		ExecContext(ctx)

	if err != nil {
		if IsInvalidInput(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to remove role claim: %w", err)
	}

	return expectOneRow(res)
}
