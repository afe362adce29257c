// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
)

var invitationColumns = []string{
	"i.id::text",
	"i.email",
	"i.role::text",
	"i.project_id::text",
	"i.brokerage_id::text",
	"i.simulation_id::text",
	"p.name",
	"i.inviter_id::text",
	"COALESCE(NULLIF(trim(u.first_name || ' ' || u.last_name), ''), u.email, '')",
	"i.created_at",
	"i.expires_at",
	"i.accepted_at",
}

type rowScanner interface {
	Scan(...any) error
}

func scanInvitation(row rowScanner) (*types.Invitation, error) {
	var (
		i    types.Invitation
		role string
	)

	err := row.Scan(
		&i.ID, &i.Email, &role,
		&i.ProjectID, &i.BrokerageID, &i.SimulationID, &i.ProjectName,
		&i.InviterID, &i.InviterName,
		&i.CreatedAt, &i.ExpiresAt, &i.AcceptedAt,
	)
	if err != nil {
		return nil, err
	}

	r, err := roles.Parse(role)
	if err != nil {
		return nil, err
	}
	i.Role = r

	return &i, nil
}

func (s *Storage) selectInvitations(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(invitationColumns...).
		From("invitations i").
		LeftJoin("projects p ON p.id = i.project_id").
		LeftJoin("users u ON u.id = i.inviter_id")
}

func (s *Storage) GetInvitation(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInvitation")
	defer span.End()

	i, err := scanInvitation(
		s.selectInvitations(ctx).
			Where(sq.Eq{"i.id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || IsInvalidInput(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return i, nil
}

// ListPendingInvitations returns unaccepted invitations addressed to email, expired ones included.
func (s *Storage) ListPendingInvitations(ctx context.Context, email string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvitations")
	defer span.End()

	query := s.selectInvitations(ctx).
		Where(sq.Expr("lower(i.email) = lower(?)", email)).
		Where(sq.Eq{"i.accepted_at": nil}).
		OrderBy("i.created_at DESC")

	return s.listInvitations(ctx, query)
}

func (s *Storage) ListSentInvitations(ctx context.Context, inviterID string, page db.Pagination) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListSentInvitations")
	defer span.End()

	query := s.selectInvitations(ctx).
		Where(sq.Eq{"i.inviter_id": inviterID}).
		OrderBy("i.created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit())

	return s.listInvitations(ctx, query)
}

func (s *Storage) listInvitations(ctx context.Context, query sq.SelectBuilder) ([]*types.Invitation, error) {
	rows, err := query.QueryContext(ctx)
	if err != nil {
		if IsInvalidInput(err) {
			return []*types.Invitation{}, nil
		}
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	invitations := make([]*types.Invitation, 0)
	for rows.Next() {
		i, err := scanInvitation(rows)
		if err != nil {
			if errors.Is(err, roles.ErrUnknownRole) {
				s.logger.Warnf("skipping invitation with unknown role: %v", err)
				continue
			}
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, i *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	out := *i
	out.ID = id.String()

	err = s.db.Statement(ctx).
		Insert("invitations").
		Columns("id", "email", "role", "project_id", "brokerage_id", "simulation_id", "inviter_id", "expires_at").
		Values(out.ID, out.Email, out.Role.String(), out.ProjectID, out.BrokerageID, out.SimulationID, out.InviterID, out.ExpiresAt).
		Suffix("RETURNING created_at").
		QueryRowContext(ctx).
		Scan(&out.CreatedAt)

	if err != nil {
		if sentinel := classify(err); sentinel != nil {
			return nil, fmt.Errorf("failed to create invitation: %w", sentinel)
		}
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return &out, nil
}

// MarkInvitationAccepted sets accepted_at once, ErrNotFound when missing or already accepted.
func (s *Storage) MarkInvitationAccepted(ctx context.Context, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInvitationAccepted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invitations").
		Set("accepted_at", at).
		Where(sq.Eq{"id": id, "accepted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invitation accepted: %w", err)
	}

	return expectOneRow(res)
}

func (s *Storage) DeleteInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvitation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invitations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		if IsInvalidInput(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete invitation: %w", err)
	}

	return expectOneRow(res)
}

type rowsAffected interface {
	RowsAffected() (int64, error)
}

func expectOneRow(res rowsAffected) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
