// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package invitation runs the invitation workflow: listing, creation, acceptance and rejection.
package invitation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

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

const AlreadyMemberMessage = "you are already a member, the invitation has been marked as accepted"

type CreateRequest struct {
	Email        string  `json:"email" validate:"required,email"`
	Role         string  `json:"role" validate:"required"`
	ProjectID    *string `json:"project_id,omitempty" validate:"omitempty,uuid"`
	BrokerageID  *string `json:"brokerage_id,omitempty" validate:"omitempty,uuid"`
	SimulationID *string `json:"simulation_id,omitempty" validate:"omitempty,uuid"`
}

type AcceptResult struct {
	Invitation    *types.Invitation `json:"invitation"`
	Membership    *types.Membership `json:"membership,omitempty"`
	AlreadyMember bool              `json:"already_member"`
	Message       string            `json:"message"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	users     UserResolverInterface
	authz     AuthzInterface
	authority AuthorityInterface
	publisher events.PublisherInterface

	lifetime time.Duration
	validate *validator.Validate
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) currentUser(ctx context.Context, userID string) (*types.User, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	u, err := s.users.GetUser(ctx, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, ErrNotAuthenticated
	}

	if err != nil {
		return nil, fmt.Errorf("failed to resolve user: %w", err)
	}

	return u, nil
}

// ListPending returns the invitations addressed to the user that are neither accepted nor rejected.
func (s *Service) ListPending(ctx context.Context, userID string) ([]*View, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ListPending")
	defer span.End()

	u, err := s.currentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	invitations, err := s.storage.ListPendingInvitations(ctx, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}

	return s.views(invitations), nil
}

func (s *Service) ListSent(ctx context.Context, userID string, page db.Pagination) ([]*View, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.ListSent")
	defer span.End()

	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	invitations, err := s.storage.ListSentInvitations(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list sent invitations: %w", err)
	}

	return s.views(invitations), nil
}

func (s *Service) views(invitations []*types.Invitation) []*View {
	now := s.now()

	out := make([]*View, 0, len(invitations))
	for _, i := range invitations {
		out = append(out, NewView(i, now))
	}

	return out
}

// Create issues an invitation to exactly one container, for a role the inviter may grant there.
func (s *Service) Create(ctx context.Context, inviterID string, req *CreateRequest) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Create")
	defer span.End()

	if inviterID == "" {
		return nil, ErrNotAuthenticated
	}

	normalized := *req
	normalized.Email = strings.TrimSpace(req.Email)
	normalized.ProjectID = nonEmpty(req.ProjectID)
	normalized.BrokerageID = nonEmpty(req.BrokerageID)
	normalized.SimulationID = nonEmpty(req.SimulationID)
	req = &normalized

	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	role, err := roles.Parse(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if role.Global() {
		return nil, fmt.Errorf("%w: %s cannot be granted by invitation", ErrInvalidRequest, role)
	}

	i := &types.Invitation{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Role:         role,
		ProjectID:    req.ProjectID,
		BrokerageID:  req.BrokerageID,
		SimulationID: req.SimulationID,
		InviterID:    inviterID,
		ExpiresAt:    s.now().Add(s.lifetime),
	}

	if targets(i) != 1 {
		return nil, fmt.Errorf("%w: exactly one of project_id, brokerage_id or simulation_id is required", ErrInvalidRequest)
	}

	target, _ := i.Target()

	inviter, err := s.currentUser(ctx, inviterID)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(strings.TrimSpace(inviter.Email), i.Email) {
		s.logger.Security().AuthzFailure(inviterID, target.String())
		return nil, fmt.Errorf("%w: cannot invite yourself", ErrForbidden)
	}

	allowed, err := s.canInvite(ctx, target, inviterID, role)
	if err != nil {
		return nil, err
	}

	if !allowed {
		s.logger.Security().AuthzFailureNotEnoughPermissions(inviterID, target.String())
		return nil, ErrForbidden
	}

	created, err := s.storage.CreateInvitation(ctx, i)
	if errors.Is(err, storage.ErrForeignKeyViolation) || errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: unknown %s", ErrInvalidRequest, target.Kind)
	}

	if err != nil {
		return nil, writeError("invitation", err)
	}

	s.logger.Security().AdminAction(inviterID, "invite", target.String())

	return created, nil
}

// canInvite checks the inviter's roles on the target against the invited role, then the superadmin authority.
func (s *Service) canInvite(ctx context.Context, target types.Container, inviterID string, invited roles.Role) (bool, error) {
	held, err := s.storage.ContainerRoles(ctx, target, inviterID)
	if err != nil {
		return false, fmt.Errorf("failed to check membership: %w", err)
	}

	for _, r := range held {
		if CanGrant(r, invited) {
			return true, nil
		}
	}

	superadmin, err := s.authority.IsSuperadmin(ctx, inviterID)
	if err != nil {
		s.logger.Errorf("superadmin check failed for %s: %v", inviterID, err)
		return false, nil
	}

	return superadmin, nil
}

// pending loads invitation id on behalf of u, enforcing existence and addressee.
func (s *Service) pending(ctx context.Context, u *types.User, id string) (*types.Invitation, error) {
	i, err := s.storage.GetInvitation(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrInvitationNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	if !i.Pending() {
		return nil, ErrInvitationNotFound
	}

	if !strings.EqualFold(strings.TrimSpace(i.Email), strings.TrimSpace(u.Email)) {
		s.logger.Security().AuthzFailure(u.ID, "invitation:"+id)
		return nil, ErrEmailMismatch
	}

	return i, nil
}

// Accept turns the invitation into a membership of its target container.
// Accepting twice never creates a second membership.
func (s *Service) Accept(ctx context.Context, userID, id string) (*AcceptResult, error) {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Accept")
	defer span.End()

	u, err := s.currentUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	i, err := s.pending(ctx, u, id)
	if err != nil {
		return nil, err
	}

	now := s.now()

	if i.Expired(now) {
		return nil, ErrInvitationExpired
	}

	target, ok := i.Target()
	if !ok || i.Role.Global() {
		return nil, ErrNoTarget
	}

	member, err := s.storage.HasMembership(ctx, target, u.ID, i.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	result := &AcceptResult{Invitation: i}

	if member {
		result.AlreadyMember = true
		result.Message = AlreadyMemberMessage
	} else {
		m, err := s.storage.AddMembership(ctx, target, u.ID, i.Role)
		switch {
		case errors.Is(err, storage.ErrDuplicateKey):
			result.AlreadyMember = true
			result.Message = AlreadyMemberMessage
		case err != nil:
			return nil, writeError("membership", err)
		default:
			result.Membership = m
			result.Message = fmt.Sprintf("you joined as %s", i.Role.DisplayName())
		}
	}

	if !result.AlreadyMember {
		if err := s.storage.AddRoleClaim(ctx, u.ID, i.Role); err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			return nil, writeError("role claim", err)
		}
	}

	// existing members may lack the tuple
	if err := s.authz.AssignMembership(ctx, target, u.ID, i.Role); err != nil {
		return nil, writeError("authorization", err)
	}

	if !result.AlreadyMember {
		s.logger.Security().UserMembershipCreated(u.ID, target.String(), i.Role.String())
	}

	if err := s.storage.MarkInvitationAccepted(ctx, i.ID, now); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, writeError("accepted_at", err)
	}

	i.AcceptedAt = &now

	s.transition(ctx, events.Event{
		Type:         events.InvitationAccepted,
		InvitationID: i.ID,
		UserID:       u.ID,
		Email:        i.Email,
		Role:         i.Role.String(),
		Container:    target.String(),
		OccurredAt:   now,
	})

	return result, nil
}

// Reject deletes the invitation, there is no declined state to come back from.
func (s *Service) Reject(ctx context.Context, userID, id string) error {
	ctx, span := s.tracer.Start(ctx, "invitation.Service.Reject")
	defer span.End()

	u, err := s.currentUser(ctx, userID)
	if err != nil {
		return err
	}

	i, err := s.pending(ctx, u, id)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteInvitation(ctx, i.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return writeError("invitation deletion", err)
	}

	s.logger.Security().UserInvitationDeleted(u.ID, i.ID)

	e := events.Event{
		Type:         events.InvitationRejected,
		InvitationID: i.ID,
		UserID:       u.ID,
		Email:        i.Email,
		Role:         i.Role.String(),
		OccurredAt:   s.now(),
	}
	if target, ok := i.Target(); ok {
		e.Container = target.String()
	}

	s.transition(ctx, e)

	return nil
}

// transition records a terminal state, delivery failures are logged only.
func (s *Service) transition(ctx context.Context, e events.Event) {
	outcome := strings.TrimPrefix(string(e.Type), "invitation.")
	if err := s.monitor.IncInvitationTransition(map[string]string{"outcome": outcome}); err != nil {
		s.logger.Debugf("failed to count invitation transition: %v", err)
	}

	if err := s.publisher.Publish(ctx, e); err != nil {
		s.logger.Errorf("failed to publish %s for invitation %s: %v", e.Type, e.InvitationID, err)
	}
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}

	v := strings.TrimSpace(*s)
	return &v
}

func targets(i *types.Invitation) int {
	n := 0
	for _, ref := range []*string{i.ProjectID, i.BrokerageID, i.SimulationID} {
		if ref != nil {
			n++
		}
	}

	return n
}

func NewService(
	storage StorageInterface,
	users UserResolverInterface,
	authz AuthzInterface,
	authority AuthorityInterface,
	publisher events.PublisherInterface,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.users = users
	s.authz = authz
	s.authority = authority
	s.publisher = publisher

	s.lifetime = lifetime
	s.validate = validator.New(validator.WithRequiredStructEnabled())
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
