// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package events publishes invitation lifecycle events.
package events

import (
	"context"
	"time"
)

type EventType string

const (
	InvitationAccepted EventType = "invitation.accepted"
	InvitationRejected EventType = "invitation.rejected"
)

type Event struct {
	Type         EventType `json:"type"`
	InvitationID string    `json:"invitation_id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Container    string    `json:"container,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

type PublisherInterface interface {
	Publish(ctx context.Context, e Event) error
}

type NoopPublisher struct{}

func (p *NoopPublisher) Publish(context.Context, Event) error {
	return nil
}

func NewNoopPublisher() *NoopPublisher {
	return new(NoopPublisher)
}
