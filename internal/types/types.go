// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/canonical/brokerage-service/internal/roles"
)

type ContainerKind string

const (
	ContainerProject    ContainerKind = "project"
	ContainerBrokerage  ContainerKind = "brokerage"
	ContainerSimulation ContainerKind = "simulation"
)

// Container is the brokerage, project or simulation a membership is scoped to.
type Container struct {
	Kind ContainerKind
	ID   string
}

func (c Container) String() string {
	return string(c.Kind) + ":" + c.ID
}

type User struct {
	ID        string       `db:"id" json:"id"`
	Email     string       `db:"email" json:"email"`
	FirstName string       `db:"first_name" json:"first_name"`
	LastName  string       `db:"last_name" json:"last_name"`
	Roles     []roles.Role `json:"roles"`
}

// HasRole reports whether the user holds r.
func (u *User) HasRole(r roles.Role) bool {
	if u == nil {
		return false
	}

	for _, held := range u.Roles {
		if held == r {
			return true
		}
	}

	return false
}

type Membership struct {
	ID        string     `db:"id" json:"id"`
	Container Container  `db:"-" json:"-"`
	UserID    string     `db:"user_id" json:"user_id"`
	Role      roles.Role `db:"role" json:"role"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type RoleClaim struct {
	UserID string     `db:"user_id" json:"user_id"`
	Role   roles.Role `db:"role" json:"role"`
}

type Invitation struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	Role         roles.Role `db:"role" json:"role"`
	ProjectID    *string    `db:"project_id" json:"project_id,omitempty"`
	BrokerageID  *string    `db:"brokerage_id" json:"brokerage_id,omitempty"`
	SimulationID *string    `db:"simulation_id" json:"simulation_id,omitempty"`
	ProjectName  *string    `db:"project_name" json:"project_name,omitempty"`
	InviterID    string     `db:"inviter_id" json:"inviter_id"`
	InviterName  string     `db:"inviter_name" json:"inviter_name"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	ExpiresAt    time.Time  `db:"expires_at" json:"expires_at"`
	AcceptedAt   *time.Time `db:"accepted_at" json:"accepted_at,omitempty"`
}

// Target returns the container the invitation grants access to.
// When more than one reference is set the project wins, then the brokerage.
func (i *Invitation) Target() (Container, bool) {
	switch {
	case i.ProjectID != nil && *i.ProjectID != "":
		return Container{Kind: ContainerProject, ID: *i.ProjectID}, true
	case i.BrokerageID != nil && *i.BrokerageID != "":
		return Container{Kind: ContainerBrokerage, ID: *i.BrokerageID}, true
	case i.SimulationID != nil && *i.SimulationID != "":
		return Container{Kind: ContainerSimulation, ID: *i.SimulationID}, true
	}

	return Container{}, false
}

func (i *Invitation) Pending() bool {
	return i.AcceptedAt == nil
}

func (i *Invitation) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}
