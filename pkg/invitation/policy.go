// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"github.com/canonical/brokerage-service/internal/roles"
)

// CanGrant reports whether a member holding inviter on a container may invite someone to it as invited.
// Superadmins are checked separately and may grant every invitable role.
func CanGrant(inviter, invited roles.Role) bool {
	if invited.Global() {
		return false
	}

	switch inviter {
	case roles.BrokerageOwner:
		return true
	case roles.BrokerAssistant:
		return invited != roles.BrokerageOwner
	default:
		return false
	}
}
