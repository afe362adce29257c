// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"fmt"
	"math"
	"time"

	"github.com/canonical/brokerage-service/internal/types"
)

const ExpiresSoon = "expires soon"

// DaysRemaining is the number of started days until expiry, negative once expired.
func DaysRemaining(expiresAt, now time.Time) int {
	return int(math.Ceil(expiresAt.Sub(now).Hours() / 24))
}

// ExpiryLabel never renders a negative count.
func ExpiryLabel(days int) string {
	switch {
	case days <= 0:
		return ExpiresSoon
	case days == 1:
		return "expires in 1 day"
	}

	return fmt.Sprintf("expires in %d days", days)
}

// View is an invitation as listed to users.
type View struct {
	*types.Invitation

	DaysRemaining int    `json:"days_remaining"`
	ExpiryLabel   string `json:"expiry_label"`
	Expired       bool   `json:"expired"`
}

func NewView(i *types.Invitation, now time.Time) *View {
	days := DaysRemaining(i.ExpiresAt, now)

	return &View{
		Invitation:    i,
		DaysRemaining: max(days, 0),
		ExpiryLabel:   ExpiryLabel(days),
		Expired:       i.Expired(now),
	}
}
