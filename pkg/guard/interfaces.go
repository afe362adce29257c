// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package guard

import (
	"context"

	"github.com/canonical/brokerage-service/internal/roles"
)

type GuardInterface interface {
	Evaluate(ctx context.Context, allowed []roles.Role, fallback string) Decision
}
