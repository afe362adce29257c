// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/brokerage-service/internal/types"
)

const (
	SUPERADMIN_RELATION = "superadmin"
	MEMBER_RELATION     = "member"

	PLATFORM_ID = "global"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func PlatformTuple() string {
	return "platform:" + PLATFORM_ID
}

// ContainerTuple renders a container as an openfga object, e.g. brokerage:1234.
func ContainerTuple(c types.Container) string {
	return c.String()
}
