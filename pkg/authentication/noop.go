// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
)

type NoopVerifier struct{}

func NewNoopVerifier() *NoopVerifier {
	return &NoopVerifier{}
}

// VerifyToken treats the raw token as the user ID, for local development only.
func (n *NoopVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("empty token")
	}
	return &Principal{Subject: rawToken}, nil
}
