// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// KratosIdentity is the body the after-registration web hook posts.
type KratosIdentity struct {
	ID     string         `json:"id"`
	Traits map[string]any `json:"traits"`
}

type TokenHookResponse struct {
	Session TokenHookSession `json:"session"`
}

// TokenHookSession holds the claims merged into the issued tokens.
type TokenHookSession struct {
	IDToken     map[string]any `json:"id_token,omitempty"`
	AccessToken map[string]any `json:"access_token,omitempty"`
}
