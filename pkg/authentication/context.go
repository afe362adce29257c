// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// SessionIDHeader lets clients without a sid claim pin their role selection.
const SessionIDHeader = "X-Session-Id"

// Principal is the authenticated caller.
type Principal struct {
	Subject   string
	SessionID string
}

type contextKey struct{}

var principalContextKey = contextKey{}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	if !ok || p == nil || p.Subject == "" {
		return nil, false
	}
	return p, true
}

// WithUserID stores a principal whose session is the user itself.
func WithUserID(ctx context.Context, userID string) context.Context {
	return WithPrincipal(ctx, &Principal{Subject: userID, SessionID: userID})
}

// GetUserID returns the authenticated subject, false when the request is anonymous.
func GetUserID(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return "", false
	}
	return p.Subject, true
}

// GetSessionID falls back to the subject when no session was negotiated.
func GetSessionID(ctx context.Context) (string, bool) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return "", false
	}
	if p.SessionID == "" {
		return p.Subject, true
	}
	return p.SessionID, true
}
