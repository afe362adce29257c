// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

type JWTVerifier struct {
	verifier        *oidc.IDTokenVerifier
	allowedSubjects []string
	requiredScope   string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	var c claims
	if err := token.Claims(&c); err != nil {
		v.logger.Debugf("failed to extract claims: %v", err)
		return nil, err
	}

	if !v.allowed(c) {
		v.logger.Security().AuthzFailure(c.Subject, "jwt_api_access")
		return nil, fmt.Errorf("unauthorized: missing required scope or subject not allowed")
	}

	return &Principal{Subject: c.Subject, SessionID: c.SessionID}, nil
}

type claims struct {
	Subject   string   `json:"sub"`
	SessionID string   `json:"sid"`
	Scope     string   `json:"scope"`
	Scopes    []string `json:"scp"`
}

// allowed grants an allow-listed subject or a token carrying the required scope.
// With neither configured every token is refused.
func (v *JWTVerifier) allowed(c claims) bool {
	if slices.Contains(v.allowedSubjects, c.Subject) {
		return true
	}

	if v.requiredScope == "" {
		return false
	}

	return slices.Contains(strings.Fields(c.Scope), v.requiredScope) || slices.Contains(c.Scopes, v.requiredScope)
}

func NewJWTVerifier(
	provider ProviderInterface,
	issuer string,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := &JWTVerifier{
		allowedSubjects: allowedSubjects,
		requiredScope:   requiredScope,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}

	v.verifier = provider.Verifier(verifierConfig)

	return v
}

func NewJWTVerifierDirect(
	verifier *oidc.IDTokenVerifier,
	allowedSubjects []string,
	requiredScope string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	return &JWTVerifier{
		verifier:        verifier,
		allowedSubjects: allowedSubjects,
		requiredScope:   requiredScope,
		tracer:          tracer,
		monitor:         monitor,
		logger:          logger,
	}
}
