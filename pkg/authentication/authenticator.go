// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

type Config struct {
	Issuer          string
	JwksURL         string
	AllowedSubjects []string
	RequiredScope   string
}

// NewJWTAuthenticator builds a verifier from a static JWKS URL when set, OIDC discovery otherwise.
func NewJWTAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer is required for JWT authentication")
	}

	if cfg.JwksURL != "" {
		logger.Infof("using JWKS URL %s for issuer %s", cfg.JwksURL, cfg.Issuer)
		idTokenVerifier, err := NewProviderWithJWKS(ctx, cfg.Issuer, cfg.JwksURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create JWKS verifier: %w", err)
		}
		return NewJWTVerifierDirect(idTokenVerifier, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
	}

	logger.Infof("using OIDC discovery for issuer %s", cfg.Issuer)
	provider, err := NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return NewJWTVerifier(provider, cfg.Issuer, cfg.AllowedSubjects, cfg.RequiredScope, tracer, monitor, logger), nil
}
