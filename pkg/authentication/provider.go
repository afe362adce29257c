// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coreos/go-oidc/v3/oidc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var otelHTTPClient = &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}

// verifierConfig accepts tokens minted for any client of the issuer.
var verifierConfig = &oidc.Config{SkipClientIDCheck: true}

func oidcContext(ctx context.Context) context.Context {
	return oidc.ClientContext(ctx, otelHTTPClient)
}

// NewProvider discovers the issuer through its well-known configuration.
func NewProvider(ctx context.Context, issuer string) (*oidc.Provider, error) {
	provider, err := oidc.NewProvider(oidcContext(ctx), issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover %s: %w", issuer, err)
	}

	return provider, nil
}

// NewProviderWithJWKS skips discovery and verifies against the remote key set directly.
func NewProviderWithJWKS(ctx context.Context, issuer, jwksURL string) (*oidc.IDTokenVerifier, error) {
	if jwksURL == "" {
		return nil, fmt.Errorf("jwks url is required")
	}

	keySet := oidc.NewRemoteKeySet(oidcContext(ctx), jwksURL)

	return oidc.NewVerifier(issuer, keySet, verifierConfig), nil
}
