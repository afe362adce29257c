// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	KratosAdminURL string `envconfig:"kratos_admin_url"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled         bool     `envconfig:"authentication_enabled" default:"false"`
	AuthenticationIssuer          string   `envconfig:"authentication_issuer"`
	AuthenticationJwksURL         string   `envconfig:"authentication_jwks_url"`
	AuthenticationAllowedSubjects []string `envconfig:"authentication_allowed_subjects"`
	AuthenticationRequiredScope   string   `envconfig:"authentication_required_scope" default:"brokerage:api"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:"http"`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	SessionTTL    time.Duration `envconfig:"session_ttl" default:"12h"`
	RedisAddr     string        `envconfig:"redis_addr"`
	RedisPassword string        `envconfig:"redis_password"`
	RedisDB       int           `envconfig:"redis_db" default:"0"`

	RabbitMQURL string `envconfig:"rabbitmq_url"`

	GuardStrictActiveRole bool   `envconfig:"guard_strict_active_role" default:"false"`
	GuardFallbackPath     string `envconfig:"guard_fallback_path" default:"/dashboard"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
