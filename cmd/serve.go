// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/canonical/brokerage-service/internal/authorization"
	"github.com/canonical/brokerage-service/internal/config"
	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/events"
	"github.com/canonical/brokerage-service/internal/identity"
	"github.com/canonical/brokerage-service/internal/kratos"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/monitoring/prometheus"
	"github.com/canonical/brokerage-service/internal/openfga"
	"github.com/canonical/brokerage-service/internal/storage"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/pkg/admin"
	"github.com/canonical/brokerage-service/pkg/authentication"
	"github.com/canonical/brokerage-service/pkg/guard"
	"github.com/canonical/brokerage-service/pkg/session"
	"github.com/canonical/brokerage-service/pkg/status"
	"github.com/canonical/brokerage-service/pkg/web"
)

var envFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	serveCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before the environment is read")
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("brokerage-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	checks := map[string]status.Pinger{"database": dbClient}

	authorizer, authority := buildAuthorizer(specs, s, tracer, monitor, logger)

	cfg := web.Config{
		Storage:            s,
		DB:                 dbClient,
		Authz:              authorizer,
		Authority:          authority,
		Publisher:          events.NewNoopPublisher(),
		InvitationLifetime: specs.InvitationLifetime,
		Guard: guard.Config{
			Strict:       specs.GuardStrictActiveRole,
			FallbackPath: specs.GuardFallbackPath,
		},
		CORSOrigins:     specs.CORSAllowedOrigins,
		ReadinessChecks: checks,
	}

	if specs.KratosAdminURL != "" {
		cfg.Kratos = kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger)
	} else {
		logger.Info("Kratos admin URL not set, profiles are only created by the registration hook")
	}

	if specs.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		defer rdb.Close()

		cfg.Sessions = session.NewRedisStore(rdb, specs.SessionTTL)
		checks["redis"] = status.PingerFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		logger.Infof("Role selections stored in redis at %s", specs.RedisAddr)
	} else {
		cfg.Sessions = session.NewMemoryStore(specs.SessionTTL)
		logger.Info("Role selections stored in memory")
	}

	if specs.RabbitMQURL != "" {
		publisher, err := events.NewRabbitMQPublisher(specs.RabbitMQURL, tracer, monitor, logger)
		if err != nil {
			return err
		}
		defer publisher.Close()

		cfg.Publisher = publisher
		logger.Info("Invitation events published to rabbitmq")
	}

	if specs.AuthenticationEnabled {
		verifier, err := authentication.NewJWTAuthenticator(
			context.Background(),
			authentication.Config{
				Issuer:          specs.AuthenticationIssuer,
				JwksURL:         specs.AuthenticationJwksURL,
				AllowedSubjects: specs.AuthenticationAllowedSubjects,
				RequiredScope:   specs.AuthenticationRequiredScope,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %w", err)
		}

		cfg.Authenticate = authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate()
		logger.Info("JWT authentication is enabled")
	} else {
		cfg.Authenticate = identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware
		logger.Info("Trusting the identity proxy headers")
	}

	router := web.NewRouter(cfg, tracer, monitor, logger)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

// buildAuthorizer returns the tuple writer and the superadmin authority.
// Without OpenFGA the database is the authority.
func buildAuthorizer(specs *config.EnvSpec, s *storage.Storage, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*authorization.Authorizer, admin.AuthorityInterface) {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		authorizer := authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)
		return authorizer, s
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)
	authorizer := authorization.NewAuthorizer(ofga, tracer, monitor, logger)

	logger.Info("Authorization is enabled")
	if authorizer.ValidateModel(context.Background()) != nil {
		panic("Invalid authorization model provided")
	}

	return authorizer, authorizer
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
