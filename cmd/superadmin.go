// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/brokerage-service/internal/authorization"
	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/storage"
	"github.com/canonical/brokerage-service/internal/tracing"
)

var superadminCmd = &cobra.Command{
	Use:   "superadmin",
	Short: "Grant or revoke the platform superadmin role",
	Long: `Superadmins cannot be invited, the role claim is written directly to the database.
When --fga-api-url is set the platform tuple is kept in sync in OpenFGA.`,
}

var grantSuperadminCmd = &cobra.Command{
	Use:   "grant [user-id]",
	Short: "Make a user superadmin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeSuperadmin(cmd, args[0], true)
	},
}

var revokeSuperadminCmd = &cobra.Command{
	Use:   "revoke [user-id]",
	Short: "Remove the superadmin role from a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeSuperadmin(cmd, args[0], false)
	},
}

func init() {
	for _, c := range []*cobra.Command{grantSuperadminCmd, revokeSuperadminCmd} {
		c.Flags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string, defaults to $DSN")
		c.Flags().String("fga-api-url", "", "The openfga API URL, the tuple is not written when empty")
		c.Flags().String("fga-api-token", "", "The openfga API token")
		c.Flags().String("fga-store-id", "", "The openfga store id")
		c.Flags().String("fga-model-id", "", "The openfga authorization model id")
		superadminCmd.AddCommand(c)
	}

	rootCmd.AddCommand(superadminCmd)
}

// superadminAuthority mirrors the claim into OpenFGA.
type superadminAuthority interface {
	AssignSuperadmin(ctx context.Context, userID string) error
	RemoveSuperadmin(ctx context.Context, userID string) error
}

func changeSuperadmin(cmd *cobra.Command, userID string, grant bool) error {
	ctx := cmd.Context()

	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		return fmt.Errorf("no DSN provided, use --dsn or $DSN")
	}

	logger := logging.NewLogger("error")
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor(fgaStoreName)

	dbClient, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 2, MinConns: 1}, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer dbClient.Close()

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authority superadminAuthority
	if apiURL, _ := cmd.Flags().GetString("fga-api-url"); apiURL != "" {
		token, _ := cmd.Flags().GetString("fga-api-token")
		storeID, _ := cmd.Flags().GetString("fga-store-id")
		modelID, _ := cmd.Flags().GetString("fga-model-id")

		fga, err := newFGAClient(apiURL, token, storeID, modelID, false)
		if err != nil {
			return err
		}
		authority = authorization.NewAuthorizer(fga, tracer, monitor, logger)
	}

	err = dbClient.WithTx(ctx, func(ctx context.Context) error {
		if grant {
			if err := s.AddRoleClaim(ctx, userID, roles.Superadmin); err != nil {
				return err
			}
		} else if err := s.RemoveRoleClaim(ctx, userID, roles.Superadmin); err != nil {
			return err
		}

		if authority == nil {
			return nil
		}

		if grant {
			return authority.AssignSuperadmin(ctx, userID)
		}
		return authority.RemoveSuperadmin(ctx, userID)
	})

	if err != nil {
		return fmt.Errorf("failed to update superadmin %s: %w", userID, err)
	}

	if grant {
		cmd.Printf("User %s is now superadmin\n", userID)
	} else {
		cmd.Printf("User %s is no longer superadmin\n", userID)
	}

	return nil
}
