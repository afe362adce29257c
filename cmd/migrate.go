// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/brokerage-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down [version]|status|check]",
	Short: "Run database migrations",
	Long:  `Apply, roll back or inspect the schema holding users, role claims, memberships and invitations`,
	Args:  migrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		version := int64(-1)
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		format, _ := cmd.Flags().GetString("format")

		return migrate(cmd, dsn, command, format, version)
	},
}

func migrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}

	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "status", "check":
		if len(args) == 2 {
			return fmt.Errorf("%q takes no version argument", args[0])
		}
	case "down":
		if len(args) == 2 {
			if v, err := strconv.Atoi(args[1]); err != nil || v < 0 {
				return fmt.Errorf("invalid version number: %q", args[1])
			}
		}
	default:
		return fmt.Errorf("invalid migration command: %q", args[0])
	}

	return nil
}

func init() {
	migrateCmd.Flags().String("dsn", os.Getenv("DSN"), "PostgreSQL DSN connection string, defaults to $DSN")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("no DSN provided, use --dsn or $DSN")
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return db, nil
}

func migrate(cmd *cobra.Command, dsn, command, format string, version int64) error {
	ctx := cmd.Context()

	db, err := openDB(ctx, dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	var opts []goose.ProviderOption
	if format == "json" {
		opts = append(opts, goose.WithLogger(goose.NopLogger()))
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.EmbedMigrations, opts...)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	out := cmd.OutOrStdout()

	switch command {
	case "down":
		return migrateDown(ctx, provider, version, format, out)
	case "status":
		return migrationStatus(ctx, provider, format, out)
	case "check":
		return migrationCheck(ctx, provider, format, out)
	default:
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		return reportMigrations(out, format, results)
	}
}

func reportMigrations(out io.Writer, format string, results []*goose.MigrationResult) error {
	if format == "json" {
		if results == nil {
			results = []*goose.MigrationResult{}
		}
		return json.NewEncoder(out).Encode(map[string]any{"applied": results})
	}

	for _, r := range results {
		if r == nil || r.Source == nil {
			continue
		}
		fmt.Fprintf(out, "%s %s (%s)\n", r.Direction, r.Source.Path, r.Duration)
	}

	return nil
}

func migrateDown(ctx context.Context, provider *goose.Provider, version int64, format string, out io.Writer) error {
	if version >= 0 {
		results, err := provider.DownTo(ctx, version)
		if err != nil {
			return err
		}
		return reportMigrations(out, format, results)
	}

	result, err := provider.Down(ctx)
	if err != nil {
		return err
	}

	return reportMigrations(out, format, []*goose.MigrationResult{result})
}

func migrationStatus(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	statuses, err := provider.Status(ctx)
	if err != nil {
		return err
	}

	if format == "json" {
		return json.NewEncoder(out).Encode(statuses)
	}

	fmt.Fprintf(out, "    %-24s    %s\n", "Applied At", "Migration")
	for _, s := range statuses {
		appliedAt := "Pending"
		if s.State == goose.StateApplied {
			appliedAt = s.AppliedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(out, "    %-24s -- %s\n", appliedAt, s.Source.Path)
	}

	return nil
}

func migrationCheck(ctx context.Context, provider *goose.Provider, format string, out io.Writer) error {
	pending, err := provider.HasPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to check pending migrations: %w", err)
	}

	current, err := provider.GetDBVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read database version: %w", err)
	}

	state := "ok"
	if pending {
		state = "pending"
	}

	if format == "json" {
		if err := json.NewEncoder(out).Encode(map[string]any{"status": state, "version": current}); err != nil {
			return err
		}
	} else if !pending {
		fmt.Fprintf(out, "Database is up to date (version %d)\n", current)
	}

	if pending {
		return fmt.Errorf("migrations are pending: current version %d", current)
	}

	return nil
}
