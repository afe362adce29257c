// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

const defaultTxTimeout = 60 * time.Second

type lazyTxContextKey struct{}

type TxInterface interface {
	Commit() error
	Rollback() error
	sq.BaseRunner
}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// lazyTx begins the transaction on the first statement issued within WithTx.
type lazyTx struct {
	db     *sql.DB
	tx     TxInterface
	done   bool
	cancel context.CancelFunc
}

func (lt *lazyTx) get() (TxInterface, error) {
	if lt.tx != nil {
		return lt.tx, nil
	}

	// detached from the request context, bounded by defaultTxTimeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTxTimeout)
	tx, err := lt.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		return nil, err
	}

	lt.tx = tx
	lt.cancel = cancel

	return tx, nil
}

func (lt *lazyTx) finish(commit bool) error {
	defer func() {
		if lt.cancel != nil {
			lt.cancel()
		}
	}()

	if lt.tx == nil || lt.done {
		return nil
	}

	lt.done = true
	if commit {
		return lt.tx.Commit()
	}

	if err := lt.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}

	return nil
}

type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a dollar-placeholder builder bound to the request transaction when there is one.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	if lt, ok := ctx.Value(lazyTxContextKey{}).(*lazyTx); ok {
		tx, err := lt.get()
		if err == nil {
			return builder.RunWith(tx)
		}

		d.logger.Errorf("failed to begin transaction, running without one: %v", err)
	}

	return builder.RunWith(d.db)
}

// WithTx runs fn with a lazily started transaction, committed when fn returns nil.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	lt := &lazyTx{db: d.db}

	if err := fn(context.WithValue(ctx, lazyTxContextKey{}, lt)); err != nil {
		if rbErr := lt.finish(false); rbErr != nil {
			d.logger.Errorf("failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := lt.finish(true); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	tags := map[string]string{"component": "postgres"}

	if err := d.db.PingContext(ctx); err != nil {
		_ = d.monitor.SetDependencyAvailability(tags, 0)
		return err
	}

	_ = d.monitor.SetDependencyAvailability(tags, 1)

	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	if cfg.TracingEnabled {
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to record database stats: %w", err)
		}
	}

	d := new(DBClient)
	d.pool = pool
	d.db = stdlib.OpenDBFromPool(pool)

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	if err := d.Ping(context.Background()); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	return d, nil
}
