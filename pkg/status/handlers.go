// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package status serves liveness, readiness and build information.
package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/brokerage-service/internal/http/types"
	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
	"github.com/canonical/brokerage-service/internal/version"
)

const pingTimeout = 2 * time.Second

// Pinger is a dependency the readiness probe checks, e.g. the database or redis.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Status struct {
	Status    string          `json:"status"`
	BuildInfo *BuildInfo      `json:"buildInfo,omitempty"`
	Checks    map[string]bool `json:"checks,omitempty"`
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type API struct {
	checks map[string]Pinger

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	types.WriteData(w, http.StatusOK, Status{Status: "ok", BuildInfo: Build()})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	names := make([]string, 0, len(a.checks))
	for name := range a.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	s := Status{Status: "ok", Checks: make(map[string]bool, len(names))}

	for _, name := range names {
		err := a.checks[name].Ping(ctx)
		s.Checks[name] = err == nil

		availability := 1.0
		if err != nil {
			availability = 0
			s.Status = "unavailable"
			a.logger.Errorf("readiness check %s failed: %v", name, err)
		}

		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": name}, availability)
	}

	code := http.StatusOK
	if s.Status != "ok" {
		code = http.StatusServiceUnavailable
	}

	types.WriteData(w, code, s)
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	types.WriteData(w, http.StatusOK, Build())
}

// Build describes the running binary.
func Build() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return &BuildInfo{Version: version.Version}
	}

	b := &BuildInfo{Version: version.Version, Name: info.Main.Path}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			b.CommitHash = setting.Value
		}
	}

	return b
}

func NewAPI(checks map[string]Pinger, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checks = checks
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
