// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

func TestAPI_Ready(t *testing.T) {
	tests := []struct {
		name           string
		checks         map[string]Pinger
		expectedStatus int
	}{
		{
			name:           "no dependencies",
			expectedStatus: http.StatusOK,
		},
		{
			name: "all healthy",
			checks: map[string]Pinger{
				"database": PingerFunc(func(context.Context) error { return nil }),
				"redis":    PingerFunc(func(context.Context) error { return nil }),
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "database down",
			checks: map[string]Pinger{
				"database": PingerFunc(func(context.Context) error { return errors.New("connection refused") }),
				"redis":    PingerFunc(func(context.Context) error { return nil }),
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := chi.NewMux()
			NewAPI(tt.checks, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/ready", nil))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var resp struct {
				Data Status `json:"data"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			for name := range tt.checks {
				if _, ok := resp.Data.Checks[name]; !ok {
					t.Errorf("missing check %s", name)
				}
			}
		})
	}
}

func TestAPI_Alive(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	for _, path := range []string{"/api/v0/status", "/api/v0/version"} {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", path, w.Code)
		}
	}
}
