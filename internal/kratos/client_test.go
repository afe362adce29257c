// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

const identityJSON = `{
	"id": "9f8b7c2e-0000-4000-8000-000000000001",
	"schema_id": "default",
	"schema_url": "http://kratos/schemas/default",
	"traits": {"email": "ana@example.com", "name": {"first": "Ana", "last": "Silva"}}
}`

func newTestClient(url string) *Client {
	return NewClient(url, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestClient_GetIdentity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/admin/identities/9f8b7c2e-0000-4000-8000-000000000001" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": 404, "message": "not found"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(identityJSON))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	u, err := c.GetIdentity(context.Background(), "9f8b7c2e-0000-4000-8000-000000000001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if u.Email != "ana@example.com" || u.FirstName != "Ana" || u.LastName != "Silva" {
		t.Errorf("unexpected profile %+v", u)
	}

	if _, err := c.GetIdentity(context.Background(), "missing"); !errors.Is(err, ErrIdentityNotFound) {
		t.Errorf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestClient_GetIdentityIDByEmail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("credentials_identifier") == "ana@example.com" {
			w.Write([]byte("[" + identityJSON + "]"))
			return
		}
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)

	id, err := c.GetIdentityIDByEmail(context.Background(), "ana@example.com")
	if err != nil || id != "9f8b7c2e-0000-4000-8000-000000000001" {
		t.Errorf("unexpected result %q, %v", id, err)
	}

	if _, err := c.GetIdentityIDByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrIdentityNotFound) {
		t.Errorf("expected ErrIdentityNotFound, got %v", err)
	}
}

func TestUserFromTraits(t *testing.T) {
	tests := []struct {
		name   string
		traits any
		email  string
		first  string
	}{
		{name: "full", traits: map[string]any{"email": "a@b.c", "name": map[string]any{"first": "A"}}, email: "a@b.c", first: "A"},
		{name: "email only", traits: map[string]any{"email": "a@b.c"}, email: "a@b.c"},
		{name: "unexpected shape", traits: "nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := UserFromTraits("id", tt.traits)
			if u.ID != "id" || u.Email != tt.email || u.FirstName != tt.first {
				t.Errorf("unexpected user %+v", u)
			}
		})
	}
}
