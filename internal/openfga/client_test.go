// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	fga "github.com/openfga/go-sdk"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/monitoring"
	"github.com/canonical/brokerage-service/internal/tracing"
)

const testStoreID = "01GXSA8YR785C4FYS3C0RTG7B1"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("failed to parse test server url: %v", err)
	}

	logger := logging.NewNoopLogger()
	cfg := NewConfig(u.Scheme, u.Host, testStoreID, "token", "", false, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

	return NewClient(cfg)
}

func TestClientCheck(t *testing.T) {
	for _, allowed := range []bool{true, false} {
		var received map[string]interface{}

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/stores/"+testStoreID+"/check") {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer token" {
				t.Errorf("expected bearer token, got %q", got)
			}
			_ = json.NewDecoder(r.Body).Decode(&received)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"allowed": allowed})
		})

		ok, err := c.Check(context.Background(), "user:alice", "superadmin", "platform:global")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ok != allowed {
			t.Errorf("expected %v, got %v", allowed, ok)
		}

		key, _ := received["tuple_key"].(map[string]interface{})
		if key["user"] != "user:alice" || key["relation"] != "superadmin" || key["object"] != "platform:global" {
			t.Errorf("unexpected tuple key %v", key)
		}
	}
}

func TestClientListObjects(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/list-objects") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"objects": []string{"brokerage:b1", "brokerage:b2"}})
	})

	objs, err := c.ListObjects(context.Background(), "user:alice", "member", "brokerage")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(objs) != 2 || objs[0] != "brokerage:b1" {
		t.Errorf("unexpected objects %v", objs)
	}
}

func TestClientWriteTuplesEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s", r.URL.Path)
	})

	if err := c.WriteTuples(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := c.DeleteTuples(context.Background()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNoopClient(t *testing.T) {
	logger := logging.NewNoopLogger()
	c := NewNoopClient(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

	ok, err := c.Check(context.Background(), "user:alice", "superadmin", "platform:global")
	if err != nil || ok {
		t.Errorf("noop check should deny without error, got %v %v", ok, err)
	}

	eq, err := c.CompareModel(context.Background(), fga.AuthorizationModel{})
	if err != nil || !eq {
		t.Errorf("noop compare should succeed, got %v %v", eq, err)
	}
}

func TestConfigApiURL(t *testing.T) {
	cfg := NewConfig("", "fga:8080", "", "", "", false, nil, nil, nil)
	if got := cfg.ApiURL(); got != "http://fga:8080" {
		t.Errorf("expected default scheme, got %s", got)
	}

	cfg.ApiScheme = "https"
	if got := cfg.ApiURL(); got != "https://fga:8080" {
		t.Errorf("unexpected url %s", got)
	}
}

func TestTupleValues(t *testing.T) {
	u, r, o := NewTuple("user:a", "member", "brokerage:b").Values()
	if u != "user:a" || r != "member" || o != "brokerage:b" {
		t.Errorf("unexpected values %s %s %s", u, r, o)
	}
}
