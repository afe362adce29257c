// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name            string
		write           func(http.ResponseWriter)
		expectedStatus  int
		expectedMessage string
		expectedRedir   string
	}{
		{
			name:            "data uses the status text",
			write:           func(w http.ResponseWriter) { WriteData(w, http.StatusOK, map[string]string{"id": "1"}) },
			expectedStatus:  http.StatusOK,
			expectedMessage: "OK",
		},
		{
			name:            "error keeps the message",
			write:           func(w http.ResponseWriter) { WriteError(w, http.StatusNotFound, "invitation not found") },
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "invitation not found",
		},
		{
			name:            "redirect carries the location",
			write:           func(w http.ResponseWriter) { WriteRedirect(w, http.StatusForbidden, "forbidden", "/dashboard") },
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "forbidden",
			expectedRedir:   "/dashboard",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			tt.write(rr)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("unexpected content type %s", ct)
			}

			var body Response
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid body: %v", err)
			}
			if body.Status != tt.expectedStatus || body.Message != tt.expectedMessage || body.Redirect != tt.expectedRedir {
				t.Errorf("unexpected body %+v", body)
			}
		})
	}
}

func TestWantsHTML(t *testing.T) {
	tests := []struct {
		accept   string
		expected bool
	}{
		{accept: "text/html,application/xhtml+xml", expected: true},
		{accept: "application/json", expected: false},
		{accept: "application/json, text/html", expected: false},
		{accept: "", expected: false},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept", tt.accept)
		if got := WantsHTML(r); got != tt.expected {
			t.Errorf("WantsHTML(%q) = %v, expected %v", tt.accept, got, tt.expected)
		}
	}
}
