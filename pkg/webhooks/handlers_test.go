// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/internal/types"
)

func TestAPI_Registration(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "stored",
			body: `{"id":"u1","traits":{"email":"ana@example.com"}}`,
			setup: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), &KratosIdentity{ID: "u1", Traits: map[string]any{"email": "ana@example.com"}}).
					Return(&types.User{ID: "u1", Email: "ana@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed",
			body:           `not-json`,
			setup:          func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no email",
			body: `{"id":"u1","traits":{}}`,
			setup: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, ErrMissingEmail)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "storage failure",
			body: `{"id":"u1","traits":{"email":"ana@example.com"}}`,
			setup: func(s *MockServiceInterface) {
				s.EXPECT().HandleRegistration(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := NewMockServiceInterface(ctrl)
			tt.setup(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(tt.body)))

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestAPI_TokenHook(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(*MockServiceInterface)
		expectedStatus int
		expectedRoles  bool
	}{
		{
			name: "roles returned",
			body: `{"session":{"id_token":{"subject":"u1"}}}`,
			setup: func(s *MockServiceInterface) {
				s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(&TokenHookResponse{
					Session: TokenHookSession{
						IDToken:     map[string]any{RolesClaim: []string{"superadmin"}},
						AccessToken: map[string]any{RolesClaim: []string{"superadmin"}},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedRoles:  true,
		},
		{
			name:           "malformed",
			body:           `"not-an-object"`,
			setup:          func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "no subject",
			body: `{}`,
			setup: func(s *MockServiceInterface) {
				s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, ErrMissingSubject)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: `{}`,
			setup: func(s *MockServiceInterface) {
				s.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			mockService := NewMockServiceInterface(ctrl)
			tt.setup(mockService)

			mux := chi.NewMux()
			NewAPI(mockService, logging.NewNoopLogger()).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhooks/token", strings.NewReader(tt.body)))

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			if !tt.expectedRoles {
				return
			}

			var resp TokenHookResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Session.IDToken[RolesClaim] == nil || resp.Session.AccessToken[RolesClaim] == nil {
				t.Errorf("expected roles in both tokens, got %+v", resp.Session)
			}
		})
	}
}
