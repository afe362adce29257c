// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package client is a Go client for the brokerage API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/canonical/brokerage-service/internal/db"
	"github.com/canonical/brokerage-service/internal/identity"
	"github.com/canonical/brokerage-service/internal/roles"
	"github.com/canonical/brokerage-service/internal/types"
	"github.com/canonical/brokerage-service/pkg/admin"
	"github.com/canonical/brokerage-service/pkg/authentication"
	"github.com/canonical/brokerage-service/pkg/guard"
	"github.com/canonical/brokerage-service/pkg/invitation"
	"github.com/canonical/brokerage-service/pkg/session"
)

// RequestEditorFn changes every outgoing request, typically to add credentials.
type RequestEditorFn func(ctx context.Context, req *http.Request) error

type ClientOption func(*Client) error

// APIError is a non 2xx answer, Message is the server's user facing text.
type APIError struct {
	Status   int
	Message  string
	Redirect string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type envelope struct {
	Data     json.RawMessage `json:"data"`
	Message  string          `json:"message"`
	Status   int             `json:"status"`
	Redirect string          `json:"redirect"`
}

type Client struct {
	server  string
	http    *http.Client
	editors []RequestEditorFn
}

func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) error {
		cl.http = c
		return nil
	}
}

func WithRequestEditorFn(fn RequestEditorFn) ClientOption {
	return func(cl *Client) error {
		cl.editors = append(cl.editors, fn)
		return nil
	}
}

func WithBearerToken(token string) ClientOption {
	return WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
		req.Header.Set("Authorization", "Bearer "+token)
		return nil
	})
}

// WithIdentity authenticates as userID behind the identity proxy.
func WithIdentity(userID, sessionID string) ClientOption {
	return WithRequestEditorFn(func(_ context.Context, req *http.Request) error {
		req.Header.Set(identity.HeaderName, userID)
		if sessionID != "" {
			req.Header.Set(authentication.SessionIDHeader, sessionID)
		}
		return nil
	})
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.server+path, reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, fn := range c.editors {
		if err := fn(ctx, req); err != nil {
			return err
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	env := new(envelope)
	if err := json.NewDecoder(resp.Body).Decode(env); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &APIError{Status: resp.StatusCode, Message: env.Message, Redirect: env.Redirect}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	return nil
}

func (c *Client) Me(ctx context.Context) (*types.User, error) {
	u := new(types.User)
	if err := c.do(ctx, http.MethodGet, "/api/v0/me", nil, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (c *Client) Roles(ctx context.Context) (*session.View, error) {
	v := new(session.View)
	if err := c.do(ctx, http.MethodGet, "/api/v0/me/roles", nil, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (c *Client) SelectRole(ctx context.Context, role roles.Role) (*session.View, error) {
	v := new(session.View)
	if err := c.do(ctx, http.MethodPut, "/api/v0/me/roles/selected", map[string]string{"role": string(role)}, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (c *Client) RefreshRoles(ctx context.Context) (*session.View, error) {
	v := new(session.View)
	if err := c.do(ctx, http.MethodPost, "/api/v0/me/roles/refresh", nil, v); err != nil {
		return nil, err
	}

	return v, nil
}

func (c *Client) ResetSession(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/v0/me/session", nil, nil)
}

func (c *Client) Access(ctx context.Context, route string) (*guard.AccessResponse, error) {
	a := new(guard.AccessResponse)
	if err := c.do(ctx, http.MethodGet, "/api/v0/access?route="+url.QueryEscape(route), nil, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (c *Client) Routes(ctx context.Context) (guard.RouteTable, error) {
	var routes guard.RouteTable
	if err := c.do(ctx, http.MethodGet, "/api/v0/routes", nil, &routes); err != nil {
		return nil, err
	}

	return routes, nil
}

func (c *Client) AdminCheck(ctx context.Context) (*admin.CheckResponse, error) {
	r := new(admin.CheckResponse)
	if err := c.do(ctx, http.MethodGet, "/api/v0/admin/check", nil, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (c *Client) ListInvitations(ctx context.Context) ([]*invitation.View, error) {
	var views []*invitation.View
	if err := c.do(ctx, http.MethodGet, "/api/v0/invitations", nil, &views); err != nil {
		return nil, err
	}

	return views, nil
}

func (c *Client) ListSentInvitations(ctx context.Context, page db.Pagination) ([]*invitation.View, error) {
	q := url.Values{}
	q.Set("page", strconv.FormatUint(page.Page, 10))
	q.Set("size", strconv.FormatUint(page.Size, 10))

	var views []*invitation.View
	if err := c.do(ctx, http.MethodGet, "/api/v0/invitations/sent?"+q.Encode(), nil, &views); err != nil {
		return nil, err
	}

	return views, nil
}

func (c *Client) CreateInvitation(ctx context.Context, req *invitation.CreateRequest) (*types.Invitation, error) {
	i := new(types.Invitation)
	if err := c.do(ctx, http.MethodPost, "/api/v0/invitations", req, i); err != nil {
		return nil, err
	}

	return i, nil
}

func (c *Client) AcceptInvitation(ctx context.Context, id string) (*invitation.AcceptResult, error) {
	r := new(invitation.AcceptResult)
	if err := c.do(ctx, http.MethodPost, "/api/v0/invitations/"+url.PathEscape(id)+"/accept", nil, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (c *Client) RejectInvitation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/api/v0/invitations/"+url.PathEscape(id)+"/reject", nil, nil)
}

func NewClient(server string, opts ...ClientOption) (*Client, error) {
	if !strings.HasPrefix(server, "http") {
		server = "http://" + server
	}

	c := new(Client)
	c.server = strings.TrimSuffix(server, "/")
	c.http = http.DefaultClient

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}
