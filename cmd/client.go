// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/canonical/brokerage-service/internal/logging"
	"github.com/canonical/brokerage-service/pkg/client"
)

// getClient builds an API client from the persistent flags.
func getClient() (*client.Client, error) {
	opts := []client.ClientOption{
		client.WithHTTPClient(&http.Client{Timeout: 30 * time.Second}),
	}

	if bearerToken != "" {
		opts = append(opts, client.WithBearerToken(bearerToken))
	}

	if userID != "" || sessionID != "" {
		opts = append(opts, client.WithIdentity(userID, sessionID))
	}

	return client.NewClient(endpoint, opts...)
}

func getInbox() (*client.Inbox, error) {
	c, err := getClient()
	if err != nil {
		return nil, err
	}

	return client.NewInbox(c, logging.NewNoopLogger()), nil
}

// render writes v as json or hands a tabwriter to the text printer.
func render(out io.Writer, v any, text func(w io.Writer)) error {
	if output == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	text(w)

	return w.Flush()
}

// apiFailure turns a client error into the message a user should read.
func apiFailure(action string, err error) error {
	return fmt.Errorf("%s: %s", action, client.Message(err))
}
