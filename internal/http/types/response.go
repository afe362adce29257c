// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Response is the envelope of every JSON body the API returns.
type Response struct {
	Data     any    `json:"data,omitempty"`
	Meta     *Page  `json:"_meta,omitempty"`
	Message  string `json:"message"`
	Status   int    `json:"status"`
	Redirect string `json:"redirect,omitempty"`
}

type Page struct {
	Page uint64 `json:"page"`
	Size uint64 `json:"size"`
}

func WriteJSON(w http.ResponseWriter, status int, r Response) {
	r.Status = status
	if r.Message == "" {
		r.Message = http.StatusText(status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(r)
}

func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Response{Data: data})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Response{Message: message})
}

// WriteRedirect answers API clients with the location a browser would have been sent to.
func WriteRedirect(w http.ResponseWriter, status int, message, location string) {
	WriteJSON(w, status, Response{Message: message, Redirect: location})
}

// WantsHTML is true for browser navigations, i.e. text/html accepted and JSON not asked for.
func WantsHTML(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "text/html") && !strings.Contains(accept, "application/json")
}
