// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitation

import (
	"errors"
	"fmt"
)

var (
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrEmailMismatch      = errors.New("invitation is addressed to another email")
	ErrInvitationExpired  = errors.New("invitation expired")
	ErrNoTarget           = errors.New("invitation has no target")
	ErrForbidden          = errors.New("not allowed to invite to this container")
	ErrInvalidRequest     = errors.New("invalid request")
)

// BackendWriteError reports which write of a transition failed.
type BackendWriteError struct {
	Step string
	Err  error
}

func (e *BackendWriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Step, e.Err)
}

func (e *BackendWriteError) Unwrap() error {
	return e.Err
}

func writeError(step string, err error) error {
	return &BackendWriteError{Step: step, Err: err}
}
