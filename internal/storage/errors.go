// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrUnknownContainer    = errors.New("unknown container kind")
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeInvalidText         = "22P02"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	return pgCode(err) == pgErrCodeUniqueViolation
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pgCode(err) == pgErrCodeForeignKeyViolation
}

// IsInvalidInput reports malformed identifiers, e.g. a non-UUID id.
func IsInvalidInput(err error) bool {
	return pgCode(err) == pgErrCodeInvalidText
}

// classify maps driver errors onto the package sentinels.
func classify(err error) error {
	switch {
	case IsDuplicateKeyError(err):
		return ErrDuplicateKey
	case IsForeignKeyViolation(err):
		return ErrForeignKeyViolation
	case IsInvalidInput(err):
		return ErrNotFound
	}
	return nil
}
