// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"strconv"
)

const (
	defaultPage     uint64 = 1
	defaultPageSize uint64 = 100
	maxPageSize     uint64 = 500
)

// Pagination is a 1-based page request.
type Pagination struct {
	Page uint64
	Size uint64
}

func (p Pagination) Offset() uint64 {
	return (p.Page - 1) * p.Size
}

func (p Pagination) Limit() uint64 {
	return p.Size
}

// NewPagination clamps the raw values, anything unparsable falls back to the defaults.
func NewPagination(page, size int64) Pagination {
	p := Pagination{Page: defaultPage, Size: defaultPageSize}

	if page > 0 {
		p.Page = uint64(page)
	}

	if size > 0 {
		p.Size = min(uint64(size), maxPageSize)
	}

	return p
}

// PaginationFromQuery reads the page and size query parameters.
func PaginationFromQuery(page, size string) Pagination {
	pv, _ := strconv.ParseInt(page, 10, 64)
	sv, _ := strconv.ParseInt(size, 10, 64)

	return NewPagination(pv, sv)
}
