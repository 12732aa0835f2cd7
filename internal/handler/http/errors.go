// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request validation errors. They map to 400 Bad Request.
var (
	// ErrInvalidTimestamp is returned when the "from" query parameter is not
	// a non-negative integer number of epoch seconds.
	ErrInvalidTimestamp = errors.New("invalid `from` timestamp")

	// ErrEmptyPathParameter is returned when a required path segment is blank.
	ErrEmptyPathParameter = errors.New("empty path parameter")
)
