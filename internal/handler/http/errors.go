// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers when reading the request itself,
// before any service is called. Callers can match against them with
// [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidRequestBody is returned when the body cannot be decoded into
	// the expected shape.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrInvalidPathParameter is returned when a route parameter is not
	// validly percent-encoded.
	ErrInvalidPathParameter = errors.New("invalid path parameter")

	// ErrInvalidQueryParameter is returned when page or page_size is not an
	// integer in its allowed range.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
