// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madelineqt

package http

import "errors"

// Sentinel errors raised by the HTTP layer itself. Callers can match against
// them with [errors.Is]; the error mapper assigns them their status codes.
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a "<scheme> <token>" value.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrNoUserInContext is returned by handlers behind the auth middleware
	// when the request context unexpectedly lacks an authenticated user ID.
	ErrNoUserInContext = errors.New("no authenticated user in request context")

	// ErrInvalidJSONBody is returned when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid JSON was passed")

	// ErrUnreadableRequestBody is returned when reading a request body fails
	// before it can be interpreted, e.g. the client disconnected mid-upload.
	ErrUnreadableRequestBody = errors.New("could not read request body")
)
