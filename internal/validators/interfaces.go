// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madelineqt

// Package validators checks request input before it reaches the service
// layer: post metadata, uploaded images, path ids and feed date boundaries.
package validators

import "context"

// Validator validates an input value. Passing field names restricts the
// check to those fields; with none given, every known field is checked.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
