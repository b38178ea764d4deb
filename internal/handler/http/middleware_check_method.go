// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madelineqt

package http

import "net/http"

// hideUnsupportedMethod replaces chi's MethodNotAllowed handler. Register it
// with [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 by default when a path matches a registered route but the
// method does not. This API answers 404 instead, so callers probing a known
// path with an unsupported method cannot tell it apart from a path that does
// not exist.
func hideUnsupportedMethod(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
