// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madelineqt

package config

import "errors"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, errors.New("token sign key is required"))
	}
	if cfg.App.TokenIssuer == "" {
		errs = append(errs, errors.New("token issuer is required"))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, errors.New("token duration must be positive"))
	}
	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, errors.New("database DSN is required"))
	}
	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, errors.New("HTTP server address is required"))
	}

	return errors.Join(errs...)
}
