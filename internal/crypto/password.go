// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madelineqt

// Package crypto implements credential hashing for user accounts.
//
// Passwords are hashed with Argon2id and stored as a self-describing string
// that embeds the salt, so no extra columns are needed at the persistence
// layer and parameters can be tuned without a schema change.
package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // 64 MiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32 // 256 bits

	saltLen = 16
)

// ErrMalformedHash is returned by VerifyPassword when the stored credential
// string does not have the expected "salt$digest" layout.
var ErrMalformedHash = errors.New("malformed password hash")

// HashPassword derives an Argon2id digest from password using a fresh
// 16-byte salt read from the OS CSPRNG.
//
// The result has the form "<base64(salt)>$<base64(digest)>" and is the value
// stored in the users table. Returns an error only if the random salt read fails.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error generating password salt: %w", err)
	}

	digest := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encode := base64.RawStdEncoding.EncodeToString
	return encode(salt) + "$" + encode(digest), nil
}

// VerifyPassword reports whether password matches the stored credential
// produced by [HashPassword]. The comparison of digests is constant-time.
//
// Returns [ErrMalformedHash] if stored cannot be decoded; any other non-nil
// error is impossible by construction.
func VerifyPassword(password, stored string) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}
	digest, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrMalformedHash, err)
	}

	candidate := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return subtle.ConstantTimeCompare(candidate, digest) == 1, nil
}
