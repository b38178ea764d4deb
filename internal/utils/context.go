// Package utils holds small helpers shared across the server: context keys,
// JSON response writing, JWT issue/verify and collision-resistant name
// generation.
package utils

import "context"

// contextKey is a private key type so values stored by this package cannot
// collide with string keys from other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is where the auth middleware stores the authenticated user's
// id for the lifetime of the request.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext reads the authenticated user id from ctx. ok is false
// when the value is absent or not an int64.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
