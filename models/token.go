package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token carries an issued or parsed JWT together with its compact signed
// form. UserID caches the "sub" claim as int64 so handlers never repeat the
// string conversion. Only the compact string ever leaves the server.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form, ready for an Authorization header.
	SignedString string `json:"-"`

	// UserID is the subject claim parsed to int64.
	UserID int64 `json:"-"`
}

// GetUserID reads the "sub" claim and parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}
	return userID, nil
}

// String returns the compact JWS serialization.
func (t *Token) String() string {
	return t.SignedString
}
