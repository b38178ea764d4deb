package utils

import "github.com/google/uuid"

// UUIDGenerator produces collision-resistant unique tokens for storage names.
// Version-7 UUIDs are preferred because they are time-ordered, which keeps
// directory listings of uploaded images roughly chronological.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a fresh UUID string. Falls back to a random v4 UUID when
// v7 generation fails (entropy source exhaustion).
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
