package utils

import "github.com/google/uuid"

// IDGenerator produces time-ordered identifiers (UUIDv7) for tagging log
// entries that belong to the same event subscription.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Generate returns a new UUIDv7 string, falling back to a random UUIDv4 if
// the clock-based generator fails.
func (g *IDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
