package services

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current time. Injected so tests control timestamps and
// execution plans stay deterministic.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator supplies opaque unique identifiers.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator is the production id generator.
type UUIDGenerator struct{}

// NewID returns a random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}
