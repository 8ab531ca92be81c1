package services

import (
	"fmt"
	"time"
)

// fixedClock always returns the same instant so hashes and ids derived from
// timestamps are reproducible across test runs.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

// seqIDGenerator hands out deterministic ids: seq-1, seq-2, ...
type seqIDGenerator struct {
	counter int
}

func (g *seqIDGenerator) NewID() string {
	g.counter++
	return fmt.Sprintf("seq-%d", g.counter)
}

var testTime = time.Date(2026, 8, 10, 15, 30, 0, 0, time.UTC)
