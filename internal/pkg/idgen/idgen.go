// Package idgen provides ID generation for generated equipment
package idgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"

	"github.com/KirkDiggler/rpg-equipment/internal/pkg/clock"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// PrefixedGenerator generates time-based IDs with a specific prefix
type PrefixedGenerator struct {
	prefix string
	clock  clock.Clock
}

// NewPrefixed creates a new generator with the given prefix using the system clock
func NewPrefixed(prefix string) *PrefixedGenerator {
	return NewPrefixedWithClock(prefix, clock.New())
}

// NewPrefixedWithClock creates a prefixed generator reading time from c
func NewPrefixedWithClock(prefix string, c clock.Clock) *PrefixedGenerator {
	return &PrefixedGenerator{prefix: prefix, clock: c}
}

// Generate creates a new ID with the format: prefix_unixnano_random.
// The random suffix keeps IDs distinct when two calls share a timestamp.
func (g *PrefixedGenerator) Generate() string {
	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		// crypto/rand.Read only fails on a broken system
		panic(fmt.Sprintf("crypto/rand.Read failed: %v", err))
	}

	return fmt.Sprintf("%s_%d_%s", g.prefix, g.clock.Now().UnixNano(), hex.EncodeToString(randomBytes))
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
