// Package uuid hands out entity IDs behind an interface so tests can predict them
package uuid

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator is an interface for generating IDs
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator using Google's UUID package
type GoogleUUIDGenerator struct {
	prefix string
}

// NewGoogleUUIDGenerator creates a generator of bare random UUIDs
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// NewPrefixedGenerator creates a generator of "<prefix>_<uuid>" IDs
func NewPrefixedGenerator(prefix string) *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{prefix: prefix}
}

// New generates a new ID
func (g *GoogleUUIDGenerator) New() string {
	if g.prefix == "" {
		return uuid.New().String()
	}
	return g.prefix + "_" + uuid.New().String()
}

// SequenceGenerator hands out "<prefix>-1", "<prefix>-2", ... and is safe
// for concurrent use
type SequenceGenerator struct {
	prefix string
	next   atomic.Int64
}

// NewSequenceGenerator creates a deterministic generator
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// New returns the next ID in the sequence
func (g *SequenceGenerator) New() string {
	return fmt.Sprintf("%s-%d", g.prefix, g.next.Add(1))
}
