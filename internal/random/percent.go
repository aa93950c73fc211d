// Package random provides the shared percentage roller used for
// probabilistic combat decisions.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// Source is a seeded generator safe for concurrent use.
// Callers get one injected rather than reaching for a package-level generator.
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Source. A seed of 0 draws a fresh seed from crypto/rand.
func New(seed int64) (*Source, error) {
	if seed == 0 {
		var err error
		if seed, err = NewSeed(); err != nil {
			return nil, err
		}
	}
	return &Source{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))}, nil
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("random: read seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Percent returns a uniformly distributed integer in [1,100].
func (s *Source) Percent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(100) + 1
}
