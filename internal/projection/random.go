package projection

import (
	"math/rand/v2"
	"sync"
)

// Rand is the source of jitter and confidence draws.
type Rand interface {
	// Uniform returns a value in [lo, hi).
	Uniform(lo, hi float64) float64
}

// lockedRand is a Rand safe for use from concurrent handlers.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand returns a Rand seeded with seed. A zero seed draws a random one.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &lockedRand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *lockedRand) Uniform(lo, hi float64) float64 {
	r.mu.Lock()
	f := r.rng.Float64()
	r.mu.Unlock()
	return lo + f*(hi-lo)
}
