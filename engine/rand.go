package engine

import (
	"math/rand/v2"
	"time"
)

// Rand is the simulation random source, deterministic for a given seed
// Not safe for concurrent use, owned by the frame loop
type Rand struct {
	r *rand.Rand
}

// NewRand seeds a PCG generator, seed 0 seeds from the clock
func NewRand(seed uint64) *Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float64 returns a value in [0,1)
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// Range returns min + rand*span
func (r *Rand) Range(min, span float64) float64 {
	return min + r.r.Float64()*span
}

// Spread returns a value in [-span/2, span/2)
func (r *Rand) Spread(span float64) float64 {
	return (r.r.Float64() - 0.5) * span
}

// Chance returns true with probability p
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Intn returns a value in [0,n), n must be positive
func (r *Rand) Intn(n int) int {
	return r.r.IntN(n)
}
