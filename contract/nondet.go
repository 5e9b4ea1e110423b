package contract

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
)

// Nondet produces contexts for a lemma. For exhaustive verification it
// stands for "any possible value"; tests swap in deterministic fixtures.
type Nondet[C any] interface {
	Generate() C
}

// NondetFunc adapts a function to Nondet.
type NondetFunc[C any] func() C

func (f NondetFunc[C]) Generate() C { return f() }

// Fixtures returns the given values in order, wrapping around after the
// last one. It panics if no values are given.
func Fixtures[C any](values ...C) Nondet[C] {
	if len(values) == 0 {
		panic("contract: Fixtures needs at least one value")
	}
	return &fixtures[C]{values: values}
}

type fixtures[C any] struct {
	values []C
	next   atomic.Uint64
}

func (f *fixtures[C]) Generate() C {
	n := f.next.Add(1) - 1
	return f.values[n%uint64(len(f.values))]
}

// Random draws contexts from gen using a PCG source seeded with seed, so a
// run is reproducible from its seed.
func Random[C any](seed uint64, gen func(r *rand.Rand) C) Nondet[C] {
	return &random[C]{
		r:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		gen: gen,
	}
}

type random[C any] struct {
	mu  sync.Mutex
	r   *rand.Rand
	gen func(r *rand.Rand) C
}

func (s *random[C]) Generate() C {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen(s.r)
}

// IntBetween returns a value in [lo, hi]. Helper for Random generators.
func IntBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
