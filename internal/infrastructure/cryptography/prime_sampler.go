package cryptography

import (
	"fmt"
	"math/rand/v2"
)

// maxSampleAttempts bounds a single prime draw. Primes are dense enough in any
// sane range that the bound is never reached in practice.
const maxSampleAttempts = 100000

// PrimeSampler supplies verified primes for key construction. Implementations
// own their randomness, so callers can substitute a deterministic source.
type PrimeSampler interface {
	// SamplePrime returns a verified prime.
	// It returns any error encountered while drawing candidates.
	SamplePrime() (int64, error)
}

// mathRandSampler draws candidates uniformly from [min, max) with a
// general-purpose PRNG. Not a cryptographically secure source; acceptable for
// demonstration only.
type mathRandSampler struct {
	rng *rand.Rand
	min int64
	max int64
}

// NewMathRandSampler creates a sampler over [min, max), seeded once from the
// process-global generator.
func NewMathRandSampler(min, max int64) (PrimeSampler, error) {
	if min < 2 || max <= min {
		return nil, fmt.Errorf("invalid prime sampling range [%d, %d)", min, max)
	}

	return &mathRandSampler{
		rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		min: min,
		max: max,
	}, nil
}

// SamplePrime retries uniform draws until one passes the primality check.
func (s *mathRandSampler) SamplePrime() (int64, error) {
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		candidate := s.min + s.rng.Int64N(s.max-s.min)
		if isPrime(candidate) {
			return candidate, nil
		}
	}
	return 0, fmt.Errorf("no prime found in [%d, %d) after %d draws", s.min, s.max, maxSampleAttempts)
}

// scriptedSampler replays a fixed prime sequence, enabling deterministic key
// construction in tests and reproducible demonstrations.
type scriptedSampler struct {
	primes []int64
	next   int
}

// NewScriptedSampler creates a sampler that yields the given primes in order
// and fails once the sequence is exhausted.
func NewScriptedSampler(primes ...int64) PrimeSampler {
	return &scriptedSampler{primes: primes}
}

// SamplePrime returns the next scripted prime.
func (s *scriptedSampler) SamplePrime() (int64, error) {
	if s.next >= len(s.primes) {
		return 0, fmt.Errorf("scripted sampler exhausted after %d primes", len(s.primes))
	}

	prime := s.primes[s.next]
	s.next++

	if !isPrime(prime) {
		return 0, fmt.Errorf("scripted value %d is not prime", prime)
	}
	return prime, nil
}
