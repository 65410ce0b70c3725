package strategy

import mathrand "math/rand"

// Rand is the minimal randomness source used for schedule realism.
// It is injectable so tests can pin tranche weights exactly; the
// randomization is cosmetic and never changes totals.
type Rand interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NewSeeded returns a deterministic source for a seed. Identical seeds
// produce identical schedules.
func NewSeeded(seed int64) Rand {
	return mathrand.New(mathrand.NewSource(seed))
}

// Fixed returns a source that always yields v. Useful in tests: v=0.5
// makes every jitter term vanish.
func Fixed(v float64) Rand {
	return fixedRand(v)
}

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }
