package aco

// Option customizes an Ant at construction time.
type Option func(*Ant)

// WithRand makes the Ant draw from r. A nil r is ignored.
func WithRand(r RandomSource) Option {
	return func(a *Ant) {
		if r != nil {
			a.rng = r
		}
	}
}

// WithSeed makes the Ant draw from NewRand(seed).
func WithSeed(seed int64) Option {
	return func(a *Ant) {
		a.rng = NewRand(seed)
	}
}
