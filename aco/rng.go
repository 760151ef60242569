// Package aco - random sources for ants.
//
// Policy:
//   - NewRand(seed) is deterministic; seed==0 maps to defaultSeed so that the
//     zero value of a config still reproduces.
//   - DeriveRand splits independent streams off a parent (one per ant) with a
//     SplitMix64 finalizer, so ants seeded from one colony seed do not walk
//     correlated sequences.
//   - Ants built without WithRand/WithSeed draw their seed from the
//     auto-seeded global source: every such ant walks its own sequence.
//
// math/rand.Rand is NOT goroutine-safe. Never share one across ants that run
// in parallel; derive a stream per ant instead.
package aco

import "math/rand"

// defaultSeed replaces seed==0. Arbitrary but stable.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand for seed (0 ⇒ defaultSeed).
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mixSeed combines a parent seed and a stream id into a decorrelated seed.
// The constants are the canonical SplitMix64 increment and finalizer.
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand returns an independent stream for the given stream id.
// base==nil uses defaultSeed as the parent; otherwise base.Int63() is consumed
// once, so deriving the same id twice from one base yields different streams.
//
// Call it during setup, not per step.
//
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// freshRand seeds a private stream from the global source.
func freshRand() *rand.Rand {
	return NewRand(rand.Int63())
}
