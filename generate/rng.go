// Package generate - RNG utilities for neighbour selection.
//
// Goals:
//   - Determinism: same seed ⇒ identical mazes across platforms.
//   - No time-based sources hidden anywhere; entropy is the caller's decision.
//   - O(n) shuffles, no allocation.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use DeriveRand to give each run its
//     own stream.
package generate

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream identifier with a SplitMix64
// finalizer so that neighbouring stream ids yield unrelated seeds.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand creates an independent deterministic stream from base and stream.
// base.Int63 is consumed once; a nil base uses defaultSeed as the parent.
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Shuffle permutes s in place with Fisher–Yates: every one of the len(s)!
// orderings is equally likely. A nil r uses the default deterministic stream.
//
// Complexity: O(n) time, O(1) extra space.
func Shuffle[T any](s []T, r *rand.Rand) {
	n := len(s)
	if n <= 1 {
		return
	}
	if r == nil {
		r = NewRand(0)
	}
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}
