// Package randutil centralises how random sources are seeded so that
// every call site gets reproducible sequences from an int64 seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided
// int64. The helper derives the two 64-bit seeds required by rand/v2.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed resolves a configured seed: zero means "seed from the wall
// clock", anything else is used as-is.
func Seed(configured int64) int64 {
	if configured == 0 {
		return time.Now().UnixNano()
	}
	return configured
}

// Derive produces an independent child seed from a parent seed, used to
// give each simulation worker its own stream.
func Derive(seed int64, n int) int64 {
	return int64(mix(uint64(seed) + uint64(n+1)*goldenRatio64))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
