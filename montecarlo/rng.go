// Deterministic random generation for the simulator.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Independence: every (scenario, replication) pair owns an RNG stream,
//     so worker scheduling cannot change what any replication draws.
//   - Encapsulation: a single derivation path; no time-based sources.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Streams are derived per
//     replication and never shared across goroutines.

package montecarlo

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// normalizeSeed maps the seed==0 convention onto the stable default.
func normalizeSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}

	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014). Small changes in
// either input produce large, well-distributed output changes, which keeps
// sibling streams decorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// replicationRNG creates the deterministic RNG stream for one replication
// of one scenario. The scenario index is mixed first, the replication
// index second, so neither grid size nor replication count perturbs the
// streams of other cells.
//
// Call once per replication (setup cost only, not a hot inner loop).
//
// Complexity: O(1).
func replicationRNG(seed int64, scenario, replication int) *rand.Rand {
	scenSeed := deriveSeed(normalizeSeed(seed), uint64(scenario))

	return rand.New(rand.NewSource(deriveSeed(scenSeed, uint64(replication))))
}
