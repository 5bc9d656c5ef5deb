// Package dist provides the random variate distributions consumed by
// montecarlo.Simulate.
//
// Every distribution draws from a caller-supplied *rand.Rand, so all
// randomness stays under the simulator's seed discipline: dist itself
// never touches a time-based or global source.
//
// Available distributions:
//
//   - Uniform(lo, hi)            — continuous uniform on [lo, hi)
//   - Normal(mean, std)          — Gaussian
//   - Triangular(lo, mode, hi)   — the classic three-point estimate
//   - LogNormal(mu, sigma)       — exp of a Gaussian (positive-only inputs)
//   - Discrete(values, weights)  — finite support with relative weights
//   - Constant(v)                — degenerate point mass
//
// Constructors validate their parameters and return sentinel errors;
// sampling itself never fails.
package dist
