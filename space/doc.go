// Package space declares hyperparameter search spaces and draws reproducible
// random samples from them.
//
// A search space (grid) is an ordered set of sub-grids; each sub-grid is an
// ordered set of dimensions, and each dimension is a Distribution: Real,
// Integer, or Categorical. Sub-grids are mutually exclusive alternatives —
// exactly one is active per sampled point, chosen uniformly.
//
// Distributions own a transform.Transformer that converts values between the
// original space and the warped numeric space consumed by a downstream model.
// The sampler itself always works in original space; Transform and
// InverseTransform exist for the external optimizer.
//
// All randomness flows through an explicit *rand.Rand (math/rand/v2), so a
// sample stream is a pure function of its seed. A single rand.Rand must not be
// shared across concurrent samplers.
package space
