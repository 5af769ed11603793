// Package scoring contains the pure per-criterion scorers that complement
// the skills and location matchers: budget, availability, experience,
// reputation, verification, and portfolio. Every scorer is deterministic,
// side-effect free, and clamps its output to [0,100].
package scoring
