// Package contract packages formulas into checkable contracts.
//
// A Spec pairs a requires formula, assumed on the pre-state, with an ensures
// formula, asserted over the (post, pre) state pair. An InvariantSpec assumes
// an assumption and an invariant on the pre-state and re-asserts only the
// invariant on the post-state. A Lemma adds a source of non-deterministic
// contexts, turning a requires/ensures pair into a runnable check.
//
// Every two-state entry point in this package takes the post (current) state
// first and the pre (old) state second, matching formula.Formula's
// EvalWithStates(current, old).
package contract
