// Package formula implements a small algebra of boolean predicates over a
// piece of program state (a "context") for use in verification harnesses.
//
// A Formula can be used in three operating modes:
//
//   - Eval: a pure boolean query.
//   - Assert: report a failure to a Backend when the formula does not hold.
//   - Assume: constrain the Backend's state space to runs where it holds.
//
// Each mode comes in a single-state form, taking one context, and a two-state
// form, taking the current (post) context and the old (pre) context. Leaf
// predicates that only look at one state are lifted into two-state formulas
// by ignoring the old state.
//
// Formulas are immutable descriptions of behavior. They never construct or
// mutate a context; they only read it through the pointer they are given.
//
// Usage:
//
//	xPos := formula.Func("x > 0", func(p *Point) bool { return p.X > 0 })
//	yPos := formula.Func("y > 0", func(p *Point) bool { return p.Y > 0 })
//
//	both := formula.And(xPos, yPos)
//	ok := both.Eval(&Point{X: 5, Y: 10}) // true
//
//	// guard the consequent on the antecedent
//	formula.Implies(xPos, yPos).Assert(backend, &p)
package formula
