package formula

// Backend is the boundary to the verification engine.
//
// Assert fails the enclosing verification run when cond is false.
// Assume narrows the remaining exploration to runs where cond holds. Assuming
// a condition that is already true has no effect.
//
// msg is a diagnostic label, usually the rendering of the formula being checked.
type Backend interface {
	Assert(cond bool, msg string)
	Assume(cond bool, msg string)
}

// Predicate is a pure query over a single context.
type Predicate[C any] interface {
	Eval(ctx *C) bool
}

// Relation is a pure query over a pair of contexts: the current (post) state
// and the old (pre) state.
type Relation[C any] interface {
	EvalWithStates(current, old *C) bool
}

// Asserter may be implemented by a Predicate to replace the default
// assertion, e.g. to emit one primitive call per field with a precise message.
// The observable effect must stay the same: fail iff Eval would be false.
type Asserter[C any] interface {
	Assert(b Backend, ctx *C)
}

// Assumer is the assumption counterpart of Asserter.
type Assumer[C any] interface {
	Assume(b Backend, ctx *C)
}

// Formula is the full contract shared by leaves and combinators.
//
// All operations take contexts by reference and none of them mutate it.
// Eval and EvalWithStates are pure and total.
type Formula[C any] interface {
	Predicate[C]
	Relation[C]

	Assert(b Backend, ctx *C)
	Assume(b Backend, ctx *C)

	AssertWithStates(b Backend, current, old *C)
	AssumeWithStates(b Backend, current, old *C)

	// String renders the formula; it is passed to the Backend as the message.
	String() string
}
