package formula

// StatePair pairs two borrowed contexts: current (the state being checked,
// e.g. after an operation) and old (the reference state, e.g. before it).
//
// The pair owns neither context; both pointers must stay valid for as long
// as the pair is used. Ctx, Post and Current are aliases, as are Old and Pre.
type StatePair[C any] struct {
	current *C
	old     *C
}

// NewStatePair pairs current with old. The current state always comes first.
func NewStatePair[C any](current, old *C) StatePair[C] {
	return StatePair[C]{current: current, old: old}
}

// Singleton builds a pair whose current and old states are the same context,
// for two-state formulas that have no distinct "before" state.
func Singleton[C any](ctx *C) StatePair[C] {
	return StatePair[C]{current: ctx, old: ctx}
}

// Ctx returns the current state. Fields of the context are reachable
// through it directly, e.g. p.Ctx().Balance.
func (p StatePair[C]) Ctx() *C { return p.current }

func (p StatePair[C]) Post() *C    { return p.current }
func (p StatePair[C]) Current() *C { return p.current }
func (p StatePair[C]) Old() *C     { return p.old }
func (p StatePair[C]) Pre() *C     { return p.old }

// IsSingleton reports whether both sides alias the same context.
func (p StatePair[C]) IsSingleton() bool {
	return p.current == p.old
}

// Eval evaluates the two-state form of f over the pair.
func (p StatePair[C]) Eval(f Formula[C]) bool {
	return f.EvalWithStates(p.current, p.old)
}

// Assert asserts the two-state form of f over the pair.
func (p StatePair[C]) Assert(b Backend, f Formula[C]) {
	f.AssertWithStates(b, p.current, p.old)
}

// Assume assumes the two-state form of f over the pair.
func (p StatePair[C]) Assume(b Backend, f Formula[C]) {
	f.AssumeWithStates(b, p.current, p.old)
}
