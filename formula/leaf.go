package formula

import "fmt"

// Lift turns a single-state predicate into a Formula.
//
// The two-state forms ignore the old state and act on the current one.
// If p implements Asserter or Assumer, those override the default
// effectful modes. A p that already is a Formula is returned as is.
func Lift[C any](p Predicate[C]) Formula[C] {
	if f, ok := p.(Formula[C]); ok {
		return f
	}
	return leaf[C]{p: p}
}

// Func builds a single-state leaf from a closure. The name is used as
// the diagnostic message.
func Func[C any](name string, fn func(ctx *C) bool) Formula[C] {
	return Lift[C](predicateFunc[C]{name: name, fn: fn})
}

// LiftRelation turns a two-state relation into a Formula. The single-state
// forms evaluate the relation on the singleton pair (ctx, ctx).
func LiftRelation[C any](r Relation[C]) Formula[C] {
	if f, ok := r.(Formula[C]); ok {
		return f
	}
	return relationLeaf[C]{r: r}
}

// PairFunc builds a two-state leaf from a closure over (current, old).
func PairFunc[C any](name string, fn func(current, old *C) bool) Formula[C] {
	return LiftRelation[C](relationFunc[C]{name: name, fn: fn})
}

type predicateFunc[C any] struct {
	name string
	fn   func(*C) bool
}

func (p predicateFunc[C]) Eval(ctx *C) bool { return p.fn(ctx) }
func (p predicateFunc[C]) String() string   { return p.name }

type relationFunc[C any] struct {
	name string
	fn   func(current, old *C) bool
}

func (r relationFunc[C]) EvalWithStates(current, old *C) bool { return r.fn(current, old) }
func (r relationFunc[C]) String() string                      { return r.name }

// ----- single-state leaf -----

type leaf[C any] struct {
	p Predicate[C]
}

func (l leaf[C]) Eval(ctx *C) bool {
	return l.p.Eval(ctx)
}

func (l leaf[C]) Assert(b Backend, ctx *C) {
	if a, ok := l.p.(Asserter[C]); ok {
		a.Assert(b, ctx)
		return
	}
	b.Assert(l.p.Eval(ctx), l.String())
}

func (l leaf[C]) Assume(b Backend, ctx *C) {
	if a, ok := l.p.(Assumer[C]); ok {
		a.Assume(b, ctx)
		return
	}
	b.Assume(l.p.Eval(ctx), l.String())
}

func (l leaf[C]) EvalWithStates(current, _ *C) bool {
	return l.Eval(current)
}

func (l leaf[C]) AssertWithStates(b Backend, current, _ *C) {
	l.Assert(b, current)
}

func (l leaf[C]) AssumeWithStates(b Backend, current, _ *C) {
	l.Assume(b, current)
}

func (l leaf[C]) String() string {
	return describe(l.p)
}

// ----- two-state leaf -----

type relationLeaf[C any] struct {
	r Relation[C]
}

func (l relationLeaf[C]) Eval(ctx *C) bool {
	return l.r.EvalWithStates(ctx, ctx)
}

func (l relationLeaf[C]) Assert(b Backend, ctx *C) {
	l.AssertWithStates(b, ctx, ctx)
}

func (l relationLeaf[C]) Assume(b Backend, ctx *C) {
	l.AssumeWithStates(b, ctx, ctx)
}

func (l relationLeaf[C]) EvalWithStates(current, old *C) bool {
	return l.r.EvalWithStates(current, old)
}

func (l relationLeaf[C]) AssertWithStates(b Backend, current, old *C) {
	b.Assert(l.r.EvalWithStates(current, old), l.String())
}

func (l relationLeaf[C]) AssumeWithStates(b Backend, current, old *C) {
	b.Assume(l.r.EvalWithStates(current, old), l.String())
}

func (l relationLeaf[C]) String() string {
	return describe(l.r)
}

func describe(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
