package formula

import (
	"fmt"
	"strings"
)

// True returns the constant formula that holds in every state.
// Its Assert and Assume are no-ops: no primitive is issued for a tautology.
func True[C any]() Formula[C] {
	return truth[C]{}
}

type truth[C any] struct{}

func (truth[C]) Eval(*C) bool                        { return true }
func (truth[C]) Assert(Backend, *C)                  {}
func (truth[C]) Assume(Backend, *C)                  {}
func (truth[C]) EvalWithStates(_, _ *C) bool         { return true }
func (truth[C]) AssertWithStates(_ Backend, _, _ *C) {}
func (truth[C]) AssumeWithStates(_ Backend, _, _ *C) {}
func (truth[C]) String() string                      { return "true" }

// And holds when both sides hold.
//
// Eval evaluates both sides. Assert and Assume always act on the left side
// first and then on the right side, so a failing left clause never hides a
// failing right clause.
func And[C any](left, right Formula[C]) Formula[C] {
	return and[C]{left: left, right: right}
}

type and[C any] struct {
	left, right Formula[C]
}

func (a and[C]) Eval(ctx *C) bool {
	l := a.left.Eval(ctx)
	r := a.right.Eval(ctx)
	return l && r
}

func (a and[C]) Assert(b Backend, ctx *C) {
	a.left.Assert(b, ctx)
	a.right.Assert(b, ctx)
}

func (a and[C]) Assume(b Backend, ctx *C) {
	a.left.Assume(b, ctx)
	a.right.Assume(b, ctx)
}

func (a and[C]) EvalWithStates(current, old *C) bool {
	l := a.left.EvalWithStates(current, old)
	r := a.right.EvalWithStates(current, old)
	return l && r
}

func (a and[C]) AssertWithStates(b Backend, current, old *C) {
	a.left.AssertWithStates(b, current, old)
	a.right.AssertWithStates(b, current, old)
}

func (a and[C]) AssumeWithStates(b Backend, current, old *C) {
	a.left.AssumeWithStates(b, current, old)
	a.right.AssumeWithStates(b, current, old)
}

func (a and[C]) String() string {
	return fmt.Sprintf("(%s && %s)", a.left, a.right)
}

// Implies holds when the antecedent is false or the consequent holds.
//
// Assert and Assume evaluate the antecedent first and act on the consequent
// only when it holds, at most once.
func Implies[C any](antecedent, consequent Formula[C]) Formula[C] {
	return implies[C]{antecedent: antecedent, consequent: consequent}
}

type implies[C any] struct {
	antecedent, consequent Formula[C]
}

func (i implies[C]) Eval(ctx *C) bool {
	return !i.antecedent.Eval(ctx) || i.consequent.Eval(ctx)
}

func (i implies[C]) Assert(b Backend, ctx *C) {
	if i.antecedent.Eval(ctx) {
		i.consequent.Assert(b, ctx)
	}
}

func (i implies[C]) Assume(b Backend, ctx *C) {
	if i.antecedent.Eval(ctx) {
		i.consequent.Assume(b, ctx)
	}
}

func (i implies[C]) EvalWithStates(current, old *C) bool {
	return !i.antecedent.EvalWithStates(current, old) || i.consequent.EvalWithStates(current, old)
}

func (i implies[C]) AssertWithStates(b Backend, current, old *C) {
	if i.antecedent.EvalWithStates(current, old) {
		i.consequent.AssertWithStates(b, current, old)
	}
}

func (i implies[C]) AssumeWithStates(b Backend, current, old *C) {
	if i.antecedent.EvalWithStates(current, old) {
		i.consequent.AssumeWithStates(b, current, old)
	}
}

func (i implies[C]) String() string {
	return fmt.Sprintf("(%s => %s)", i.antecedent, i.consequent)
}

// Not negates a formula. Negation has no structural decomposition, so the
// effectful modes issue a single primitive on the negated value.
func Not[C any](f Formula[C]) Formula[C] {
	return not[C]{f: f}
}

type not[C any] struct {
	f Formula[C]
}

func (n not[C]) Eval(ctx *C) bool                    { return !n.f.Eval(ctx) }
func (n not[C]) Assert(b Backend, ctx *C)            { b.Assert(n.Eval(ctx), n.String()) }
func (n not[C]) Assume(b Backend, ctx *C)            { b.Assume(n.Eval(ctx), n.String()) }
func (n not[C]) EvalWithStates(current, old *C) bool { return !n.f.EvalWithStates(current, old) }

func (n not[C]) AssertWithStates(b Backend, current, old *C) {
	b.Assert(n.EvalWithStates(current, old), n.String())
}

func (n not[C]) AssumeWithStates(b Backend, current, old *C) {
	b.Assume(n.EvalWithStates(current, old), n.String())
}

func (n not[C]) String() string {
	return fmt.Sprintf("!%s", n.f)
}

// Or holds when either side holds. Both sides are evaluated; the effectful
// modes issue a single primitive on the disjunction.
func Or[C any](left, right Formula[C]) Formula[C] {
	return or[C]{left: left, right: right}
}

type or[C any] struct {
	left, right Formula[C]
}

func (o or[C]) Eval(ctx *C) bool {
	l := o.left.Eval(ctx)
	r := o.right.Eval(ctx)
	return l || r
}

func (o or[C]) Assert(b Backend, ctx *C) { b.Assert(o.Eval(ctx), o.String()) }
func (o or[C]) Assume(b Backend, ctx *C) { b.Assume(o.Eval(ctx), o.String()) }

func (o or[C]) EvalWithStates(current, old *C) bool {
	l := o.left.EvalWithStates(current, old)
	r := o.right.EvalWithStates(current, old)
	return l || r
}

func (o or[C]) AssertWithStates(b Backend, current, old *C) {
	b.Assert(o.EvalWithStates(current, old), o.String())
}

func (o or[C]) AssumeWithStates(b Backend, current, old *C) {
	b.Assume(o.EvalWithStates(current, old), o.String())
}

func (o or[C]) String() string {
	return fmt.Sprintf("(%s || %s)", o.left, o.right)
}

// All is the conjunction of fs, folded to the right with And.
// It is True when fs is empty.
func All[C any](fs ...Formula[C]) Formula[C] {
	if len(fs) == 0 {
		return True[C]()
	}
	f := fs[len(fs)-1]
	for i := len(fs) - 2; i >= 0; i-- {
		f = And(fs[i], f)
	}
	return f
}

// Describe renders a list of formulas, one per line. Used in reports.
func Describe[C any](fs ...Formula[C]) string {
	var sb strings.Builder
	for i, f := range fs {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.String())
	}
	return sb.String()
}
