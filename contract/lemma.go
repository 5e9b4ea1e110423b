package contract

import (
	"fmt"

	"github.com/gnolang/formal/formula"
)

// Lemma is a requires/ensures pair together with a source of contexts,
// forming a runnable verification check.
//
// Requires and Ensures are called on every use rather than cached, so they
// may close over nothing and be rebuilt cheaply.
type Lemma[C any] struct {
	Name     string
	Requires func() formula.Formula[C]
	Ensures  func() formula.Formula[C]
	Nondet   Nondet[C]
	Tracer   Tracer
}

// NewLemma builds a Lemma with a no-op tracer.
func NewLemma[C any](name string, requires, ensures func() formula.Formula[C], nondet Nondet[C]) *Lemma[C] {
	return &Lemma[C]{
		Name:     name,
		Requires: requires,
		Ensures:  ensures,
		Nondet:   nondet,
		Tracer:   NopTracer,
	}
}

// WithTracer sets the tracer the generated contexts are logged to.
func (l *Lemma[C]) WithTracer(t Tracer) *Lemma[C] {
	l.Tracer = t
	return l
}

// Verify draws a context from the lemma's Nondet source, logs it and
// checks the lemma against it.
func (l *Lemma[C]) Verify(b formula.Backend) {
	if l.Nondet == nil {
		panic(fmt.Sprintf("contract: lemma %q has no context source", l.Name))
	}
	ctx := l.Nondet.Generate()
	l.tracer().Log(l.tag("context"), ctx)
	l.VerifyWithContext(b, &ctx)
}

// VerifyWithContext assumes the requires formula on ctx and then asserts the
// ensures formula on it.
func (l *Lemma[C]) VerifyWithContext(b formula.Backend, ctx *C) {
	l.requires().Assume(b, ctx)
	l.ensures().Assert(b, ctx)
}

// Apply uses the lemma as a proof step. It is the same operation as
// VerifyWithContext.
func (l *Lemma[C]) Apply(b formula.Backend, ctx *C) {
	l.VerifyWithContext(b, ctx)
}

// VerifyTransition checks the lemma across a state change: requires is
// assumed on pre and ensures is asserted in two-state form over (post, pre).
func (l *Lemma[C]) VerifyTransition(b formula.Backend, post, pre *C) {
	l.requires().Assume(b, pre)
	l.ensures().AssertWithStates(b, post, pre)
}

// Spec returns the lemma's requires/ensures pair as a Spec.
func (l *Lemma[C]) Spec() Spec[C] {
	return NewSpec(l.requires(), l.ensures())
}

func (l *Lemma[C]) String() string {
	return fmt.Sprintf("lemma %s: %s", l.Name, l.Spec())
}

func (l *Lemma[C]) requires() formula.Formula[C] {
	if l.Requires == nil {
		return formula.True[C]()
	}
	return orTrue(l.Requires())
}

func (l *Lemma[C]) ensures() formula.Formula[C] {
	if l.Ensures == nil {
		return formula.True[C]()
	}
	return orTrue(l.Ensures())
}

func (l *Lemma[C]) tracer() Tracer {
	if l.Tracer == nil {
		return NopTracer
	}
	return l.Tracer
}

func (l *Lemma[C]) tag(suffix string) string {
	if l.Name == "" {
		return suffix
	}
	return l.Name + "." + suffix
}
