package contract

import (
	"fmt"

	"github.com/gnolang/formal/formula"
)

// Contract is a precondition/postcondition pair over one operation.
type Contract[C any] interface {
	// AssumeRequires constrains the pre-state.
	AssumeRequires(b formula.Backend, pre *C)
	// CheckEnsures asserts the postcondition. post is the current state,
	// pre the old one.
	CheckEnsures(b formula.Backend, post, pre *C)
}

// Spec is a requires/ensures contract. Requires is single-state; Ensures is
// evaluated in two-state form over (post, pre).
type Spec[C any] struct {
	Requires formula.Formula[C]
	Ensures  formula.Formula[C]
}

var _ Contract[struct{}] = Spec[struct{}]{}

// NewSpec builds a Spec. A nil side is replaced by formula.True.
func NewSpec[C any](requires, ensures formula.Formula[C]) Spec[C] {
	return Spec[C]{Requires: orTrue(requires), Ensures: orTrue(ensures)}
}

// Ensuring builds a Spec with no precondition.
func Ensuring[C any](ensures formula.Formula[C]) Spec[C] {
	return NewSpec(formula.True[C](), ensures)
}

func (s Spec[C]) AssumeRequires(b formula.Backend, pre *C) {
	orTrue(s.Requires).Assume(b, pre)
}

func (s Spec[C]) CheckEnsures(b formula.Backend, post, pre *C) {
	orTrue(s.Ensures).AssertWithStates(b, post, pre)
}

func (s Spec[C]) String() string {
	return fmt.Sprintf("requires %s ensures %s", orTrue(s.Requires), orTrue(s.Ensures))
}

// InvariantSpec assumes Assumption and Invariant on the pre-state and
// re-asserts only Invariant on the post-state. The assumption is a one-time
// precondition, not a standing invariant.
type InvariantSpec[C any] struct {
	Assumption formula.Formula[C]
	Invariant  formula.Formula[C]
}

var _ Contract[struct{}] = InvariantSpec[struct{}]{}

// NewInvariantSpec builds an InvariantSpec. A nil side is replaced by formula.True.
func NewInvariantSpec[C any](assumption, invariant formula.Formula[C]) InvariantSpec[C] {
	return InvariantSpec[C]{Assumption: orTrue(assumption), Invariant: orTrue(invariant)}
}

// Invariant builds an InvariantSpec with no extra assumption.
func Invariant[C any](invariant formula.Formula[C]) InvariantSpec[C] {
	return NewInvariantSpec(formula.True[C](), invariant)
}

func (s InvariantSpec[C]) AssumeRequires(b formula.Backend, pre *C) {
	orTrue(s.Assumption).Assume(b, pre)
	orTrue(s.Invariant).Assume(b, pre)
}

// CheckEnsures asserts the invariant on post only. pre is accepted so
// InvariantSpec satisfies Contract; it is not read.
func (s InvariantSpec[C]) CheckEnsures(b formula.Backend, post, _ *C) {
	orTrue(s.Invariant).Assert(b, post)
}

func (s InvariantSpec[C]) String() string {
	return fmt.Sprintf("assuming %s preserves %s", orTrue(s.Assumption), orTrue(s.Invariant))
}

// CheckOperation drives a contract around op: it assumes the precondition on
// pre, runs op to obtain the post-state and checks the postcondition on
// (post, pre). The post-state is returned for further checks.
func CheckOperation[C any](b formula.Backend, c Contract[C], pre *C, op func(pre *C) C) C {
	c.AssumeRequires(b, pre)
	post := op(pre)
	c.CheckEnsures(b, &post, pre)
	return post
}

func orTrue[C any](f formula.Formula[C]) formula.Formula[C] {
	if f == nil {
		return formula.True[C]()
	}
	return f
}
