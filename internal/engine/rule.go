package engine

import (
	"github.com/gnolang/formal/contract"
	"github.com/gnolang/formal/formula"
)

// Rule is one named verification check. Check performs a single iteration
// against the given backend; the engine repeats it with fresh sessions.
type Rule interface {
	Name() string
	Check(b formula.Backend)
}

// LemmaRule runs a lemma's Verify on every iteration.
func LemmaRule[C any](l *contract.Lemma[C]) Rule {
	return &lemmaRule[C]{lemma: l}
}

type lemmaRule[C any] struct {
	lemma *contract.Lemma[C]
}

func (r *lemmaRule[C]) Name() string            { return r.lemma.Name }
func (r *lemmaRule[C]) Check(b formula.Backend) { r.lemma.Verify(b) }
func (r *lemmaRule[C]) String() string          { return r.lemma.String() }

// OperationRule draws a pre-state from nondet and checks c around op.
func OperationRule[C any](name string, c contract.Contract[C], nondet contract.Nondet[C], op func(pre *C) C) Rule {
	return &operationRule[C]{name: name, contract: c, nondet: nondet, op: op}
}

type operationRule[C any] struct {
	name     string
	contract contract.Contract[C]
	nondet   contract.Nondet[C]
	op       func(pre *C) C
}

func (r *operationRule[C]) Name() string { return r.name }

func (r *operationRule[C]) Check(b formula.Backend) {
	pre := r.nondet.Generate()
	contract.CheckOperation(b, r.contract, &pre, r.op)
}

func (r *operationRule[C]) String() string {
	return describe(r.contract, r.name)
}

// RuleFunc adapts a function to Rule.
func RuleFunc(name string, fn func(b formula.Backend)) Rule {
	return funcRule{name: name, fn: fn}
}

type funcRule struct {
	name string
	fn   func(b formula.Backend)
}

func (r funcRule) Name() string            { return r.name }
func (r funcRule) Check(b formula.Backend) { r.fn(b) }

// Describe renders a rule for listings. Rules that implement fmt.Stringer
// describe themselves; others are listed by name.
func Describe(r Rule) string {
	return describe(r, r.Name())
}

func describe(v any, fallback string) string {
	if s, ok := v.(interface{ String() string }); ok {
		return s.String()
	}
	return fallback
}
