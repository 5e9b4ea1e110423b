package formula

import (
	"github.com/stretchr/testify/mock"
)

type point struct {
	X, Y int
}

var (
	xPositive = Func("x > 0", func(p *point) bool { return p.X > 0 })
	yPositive = Func("y > 0", func(p *point) bool { return p.Y > 0 })
)

type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Assert(cond bool, msg string) {
	m.Called(cond, msg)
}

func (m *mockBackend) Assume(cond bool, msg string) {
	m.Called(cond, msg)
}

// recordingBackend keeps every primitive call in order.
type recordingBackend struct {
	calls []call
}

type call struct {
	op   string
	cond bool
	msg  string
}

func (r *recordingBackend) Assert(cond bool, msg string) {
	r.calls = append(r.calls, call{op: "assert", cond: cond, msg: msg})
}

func (r *recordingBackend) Assume(cond bool, msg string) {
	r.calls = append(r.calls, call{op: "assume", cond: cond, msg: msg})
}

// stub is a formula with a fixed truth value that counts how often each
// mode was invoked.
type stub struct {
	name  string
	value bool

	evals, asserts, assumes             int
	pairEvals, pairAsserts, pairAssumes int
}

func newStub(name string, value bool) *stub {
	return &stub{name: name, value: value}
}

func (s *stub) Eval(*point) bool {
	s.evals++
	return s.value
}

func (s *stub) Assert(b Backend, _ *point) {
	s.asserts++
	b.Assert(s.value, s.name)
}

func (s *stub) Assume(b Backend, _ *point) {
	s.assumes++
	b.Assume(s.value, s.name)
}

func (s *stub) EvalWithStates(_, _ *point) bool {
	s.pairEvals++
	return s.value
}

func (s *stub) AssertWithStates(b Backend, _, _ *point) {
	s.pairAsserts++
	b.Assert(s.value, s.name)
}

func (s *stub) AssumeWithStates(b Backend, _, _ *point) {
	s.pairAssumes++
	b.Assume(s.value, s.name)
}

func (s *stub) String() string { return s.name }
