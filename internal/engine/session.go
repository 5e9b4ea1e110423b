package engine

import (
	"github.com/google/uuid"

	"github.com/gnolang/formal/formula"
)

// Session is a formula.Backend for a single concrete verification run.
//
// A false assertion is recorded and, unless FailFast is set, the run keeps
// going so later clauses are still checked. A false assumption prunes the run:
// a concrete execution cannot continue outside the assumed state space, so
// the remainder of the run is skipped and it counts as vacuous.
//
// A Session must not be shared between goroutines.
type Session struct {
	ID       string
	FailFast bool

	failures    []Failure
	assertions  int
	assumptions int
	prunedBy    string
	pruned      bool
}

var _ formula.Backend = (*Session)(nil)

// abort unwinds a run; it is recovered by the Run of the session that raised it.
type abort struct {
	session *Session
}

// NewSession creates a session with a fresh short id.
func NewSession(failFast bool) *Session {
	return &Session{
		ID:       uuid.NewString()[:12],
		FailFast: failFast,
	}
}

func (s *Session) Assert(cond bool, msg string) {
	s.assertions++
	if cond {
		return
	}
	s.failures = append(s.failures, Failure{Message: msg, Assertion: s.assertions})
	if s.FailFast {
		panic(abort{session: s})
	}
}

func (s *Session) Assume(cond bool, msg string) {
	s.assumptions++
	if cond {
		return
	}
	s.pruned = true
	s.prunedBy = msg
	panic(abort{session: s})
}

// Run executes fn against the session. Only the session's own abort is
// recovered; any other panic propagates to the caller.
func (s *Session) Run(fn func(b formula.Backend)) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			if a, ok := r.(abort); !ok || a.session != s {
				panic(r)
			}
			out = s.Outcome()
		}
	}()
	fn(s)
	return s.Outcome()
}

// Outcome reports the state of the session so far. Recorded failures win
// over pruning: an assertion that failed before the run was pruned still
// fails the run.
func (s *Session) Outcome() Outcome {
	verdict := Pass
	switch {
	case len(s.failures) > 0:
		verdict = Fail
	case s.pruned:
		verdict = Vacuous
	}
	return Outcome{
		Verdict:     verdict,
		Session:     s.ID,
		Failures:    append([]Failure(nil), s.failures...),
		Assertions:  s.assertions,
		Assumptions: s.assumptions,
		PrunedBy:    s.prunedBy,
	}
}
