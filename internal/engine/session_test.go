package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gnolang/formal/formula"
)

type point struct {
	X, Y int
}

var (
	xPositive = formula.Func("x > 0", func(p *point) bool { return p.X > 0 })
	yPositive = formula.Func("y > 0", func(p *point) bool { return p.Y > 0 })
)

func TestSessionPass(t *testing.T) {
	t.Parallel()
	s := NewSession(false)
	assert.Len(t, s.ID, 12)

	out := s.Run(func(b formula.Backend) {
		formula.And(xPositive, yPositive).Assert(b, &point{X: 1, Y: 1})
	})

	assert.Equal(t, Pass, out.Verdict)
	assert.Equal(t, 2, out.Assertions)
	assert.Empty(t, out.Failures)
	assert.Equal(t, s.ID, out.Session)
}

func TestSessionRecordsEveryFailure(t *testing.T) {
	t.Parallel()
	s := NewSession(false)

	out := s.Run(func(b formula.Backend) {
		formula.And(xPositive, yPositive).Assert(b, &point{X: -1, Y: -1})
	})

	assert.Equal(t, Fail, out.Verdict)
	assert.Equal(t, []Failure{
		{Message: "x > 0", Assertion: 1},
		{Message: "y > 0", Assertion: 2},
	}, out.Failures)
	assert.Equal(t, []string{"x > 0", "y > 0"}, out.Messages())
	assert.Equal(t, "#2 y > 0", out.Failures[1].String())
}

func TestSessionFailFast(t *testing.T) {
	t.Parallel()
	s := NewSession(true)
	reached := false

	out := s.Run(func(b formula.Backend) {
		formula.And(xPositive, yPositive).Assert(b, &point{X: -1, Y: -1})
		reached = true
	})

	assert.Equal(t, Fail, out.Verdict)
	assert.Len(t, out.Failures, 1)
	assert.False(t, reached)
}

func TestSessionPrunesOnFalseAssumption(t *testing.T) {
	t.Parallel()
	s := NewSession(false)
	reached := false

	out := s.Run(func(b formula.Backend) {
		xPositive.Assume(b, &point{X: -1})
		reached = true
		b.Assert(false, "unreachable")
	})

	assert.Equal(t, Vacuous, out.Verdict)
	assert.Equal(t, "x > 0", out.PrunedBy)
	assert.Equal(t, 1, out.Assumptions)
	assert.Zero(t, out.Assertions)
	assert.False(t, reached)
}

func TestSessionFailureBeforePruneStillFails(t *testing.T) {
	t.Parallel()
	s := NewSession(false)

	out := s.Run(func(b formula.Backend) {
		b.Assert(false, "early")
		b.Assume(false, "late")
	})

	assert.Equal(t, Fail, out.Verdict)
	assert.Equal(t, "late", out.PrunedBy)
}

func TestSessionPropagatesForeignPanics(t *testing.T) {
	t.Parallel()
	s := NewSession(false)
	other := NewSession(false)

	assert.PanicsWithValue(t, "boom", func() {
		s.Run(func(formula.Backend) { panic("boom") })
	})

	// an abort raised by another session is not swallowed
	assert.Panics(t, func() {
		s.Run(func(formula.Backend) { other.Assume(false, "other") })
	})
}

func TestVerdictString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "pass", Pass.String())
	assert.Equal(t, "fail", Fail.String())
	assert.Equal(t, "vacuous", Vacuous.String())
	assert.Equal(t, "?", Verdict(0).String())
}
