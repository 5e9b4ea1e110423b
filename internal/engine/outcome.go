package engine

import "fmt"

// Verdict is the result of a verification run or of a whole rule.
type Verdict int

const (
	_ Verdict = iota
	// Pass indicates every assertion held.
	Pass
	// Fail indicates at least one assertion did not hold.
	Fail
	// Vacuous indicates the assumptions left no state to check.
	Vacuous
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Vacuous:
		return "vacuous"
	default:
		return "?"
	}
}

// Failure is one assertion that did not hold.
type Failure struct {
	Message string
	// Assertion is the 1-based index of the assertion within its run.
	Assertion int
}

func (f Failure) String() string {
	return fmt.Sprintf("#%d %s", f.Assertion, f.Message)
}

// Outcome summarizes one verification run.
type Outcome struct {
	Verdict     Verdict
	Session     string
	Failures    []Failure
	Assertions  int
	Assumptions int
	// PrunedBy is the assumption that ended the run, if any.
	PrunedBy string
}

// Messages returns the failure messages in the order they were found.
func (o Outcome) Messages() []string {
	msgs := make([]string, 0, len(o.Failures))
	for _, f := range o.Failures {
		msgs = append(msgs, f.Message)
	}
	return msgs
}
