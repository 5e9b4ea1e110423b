package contract

import "github.com/gnolang/formal/formula"

type point struct {
	X, Y int
}

var (
	xPositive = formula.Func("x > 0", func(p *point) bool { return p.X > 0 })
	yPositive = formula.Func("y > 0", func(p *point) bool { return p.Y > 0 })
	grew      = formula.PairFunc("x > old.x", func(cur, old *point) bool { return cur.X > old.X })
	wasPos    = formula.PairFunc("old.x > 0", func(_, old *point) bool { return old.X > 0 })
)

type call struct {
	op   string
	cond bool
	msg  string
}

// recordingBackend keeps every primitive call in order. When pruning is set,
// a false assumption ends the run like a concrete backend would.
type recordingBackend struct {
	calls   []call
	pruning bool
}

type pruned struct{}

func (r *recordingBackend) Assert(cond bool, msg string) {
	r.calls = append(r.calls, call{op: "assert", cond: cond, msg: msg})
}

func (r *recordingBackend) Assume(cond bool, msg string) {
	r.calls = append(r.calls, call{op: "assume", cond: cond, msg: msg})
	if r.pruning && !cond {
		panic(pruned{})
	}
}

func (r *recordingBackend) failed() bool {
	for _, c := range r.calls {
		if c.op == "assert" && !c.cond {
			return true
		}
	}
	return false
}

// run executes fn and reports whether the run was pruned.
func (r *recordingBackend) run(fn func(b formula.Backend)) (wasPruned bool) {
	defer func() {
		if v := recover(); v != nil {
			if _, ok := v.(pruned); !ok {
				panic(v)
			}
			wasPruned = true
		}
	}()
	fn(r)
	return false
}
