package rules

import "github.com/gnolang/formal/formula"

// Point formulas.
var (
	XPositive   = formula.Func("x > 0", func(p *Point) bool { return p.X > 0 })
	YPositive   = formula.Func("y > 0", func(p *Point) bool { return p.Y > 0 })
	SumPositive = formula.Func("x + y > 0", func(p *Point) bool { return p.X+p.Y > 0 })
	XAboveY     = formula.Func("x > y", func(p *Point) bool { return p.X > p.Y })
	GapPositive = formula.Func("x - y > 0", func(p *Point) bool { return p.X-p.Y > 0 })
)

// Txn formulas.
var (
	AmountPositive = formula.Func("amount > 0", func(t *Txn) bool { return t.Amount > 0 })
	Covered        = formula.Func("amount <= balance", func(t *Txn) bool { return t.Amount <= t.Account.Balance })

	WithinLimit = formula.Func("0 <= balance <= limit", func(t *Txn) bool {
		return t.Account.Balance >= 0 && t.Account.Balance <= t.Account.Limit
	})

	DepositFits = formula.Func("balance + amount <= limit", func(t *Txn) bool {
		return t.Account.Balance <= t.Account.Limit-t.Amount
	})
)

// Two-state Txn formulas read the post-state first and the pre-state second.
var (
	Credited = formula.PairFunc("balance == old.balance + old.amount", func(post, pre *Txn) bool {
		return post.Account.Balance == pre.Account.Balance+pre.Amount
	})

	Debited = formula.PairFunc("balance == old.balance - old.amount", func(post, pre *Txn) bool {
		return post.Account.Balance == pre.Account.Balance-pre.Amount
	})

	LimitKept = formula.PairFunc("limit == old.limit", func(post, pre *Txn) bool {
		return post.Account.Limit == pre.Account.Limit
	})
)
