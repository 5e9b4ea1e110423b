package rules

import (
	"math/rand/v2"
	"sort"

	"github.com/gnolang/formal/contract"
	"github.com/gnolang/formal/formula"
	"github.com/gnolang/formal/internal/engine"
)

// Options seeds the generators of the built-in rules.
type Options struct {
	Seed   uint64
	Tracer contract.Tracer
}

type ruleConstructor func(opts Options) engine.Rule

type ruleMap map[string]ruleConstructor

var allRuleConstructors = ruleMap{
	"point-lemma":       NewPointLemmaRule,
	"account-deposit":   NewAccountDepositRule,
	"account-withdraw":  NewAccountWithdrawRule,
	"account-invariant": NewAccountInvariantRule,
}

// Names lists the built-in rules, sorted.
func Names() []string {
	names := make([]string, 0, len(allRuleConstructors))
	for name := range allRuleConstructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New constructs the built-in rule called name.
func New(name string, opts Options) (engine.Rule, bool) {
	cstr, ok := allRuleConstructors[name]
	if !ok {
		return nil, false
	}
	return cstr(opts), true
}

// Register adds every built-in rule to e.
func Register(e *engine.Engine, opts Options) {
	for _, name := range Names() {
		e.AddRule(allRuleConstructors[name](opts))
	}
}

func tracer(opts Options) contract.Tracer {
	if opts.Tracer == nil {
		return contract.NopTracer
	}
	return opts.Tracer
}

// PointLemma states that a point in the first quadrant has a positive sum,
// and a positive gap whenever it lies below the diagonal.
func PointLemma(nondet contract.Nondet[Point]) *contract.Lemma[Point] {
	return contract.NewLemma("point-lemma",
		func() formula.Formula[Point] { return formula.And(XPositive, YPositive) },
		func() formula.Formula[Point] {
			return formula.And(SumPositive, formula.Implies(XAboveY, GapPositive))
		},
		nondet,
	)
}

func randomPoint(r *rand.Rand) Point {
	return Point{X: contract.IntBetween(r, -3, 10), Y: contract.IntBetween(r, -3, 10)}
}

func NewPointLemmaRule(opts Options) engine.Rule {
	l := PointLemma(contract.Random(opts.Seed, randomPoint)).WithTracer(tracer(opts))
	return engine.LemmaRule(l)
}

func randomTxn(r *rand.Rand) Txn {
	limit := int64(contract.IntBetween(r, 0, 1000))
	return Txn{
		Account: Account{
			Balance: int64(contract.IntBetween(r, 0, int(limit))),
			Limit:   limit,
		},
		Amount: int64(contract.IntBetween(r, -50, 500)),
	}
}

// DepositSpec is the contract of Deposit.
func DepositSpec() contract.Spec[Txn] {
	return contract.NewSpec(
		formula.All(AmountPositive, WithinLimit, DepositFits),
		formula.All(Credited, LimitKept, WithinLimit),
	)
}

// WithdrawSpec is the contract of Withdraw.
func WithdrawSpec() contract.Spec[Txn] {
	return contract.NewSpec(
		formula.All(AmountPositive, WithinLimit, Covered),
		formula.All(Debited, LimitKept, WithinLimit),
	)
}

// BalanceInvariant keeps the balance within its limit across any operation
// with a positive amount.
func BalanceInvariant() contract.InvariantSpec[Txn] {
	return contract.NewInvariantSpec(AmountPositive, WithinLimit)
}

func deposit(pre *Txn) Txn {
	post := *pre
	post.Account, _ = pre.Account.Deposit(pre.Amount)
	return post
}

func withdraw(pre *Txn) Txn {
	post := *pre
	post.Account, _ = pre.Account.Withdraw(pre.Amount)
	return post
}

// settle deposits when the amount fits and withdraws otherwise. A rejected
// operation leaves the account untouched.
func settle(pre *Txn) Txn {
	if post := deposit(pre); post.Account != pre.Account {
		return post
	}
	return withdraw(pre)
}

func traced(opts Options, name string, nondet contract.Nondet[Txn]) contract.Nondet[Txn] {
	t := tracer(opts)
	return contract.NondetFunc[Txn](func() Txn {
		txn := nondet.Generate()
		t.Log(name+".context", txn)
		return txn
	})
}

func NewAccountDepositRule(opts Options) engine.Rule {
	nondet := traced(opts, "account-deposit", contract.Random(opts.Seed, randomTxn))
	return engine.OperationRule[Txn]("account-deposit", DepositSpec(), nondet, deposit)
}

func NewAccountWithdrawRule(opts Options) engine.Rule {
	nondet := traced(opts, "account-withdraw", contract.Random(opts.Seed, randomTxn))
	return engine.OperationRule[Txn]("account-withdraw", WithdrawSpec(), nondet, withdraw)
}

func NewAccountInvariantRule(opts Options) engine.Rule {
	nondet := traced(opts, "account-invariant", contract.Random(opts.Seed, randomTxn))
	return engine.OperationRule[Txn]("account-invariant", BalanceInvariant(), nondet, settle)
}
