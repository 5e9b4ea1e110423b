package rules

import (
	"errors"

	"go.uber.org/zap/zapcore"
)

// Point is a position in the plane.
type Point struct {
	X, Y int
}

func (p Point) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("x", p.X)
	enc.AddInt("y", p.Y)
	return nil
}

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrOverLimit         = errors.New("deposit exceeds account limit")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Account is a balance capped by a limit.
type Account struct {
	Balance int64
	Limit   int64
}

func (a Account) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("balance", a.Balance)
	enc.AddInt64("limit", a.Limit)
	return nil
}

// Deposit returns the account with amount added. The account is unchanged
// when an error is returned.
func (a Account) Deposit(amount int64) (Account, error) {
	if amount <= 0 {
		return a, ErrNonPositiveAmount
	}
	if a.Balance > a.Limit-amount {
		return a, ErrOverLimit
	}
	a.Balance += amount
	return a, nil
}

// Withdraw returns the account with amount removed. The account is unchanged
// when an error is returned.
func (a Account) Withdraw(amount int64) (Account, error) {
	if amount <= 0 {
		return a, ErrNonPositiveAmount
	}
	if amount > a.Balance {
		return a, ErrInsufficientFunds
	}
	a.Balance -= amount
	return a, nil
}

// Txn is an account together with the amount of a pending operation.
type Txn struct {
	Account Account
	Amount  int64
}

func (t Txn) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	if err := enc.AddObject("account", t.Account); err != nil {
		return err
	}
	enc.AddInt64("amount", t.Amount)
	return nil
}
