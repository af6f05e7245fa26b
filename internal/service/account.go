package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chucky-1/finance-tracker/internal/model"
)

var (
	ErrInvalidBudget = errors.New("budget must be a positive number")
	ErrInvalidAmount = errors.New("amount must not be negative")
	ErrInvalidDate   = errors.New("invalid date format, please enter date as YYYY-MM-DD")
)

// Account tracks a budget-derived balance over its own stream of records
type Account interface {
	Summarize() model.Summary
	DailyLimit(daysRemaining int) decimal.Decimal
}

type Option func(*ledger)

// WithClock replaces time.Now as the source of record timestamps
func WithClock(now func() time.Time) Option {
	return func(l *ledger) {
		l.now = now
	}
}

// ledger holds the state shared by both account kinds.
// balance == budget - totalSpent + totalDeposits
type ledger struct {
	kind          string
	budget        decimal.Decimal
	balance       decimal.Decimal
	totalSpent    decimal.Decimal
	totalDeposits decimal.Decimal
	now           func() time.Time
}

func newLedger(kind string, budget decimal.Decimal, opts []Option) (ledger, error) {
	if !budget.IsPositive() {
		return ledger{}, ErrInvalidBudget
	}
	l := ledger{
		kind:    kind,
		budget:  budget,
		balance: budget,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&l)
	}
	return l, nil
}

// DailyLimit splits the current balance evenly across the remaining days
func (l *ledger) DailyLimit(daysRemaining int) decimal.Decimal {
	if daysRemaining <= 0 {
		return decimal.Zero
	}
	return l.balance.Div(decimal.NewFromInt(int64(daysRemaining)))
}

func (l *ledger) spend(amount decimal.Decimal) {
	l.totalSpent = l.totalSpent.Add(amount)
	l.balance = l.balance.Sub(amount)
}

func (l *ledger) deposit(amount decimal.Decimal) {
	l.totalDeposits = l.totalDeposits.Add(amount)
	l.balance = l.balance.Add(amount)
}

func (l *ledger) summary(entries int) model.Summary {
	return model.Summary{
		Kind:          l.kind,
		Budget:        l.budget,
		Balance:       l.balance,
		TotalSpent:    l.totalSpent,
		TotalDeposits: l.totalDeposits,
		Entries:       entries,
	}
}

func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}

var (
	_ Account = (*Expenses)(nil)
	_ Account = (*Loans)(nil)
)
