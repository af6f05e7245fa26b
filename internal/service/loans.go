package service

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-tracker/internal/model"
)

// Loans is the account that borrowed money is deposited into
type Loans struct {
	ledger
	entries []model.Loan
}

func NewLoans(budget decimal.Decimal, opts ...Option) (*Loans, error) {
	l, err := newLedger(model.KindLoans, budget, opts)
	if err != nil {
		return nil, err
	}
	return &Loans{
		ledger: l,
	}, nil
}

// Add records a loan. A return date that isn't YYYY-MM-DD drops the record and leaves the totals untouched.
func (l *Loans) Add(lender string, amount decimal.Decimal, returnDate string) (model.Loan, error) {
	due, err := time.Parse(model.DateLayout, strings.TrimSpace(returnDate))
	if err != nil {
		return model.Loan{}, fmt.Errorf("loans couldn't add loan from %s: %w: %q", lender, ErrInvalidDate, returnDate)
	}
	if err = checkAmount(amount); err != nil {
		return model.Loan{}, fmt.Errorf("loans couldn't add loan from %s: %w", lender, err)
	}

	now := l.now()
	loan := model.Loan{
		ID:         uuid.New(),
		Lender:     lender,
		Amount:     amount,
		DateTaken:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		ReturnDate: due,
	}
	l.entries = append(l.entries, loan)
	l.deposit(amount)

	logrus.WithFields(logrus.Fields{
		"id":          loan.ID,
		"lender":      loan.Lender,
		"amount":      loan.Amount.String(),
		"return_date": loan.ReturnDate.Format(model.DateLayout),
	}).Info("loan added")
	return loan, nil
}

func (l *Loans) Summarize() model.Summary {
	return l.summary(len(l.entries))
}

// Entries returns a copy of the loan log in insertion order
func (l *Loans) Entries() []model.Loan {
	return slices.Clone(l.entries)
}

// Upcoming yields the loans due on or after the reference day, in the order they were taken.
// The log is scanned on every iteration, so the sequence can be ranged over repeatedly.
func (l *Loans) Upcoming(reference time.Time) iter.Seq[model.Loan] {
	day := time.Date(reference.Year(), reference.Month(), reference.Day(), 0, 0, 0, 0, time.UTC)
	return func(yield func(model.Loan) bool) {
		for _, loan := range l.entries {
			if loan.ReturnDate.Before(day) {
				continue
			}
			if !yield(loan) {
				return
			}
		}
	}
}
