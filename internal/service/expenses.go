package service

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-tracker/internal/model"
	"github.com/chucky-1/finance-tracker/internal/repository"
)

// Expenses is the account that money is spent from
type Expenses struct {
	ledger
	entries []model.Expense
}

func NewExpenses(budget decimal.Decimal, opts ...Option) (*Expenses, error) {
	l, err := newLedger(model.KindExpenses, budget, opts)
	if err != nil {
		return nil, err
	}
	return &Expenses{
		ledger: l,
	}, nil
}

func (e *Expenses) Add(amount decimal.Decimal, category, description string) (model.Expense, error) {
	if err := checkAmount(amount); err != nil {
		return model.Expense{}, fmt.Errorf("expenses couldn't add %s: %w", amount, err)
	}
	entry := model.Expense{
		ID:          uuid.New(),
		Date:        e.now(),
		Amount:      amount,
		Category:    category,
		Description: description,
	}
	e.entries = append(e.entries, entry)
	e.spend(amount)

	logrus.WithFields(logrus.Fields{
		"id":       entry.ID,
		"amount":   entry.Amount.String(),
		"category": entry.Category,
	}).Info("expense added")
	return entry, nil
}

func (e *Expenses) Summarize() model.Summary {
	return e.summary(len(e.entries))
}

// Entries returns a copy of the expense log in insertion order
func (e *Expenses) Entries() []model.Expense {
	return slices.Clone(e.entries)
}

// ByCategory sums the log per category, in the order categories first appeared
func (e *Expenses) ByCategory() []model.CategoryAmount {
	index := make(map[string]int)
	var result []model.CategoryAmount
	for _, entry := range e.entries {
		i, ok := index[entry.Category]
		if !ok {
			index[entry.Category] = len(result)
			result = append(result, model.CategoryAmount{Name: entry.Category, Amount: entry.Amount})
			continue
		}
		result[i].Amount = result[i].Amount.Add(entry.Amount)
	}
	return result
}

// Export writes the whole log to path through the exporter
func (e *Expenses) Export(exporter repository.Exporter, path string) error {
	if err := exporter.Save(path, e.Entries()); err != nil {
		return fmt.Errorf("expenses couldn't export to %s: %w", path, err)
	}
	logrus.Infof("%d expenses exported to %s", len(e.entries), path)
	return nil
}
