package model

import "github.com/shopspring/decimal"

// Summary is a read-only snapshot of an account's totals
type Summary struct {
	Kind          string // expenses or loans
	Budget        decimal.Decimal
	Balance       decimal.Decimal
	TotalSpent    decimal.Decimal
	TotalDeposits decimal.Decimal
	Entries       int
}
