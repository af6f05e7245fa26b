package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	KindExpenses = "expenses"
	KindLoans    = "loans"
)

// DateLayout is the format of loan return dates
const DateLayout = "2006-01-02"

// Expense is one record of money spent
type Expense struct {
	ID          uuid.UUID
	Date        time.Time
	Amount      decimal.Decimal
	Category    string
	Description string
}

// Loan is one record of borrowed money
type Loan struct {
	ID         uuid.UUID
	Lender     string
	Amount     decimal.Decimal
	DateTaken  time.Time
	ReturnDate time.Time
}

type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}
