package service

import (
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/chucky-1/finance-tracker/internal/model"
)

func lenders(loans []model.Loan) []string {
	result := make([]string, 0, len(loans))
	for _, l := range loans {
		result = append(result, l.Lender)
	}
	return result
}

func TestLoans_Add(t *testing.T) {
	now := time.Date(2024, 5, 17, 14, 3, 0, 0, time.UTC)
	l, err := NewLoans(decimal.NewFromInt(500), fixedClock(now))
	require.NoError(t, err)

	loan, err := l.Add("Alice", decimal.NewFromInt(300), "2099-01-01")
	require.NoError(t, err)
	require.Equal(t, "Alice", loan.Lender)
	require.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), loan.DateTaken)
	require.Equal(t, time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC), loan.ReturnDate)

	s := l.Summarize()
	require.Equal(t, model.KindLoans, s.Kind)
	require.True(t, decimal.NewFromInt(300).Equal(s.TotalDeposits))
	require.True(t, decimal.NewFromInt(800).Equal(s.Balance))
	require.True(t, s.TotalSpent.IsZero())
	require.Equal(t, 1, s.Entries)

	_, err = l.Add("Bob", decimal.NewFromInt(100), "not-a-date")
	require.ErrorIs(t, err, ErrInvalidDate)

	s = l.Summarize()
	require.Equal(t, 1, s.Entries)
	require.True(t, decimal.NewFromInt(300).Equal(s.TotalDeposits))
	require.True(t, decimal.NewFromInt(800).Equal(s.Balance))
	require.Len(t, l.Entries(), 1)
}

func TestLoans_AddInvalidDates(t *testing.T) {
	for _, date := range []string{"", "2024-13-01", "2024-02-30", "01/02/2024", "2024-1-1", "tomorrow"} {
		t.Run(date, func(t *testing.T) {
			l, err := NewLoans(decimal.NewFromInt(100))
			require.NoError(t, err)

			_, err = l.Add("Carol", decimal.NewFromInt(50), date)
			require.ErrorIs(t, err, ErrInvalidDate)
			require.Empty(t, l.Entries())
			require.True(t, decimal.NewFromInt(100).Equal(l.Summarize().Balance))
		})
	}
}

func TestLoans_AddNegative(t *testing.T) {
	l, err := NewLoans(decimal.NewFromInt(100))
	require.NoError(t, err)

	_, err = l.Add("Dave", decimal.NewFromInt(-1), "2099-01-01")
	require.ErrorIs(t, err, ErrInvalidAmount)
	require.Empty(t, l.Entries())
}

func TestLoans_AddSeries(t *testing.T) {
	budget := decimal.NewFromInt(10)
	l, err := NewLoans(budget)
	require.NoError(t, err)

	sum := decimal.Zero
	for i, a := range []string{"1", "0", "2.5", "1000.75"} {
		amount := decimal.RequireFromString(a)
		sum = sum.Add(amount)
		_, err = l.Add("lender", amount, "2030-06-15")
		require.NoError(t, err)

		s := l.Summarize()
		require.Equal(t, i+1, s.Entries)
		require.True(t, sum.Equal(s.TotalDeposits))
		require.True(t, budget.Add(sum).Equal(s.Balance))
	}
}

func TestLoans_Upcoming(t *testing.T) {
	l, err := NewLoans(decimal.NewFromInt(100))
	require.NoError(t, err)

	for _, r := range []struct {
		lender string
		date   string
	}{
		{"late", "2030-01-01"},
		{"past", "2024-05-16"},
		{"today", "2024-05-17"},
		{"soon", "2024-06-01"},
	} {
		_, err = l.Add(r.lender, decimal.NewFromInt(10), r.date)
		require.NoError(t, err)
	}

	reference := time.Date(2024, 5, 17, 23, 59, 0, 0, time.UTC)
	seq := l.Upcoming(reference)

	first := slices.Collect(seq)
	require.Equal(t, []string{"late", "today", "soon"}, lenders(first))

	second := slices.Collect(seq)
	require.Equal(t, first, second)
}

func TestLoans_UpcomingStopsEarly(t *testing.T) {
	l, err := NewLoans(decimal.NewFromInt(100))
	require.NoError(t, err)
	for _, lender := range []string{"a", "b", "c"} {
		_, err = l.Add(lender, decimal.NewFromInt(1), "2099-01-01")
		require.NoError(t, err)
	}

	var seen []string
	for loan := range l.Upcoming(time.Now()) {
		seen = append(seen, loan.Lender)
		if len(seen) == 2 {
			break
		}
	}
	require.Equal(t, []string{"a", "b"}, seen)
}

func TestLoans_UpcomingEmpty(t *testing.T) {
	l, err := NewLoans(decimal.NewFromInt(100))
	require.NoError(t, err)
	require.Empty(t, slices.Collect(l.Upcoming(time.Now())))
}

func TestLoans_DailyLimit(t *testing.T) {
	l, err := NewLoans(decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = l.Add("Eve", decimal.NewFromInt(50), "2099-01-01")
	require.NoError(t, err)

	require.True(t, l.DailyLimit(0).IsZero())
	require.True(t, l.DailyLimit(-1).IsZero())
	require.True(t, decimal.NewFromInt(15).Equal(l.DailyLimit(10)))
}
