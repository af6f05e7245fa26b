package producer

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chucky-1/finance-tracker/internal/model"
	"github.com/chucky-1/finance-tracker/internal/service"
)

// ErrEmptyDataset is returned when a chart has nothing to draw
var ErrEmptyDataset = errors.New("no expenses to display in the pie chart")

const barRune = "█"

var titleCaser = cases.Title(language.English)

type ExpenseSource interface {
	service.Account
	ByCategory() []model.CategoryAmount
}

type LoanSource interface {
	service.Account
	Upcoming(reference time.Time) iter.Seq[model.Loan]
}

type Styles struct {
	Heading lipgloss.Style
	Balance lipgloss.Style
	Spent   lipgloss.Style
	Slice   lipgloss.Style
	Muted   lipgloss.Style
}

func defaultStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().Bold(true),
		Balance: r.NewStyle().Foreground(lipgloss.Color("#00ff00")),
		Spent:   r.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		Slice:   r.NewStyle().Foreground(lipgloss.Color("#d29b1d")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("#828282")),
	}
}

// Dashboard renders account summaries and text charts
type Dashboard struct {
	out      io.Writer
	currency string
	width    int
	styles   Styles
}

func NewDashboard(out io.Writer, currency string, width int) *Dashboard {
	return &Dashboard{
		out:      out,
		currency: currency,
		width:    width,
		styles:   defaultStyles(lipgloss.NewRenderer(out)),
	}
}

// Render prints the whole dashboard: both summaries, the overview bars, the category breakdown,
// loans still to be returned and the daily limit for the rest of the month
func (d *Dashboard) Render(expenses ExpenseSource, loans LoanSource, now time.Time) {
	d.heading("Dashboard")
	d.Summary(expenses.Summarize())
	d.Summary(loans.Summarize())
	d.BarChart(expenses.Summarize())
	if err := d.PieChart(expenses.ByCategory()); err != nil {
		logrus.Debugf("dashboard skipped pie chart: %v", err)
	}
	d.UpcomingLoans(loans.Upcoming(now))
	days := DaysLeftInMonth(now)
	d.DailyLimit(expenses.DailyLimit(days), days)
}

func (d *Dashboard) Summary(s model.Summary) {
	switch s.Kind {
	case model.KindExpenses:
		d.heading("Expense Summary")
		d.printf("Total Spent: %s\n", d.money(s.TotalSpent))
		d.printf("Remaining Balance: %s\n", d.money(s.Balance))
	case model.KindLoans:
		d.heading("Loan Summary")
		d.printf("Total Deposits: %s\n", d.money(s.TotalDeposits))
		d.printf("Current Balance: %s\n", d.money(s.Balance))
	default:
		logrus.Errorf("dashboard received summary of unknown kind: %q", s.Kind)
	}
}

// BarChart compares the current balance with the total spent
func (d *Dashboard) BarChart(s model.Summary) {
	d.heading("Financial Overview")
	peak := decimal.Max(s.Balance, s.TotalSpent, decimal.Zero)
	rows := []struct {
		label string
		value decimal.Decimal
		style lipgloss.Style
	}{
		{"Current Balance", s.Balance, d.styles.Balance},
		{"Total Spent", s.TotalSpent, d.styles.Spent},
	}
	for _, row := range rows {
		d.printf("%-16s %s %s\n", row.label, row.style.Render(d.bar(row.value, peak)), d.money(row.value))
	}
}

// PieChart prints each category's share of the total spending
func (d *Dashboard) PieChart(categories []model.CategoryAmount) error {
	if len(categories) == 0 {
		d.printf("No expenses to display in the pie chart.\n")
		return ErrEmptyDataset
	}

	d.heading("Expense Distribution")
	total := decimal.Zero
	labelWidth := 0
	for _, c := range categories {
		total = total.Add(c.Amount)
		labelWidth = max(labelWidth, len(titleCaser.String(c.Name)))
	}
	for _, c := range categories {
		share := decimal.Zero
		if total.IsPositive() {
			share = c.Amount.Div(total)
		}
		percent, _ := share.Mul(decimal.NewFromInt(100)).Float64()
		d.printf("%-*s %5.1f%% %s %s\n",
			labelWidth, titleCaser.String(c.Name), percent,
			d.styles.Slice.Render(d.bar(c.Amount, total)), d.money(c.Amount))
	}
	return nil
}

func (d *Dashboard) UpcomingLoans(loans iter.Seq[model.Loan]) {
	d.heading("Upcoming Loans")
	found := false
	for loan := range loans {
		found = true
		d.printf("Lender: %s, Amount: %s, Return By: %s\n",
			loan.Lender, loan.Amount.StringFixed(2), loan.ReturnDate.Format(model.DateLayout))
	}
	if !found {
		d.printf("%s\n", d.styles.Muted.Render("No upcoming loans."))
	}
}

func (d *Dashboard) DailyLimit(limit decimal.Decimal, days int) {
	d.printf("\nDaily Limit: %s per day for the next %d day(s)\n", d.money(limit), days)
}

// DaysLeftInMonth counts the days from now to the end of its month, today included
func DaysLeftInMonth(now time.Time) int {
	lastDay := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Day()
	return lastDay - now.Day() + 1
}

func (d *Dashboard) bar(value, peak decimal.Decimal) string {
	if !value.IsPositive() || !peak.IsPositive() {
		return ""
	}
	n := value.Div(peak).Mul(decimal.NewFromInt(int64(d.width))).IntPart()
	return strings.Repeat(barRune, int(n))
}

func (d *Dashboard) money(v decimal.Decimal) string {
	return fmt.Sprintf("%s %s", v.StringFixed(2), d.currency)
}

func (d *Dashboard) heading(title string) {
	d.printf("\n%s\n", d.styles.Heading.Render(fmt.Sprintf("===== %s =====", title)))
}

func (d *Dashboard) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(d.out, format, args...); err != nil {
		logrus.Errorf("dashboard couldn't write: %v", err)
	}
}
