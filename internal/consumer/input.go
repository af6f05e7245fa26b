package consumer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrInvalidInputFormat = errors.New("invalid input format")

const (
	invalidInputMessage   = "Invalid input. Please try again."
	invalidBudgetMessage  = "Budget must be a positive number."
	negativeAmountMessage = "Amount must not be negative."
	invalidDateMessage    = "Invalid date format. Please enter return date as YYYY-MM-DD."
	invalidChoiceMessage  = "Invalid choice. Please try again."
)

type ExpenseInput struct {
	Amount      decimal.Decimal
	Category    string
	Description string
}

type LoanInput struct {
	Lender     string
	Amount     decimal.Decimal
	ReturnDate string
}

// Input reads answers to prompts line by line. Every prompt is retried until the answer parses,
// only the end of the input stream is returned as an error.
type Input struct {
	scanner  *bufio.Scanner
	out      io.Writer
	currency string
}

func NewInput(in io.Reader, out io.Writer, currency string) *Input {
	return &Input{
		scanner:  bufio.NewScanner(in),
		out:      out,
		currency: currency,
	}
}

func (i *Input) Budget() (decimal.Decimal, error) {
	for {
		line, err := i.ask(fmt.Sprintf("Enter your initial budget (%s): ", i.currency))
		if err != nil {
			return decimal.Zero, err
		}
		budget, err := ParseAmount(line)
		if err != nil {
			logrus.Debugf("input couldn't parse budget: %v", err)
			i.say(invalidInputMessage)
			continue
		}
		if !budget.IsPositive() {
			i.say(invalidBudgetMessage)
			continue
		}
		return budget, nil
	}
}

func (i *Input) Expense() (ExpenseInput, error) {
	amount, err := i.amount("Enter expense amount: ")
	if err != nil {
		return ExpenseInput{}, err
	}
	category, err := i.ask("Enter category (e.g., food, rent): ")
	if err != nil {
		return ExpenseInput{}, err
	}
	description, err := i.ask("Enter description: ")
	if err != nil {
		return ExpenseInput{}, err
	}
	return ExpenseInput{
		Amount:      amount,
		Category:    category,
		Description: description,
	}, nil
}

// Loan leaves the return date unchecked, the loan account validates it
func (i *Input) Loan() (LoanInput, error) {
	lender, err := i.ask("Enter lender name: ")
	if err != nil {
		return LoanInput{}, err
	}
	amount, err := i.amount("Enter loan amount: ")
	if err != nil {
		return LoanInput{}, err
	}
	returnDate, err := i.ask("Enter return date (YYYY-MM-DD): ")
	if err != nil {
		return LoanInput{}, err
	}
	return LoanInput{
		Lender:     lender,
		Amount:     amount,
		ReturnDate: returnDate,
	}, nil
}

func (i *Input) Choice() (string, error) {
	return i.ask("Choose an option: ")
}

func (i *Input) amount(prompt string) (decimal.Decimal, error) {
	for {
		line, err := i.ask(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amount, err := ParseAmount(line)
		if err != nil {
			logrus.Debugf("input couldn't parse amount: %v", err)
			i.say(invalidInputMessage)
			continue
		}
		if amount.IsNegative() {
			i.say(negativeAmountMessage)
			continue
		}
		return amount, nil
	}
}

func (i *Input) ask(prompt string) (string, error) {
	if _, err := fmt.Fprint(i.out, prompt); err != nil {
		return "", fmt.Errorf("input couldn't write prompt: %w", err)
	}
	if !i.scanner.Scan() {
		if err := i.scanner.Err(); err != nil {
			return "", fmt.Errorf("input couldn't read line: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(i.scanner.Text()), nil
}

func (i *Input) say(message string) {
	if _, err := fmt.Fprintln(i.out, message); err != nil {
		logrus.Errorf("input couldn't write message: %v", err)
	}
}

// ParseAmount reads a decimal number written with either a dot or a comma as separator
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty amount", ErrInvalidInputFormat)
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidInputFormat, s)
	}
	return amount, nil
}
