package consumer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/chucky-1/finance-tracker/internal/producer"
	"github.com/chucky-1/finance-tracker/internal/repository"
	"github.com/chucky-1/finance-tracker/internal/service"
)

const (
	addExpense    = "1"
	addLoan       = "2"
	viewDashboard = "3"
	exit          = "4"
)

const menu = "\nOptions:\n" +
	"1. Add Expense\n" +
	"2. Add Loan\n" +
	"3. View Dashboard\n" +
	"4. Exit\n"

// Session is the menu loop. It owns both accounts for as long as it runs.
type Session struct {
	input      *Input
	dashboard  *producer.Dashboard
	exporter   repository.Exporter
	exportPath string
	out        io.Writer
	now        func() time.Time

	expenses *service.Expenses
	loans    *service.Loans
}

func NewSession(input *Input, dashboard *producer.Dashboard, exporter repository.Exporter, out io.Writer, exportPath string) *Session {
	return &Session{
		input:      input,
		dashboard:  dashboard,
		exporter:   exporter,
		exportPath: exportPath,
		out:        out,
		now:        time.Now,
	}
}

// Run asks for the budget and then serves the menu until the user exits, the input ends or ctx is done.
// Leaving the loop exports the expense log; only an export failure is returned.
func (s *Session) Run(ctx context.Context) error {
	logrus.Info("session started")
	s.say("Welcome to Personal Finance Tracker!")

	if err := s.open(); err != nil {
		if errors.Is(err, io.EOF) {
			logrus.Info("session stopped before a budget was entered")
			return nil
		}
		return err
	}

	for {
		if ctx.Err() != nil {
			logrus.Infof("session stopped: %v", ctx.Err())
			return s.exit()
		}

		s.printf("%s", menu)
		choice, err := s.input.Choice()
		if err != nil {
			return s.stop(err)
		}

		switch choice {
		case addExpense:
			if err = s.addExpense(); err != nil {
				return s.stop(err)
			}
		case addLoan:
			if err = s.addLoan(); err != nil {
				return s.stop(err)
			}
		case viewDashboard:
			s.dashboard.Render(s.expenses, s.loans, s.now())
		case exit:
			return s.exit()
		default:
			logrus.Debugf("session received unknown choice: %q", choice)
			s.say(invalidChoiceMessage)
		}
	}
}

func (s *Session) open() error {
	for {
		budget, err := s.input.Budget()
		if err != nil {
			return err
		}

		expenses, err := service.NewExpenses(budget)
		if errors.Is(err, service.ErrInvalidBudget) {
			s.say(invalidBudgetMessage)
			continue
		}
		if err != nil {
			return fmt.Errorf("session couldn't create expense account: %w", err)
		}
		loans, err := service.NewLoans(budget)
		if err != nil {
			return fmt.Errorf("session couldn't create loan account: %w", err)
		}

		s.expenses, s.loans = expenses, loans
		logrus.Infof("session opened accounts with budget %s", budget)
		return nil
	}
}

func (s *Session) addExpense() error {
	in, err := s.input.Expense()
	if err != nil {
		return err
	}
	if _, err = s.expenses.Add(in.Amount, in.Category, in.Description); err != nil {
		logrus.Warnf("session couldn't add expense: %v", err)
		s.say(negativeAmountMessage)
	}
	return nil
}

func (s *Session) addLoan() error {
	in, err := s.input.Loan()
	if err != nil {
		return err
	}
	_, err = s.loans.Add(in.Lender, in.Amount, in.ReturnDate)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidDate):
		logrus.Warnf("session dropped loan: %v", err)
		s.say(invalidDateMessage)
	case errors.Is(err, service.ErrInvalidAmount):
		logrus.Warnf("session dropped loan: %v", err)
		s.say(negativeAmountMessage)
	default:
		return fmt.Errorf("session couldn't add loan: %w", err)
	}
	return nil
}

// stop ends the session on a read failure. Running out of input counts as choosing to exit.
func (s *Session) stop(err error) error {
	if !errors.Is(err, io.EOF) {
		logrus.Errorf("session couldn't read input: %v", err)
	}
	return s.exit()
}

func (s *Session) exit() error {
	s.say("Exiting... Have a good day!")
	if err := s.expenses.Export(s.exporter, s.exportPath); err != nil {
		return err
	}
	s.printf("Expenses saved to %s\n", s.exportPath)
	return nil
}

func (s *Session) say(message string) {
	s.printf("%s\n", message)
}

func (s *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		logrus.Errorf("session couldn't write: %v", err)
	}
}
