package repository

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/chucky-1/finance-tracker/internal/model"
)

//go:generate mockery --name=Exporter

// Exporter persists the expense log
type Exporter interface {
	Save(path string, expenses []model.Expense) error
}

const timestampLayout = "2006-01-02 15:04:05"

var header = []string{"date", "amount", "category", "description"}

// CSV writes the expense log as a csv file with a header row
type CSV struct{}

func NewCSV() *CSV {
	return &CSV{}
}

// Save creates missing parent directories and overwrites whatever is at path
func (c *CSV) Save(path string, expenses []model.Expense) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("csv repository couldn't create directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv repository couldn't create file %s: %w", path, err)
	}
	if err = c.Write(f, expenses); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("csv repository couldn't close file %s: %w", path, err)
	}
	return nil
}

func (c *CSV) Write(out io.Writer, expenses []model.Expense) error {
	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("csv repository couldn't write header: %w", err)
	}
	for _, e := range expenses {
		row := []string{
			e.Date.Format(timestampLayout),
			e.Amount.String(),
			e.Category,
			e.Description,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv repository couldn't write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv repository couldn't flush: %w", err)
	}
	return nil
}
