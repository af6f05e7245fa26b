package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/chucky-1/finance-tracker/internal/config"
	"github.com/chucky-1/finance-tracker/internal/consumer"
	"github.com/chucky-1/finance-tracker/internal/producer"
	"github.com/chucky-1/finance-tracker/internal/repository"
)

// chart labels and amounts take about this many columns next to the bars
const chartLabelColumns = 36

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()
	go func() {
		// a second interrupt falls back to the default behaviour and kills the process
		<-ctx.Done()
		stop()
	}()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetLevel(cfg.Level())

	if err = run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		logrus.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.Config, stdin io.Reader, stdout io.Writer) error {
	input := consumer.NewInput(stdin, stdout, cfg.Currency)
	dashboard := producer.NewDashboard(stdout, cfg.Currency, chartWidth(cfg.ChartWidth, stdout))
	session := consumer.NewSession(input, dashboard, repository.NewCSV(), stdout, cfg.ExportPath)
	return session.Run(ctx)
}

// chartWidth shrinks the configured width so the bars fit the terminal
func chartWidth(configured int, out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return configured
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		logrus.Debugf("couldn't get terminal size: %v", err)
		return configured
	}
	return max(min(configured, cols-chartLabelColumns), 10)
}
