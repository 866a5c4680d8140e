package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/reportcal/internal/calendar"
	"github.com/alexanderramin/reportcal/internal/cli"
	"github.com/alexanderramin/reportcal/internal/db"
	"github.com/alexanderramin/reportcal/internal/notify"
	"github.com/alexanderramin/reportcal/internal/repository"
	"github.com/alexanderramin/reportcal/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Determine DB path: env var or default ~/.reportcal/reportcal.db
	dbPath := os.Getenv("REPORTCAL_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".reportcal", "reportcal.db")
	}

	weekStart := time.Sunday
	if raw := os.Getenv("REPORTCAL_WEEK_START"); raw != "" {
		d, err := calendar.ParseWeekStart(raw)
		if err != nil {
			return fmt.Errorf("REPORTCAL_WEEK_START: %w", err)
		}
		weekStart = d
	}

	var logOut io.Writer = io.Discard
	if os.Getenv("REPORTCAL_LOG") == "1" {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	kvRepo := repository.NewSQLiteKVRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Remote notification stays off unless an endpoint is configured.
	notifyCfg := notify.LoadConfig()
	var observer notify.Observer = notify.NoopObserver{}
	if notifyCfg.LogCalls {
		observer = notify.NewLogObserver(os.Stderr)
	}
	if notifyCfg.Usable() {
		identity, err := service.ResolveIdentity(ctx, kvRepo, notifyCfg.Identity)
		if err != nil {
			return fmt.Errorf("resolving identity: %w", err)
		}
		notifyCfg.Identity = identity
	}

	reports := service.NewReportService(kvRepo, eventRepo, uow,
		notify.New(notifyCfg, observer),
		service.NewLogUseCaseObserver(logger))
	defer reports.Close()

	if err := reports.Load(ctx); err != nil {
		return fmt.Errorf("loading reports: %w", err)
	}

	app := &cli.App{
		Reports:     reports,
		WeekStart:   weekStart,
		Location:    time.Local,
		Interactive: isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).Execute()
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
