package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/DaanHessen/smallheath/internal/api"
	"github.com/DaanHessen/smallheath/internal/ledger"
	"github.com/DaanHessen/smallheath/internal/persona"
	"github.com/DaanHessen/smallheath/internal/prefs"
	"github.com/DaanHessen/smallheath/internal/store"
	"github.com/DaanHessen/smallheath/internal/telemetry"
	"github.com/DaanHessen/smallheath/internal/text"
	"github.com/DaanHessen/smallheath/internal/ui"
	"github.com/DaanHessen/smallheath/internal/util"
)

var version = "0.1.0"

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg, err := util.Load()
	if err != nil {
		return err
	}
	flag.StringVar(&cfg.DSN, "dsn", cfg.DSN, "Ledger store DSN (sqlite3://path or postgres://...)")
	flag.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Log file for the terminal UI")
	flag.StringVar(&cfg.Listen, "listen", cfg.Listen, "Address for the serve command")
	flag.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "Keep everything in memory; nothing is written")
	flag.BoolVar(&cfg.NoIntro, "no-intro", cfg.NoIntro, "Skip the splash screen")
	style := flag.String("style", "dark", "Glamour style for rendered pages")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "smallheath [--dsn DSN] [--ephemeral] [--no-intro] | serve [--listen ADDR] | migrate up|down | reset-intro | ledger reset | version\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	args := flag.Args()
	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "", "serve", "reset-intro", "ledger":
	case "version":
		fmt.Println("smallheath", version)
		return nil
	case "migrate":
		if len(args) < 2 {
			return errors.New("migrate requires 'up' or 'down'")
		}
		return runMigrate(ctx, cfg.DSN, args[1])
	default:
		flag.Usage()
		return errors.Errorf("unknown command %q", cmd)
	}

	logger, closeLog, err := newLogger(cfg, cmd == "serve")
	if err != nil {
		return err
	}
	defer closeLog()

	kv, closeKV, err := openKV(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeKV()

	switch cmd {
	case "reset-intro":
		prefs.Load(ctx, kv, logger).ResetIntro(ctx)
		fmt.Println("The intro will play on next launch")
		return nil
	case "ledger":
		if len(args) < 2 || args[1] != "reset" {
			return errors.New("ledger requires 'reset'")
		}
		ledger.Open(ctx, kv, ledger.WithLogger(logger)).Reset(ctx)
		fmt.Println("Ledger restored to the original collection")
		return nil
	}

	personas := persona.Load(ctx, kv, persona.WithLogger(logger))
	book := ledger.Open(ctx, kv, ledger.WithLogger(logger))
	metrics := telemetry.New()
	unwatch := metrics.Watch(personas)
	defer unwatch()

	if cmd == "serve" {
		srv := api.NewServer(personas, book, metrics, logger)
		logger.Info("serving", slog.String("addr", cfg.Listen))
		return srv.Serve(ctx, cfg.Listen)
	}
	deps := ui.Deps{
		Personas: personas,
		Ledger:   book,
		Prefs:    prefs.Load(ctx, kv, logger),
		Metrics:  metrics,
		Renderer: text.WithFallback(text.NewGlamour(*style), text.NewPlain()),
		Log:      logger,
	}
	return ui.Run(ctx, deps, cfg)
}

func runMigrate(ctx context.Context, dsn, action string) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	migrator, err := store.NewMigrator(dsn)
	if err != nil {
		return err
	}
	switch action {
	case "up":
		if err := migrator.Up(ctx); err != nil && !errors.Is(err, store.ErrNoChange) {
			return err
		}
		fmt.Println("Migrations applied")
	case "down":
		if err := migrator.Down(ctx); err != nil && !errors.Is(err, store.ErrNoChange) {
			return err
		}
		fmt.Println("Migrations rolled back")
	default:
		return errors.Errorf("unknown migrate action %q; use up|down", action)
	}
	return nil
}

// newLogger writes JSON to stderr for the server. The terminal UI owns the
// screen, so it logs to a file instead.
func newLogger(cfg util.Config, server bool) (*slog.Logger, func(), error) {
	if server {
		return slog.New(slog.NewJSONHandler(os.Stderr, nil)), func() {}, nil
	}
	if cfg.Ephemeral {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "log directory")
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open log")
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { _ = f.Close() }, nil
}

// openKV migrates and opens the configured store, or an in-memory one when ephemeral.
func openKV(ctx context.Context, cfg util.Config, logger *slog.Logger) (store.KeyValue, func(), error) {
	if cfg.Ephemeral {
		logger.Info("ephemeral store")
		return store.NewMemKV(), func() {}, nil
	}

	// Ensure migrations are present and applied before anything reads the store
	mig, err := store.NewMigrator(cfg.DSN)
	if err != nil {
		return nil, nil, errors.Wrap(err, "migrations init")
	}
	migCtx, cancelMig := context.WithTimeout(ctx, 30*time.Second)
	defer cancelMig()
	if err := mig.Up(migCtx); err != nil && !errors.Is(err, store.ErrNoChange) {
		return nil, nil, errors.Wrap(err, "migrations")
	}

	db, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, nil, errors.Wrap(err, "open database")
	}
	return store.NewKVRepo(db), func() { _ = db.Close() }, nil
}
