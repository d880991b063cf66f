// Command foodweb analyzes GraphML food webs: extinction-cascade
// vulnerability rankings, centrality profiles, attack-tolerance curves,
// and per-web reports, with optional watch mode for freshly dropped
// files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/trophiclab/foodweb/internal/config"
	"github.com/trophiclab/foodweb/internal/driver"
	"github.com/trophiclab/foodweb/internal/metrics"
	"github.com/trophiclab/foodweb/internal/results"
	"github.com/trophiclab/foodweb/internal/results/postgres"
	"github.com/trophiclab/foodweb/internal/results/sqlite"
)

const (
	exitOK      = 0
	exitPartial = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run carries the whole lifecycle so exit codes stay testable.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("foodweb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "YAML config file")
		input      = fs.String("input", "", "override: .graphml file or directory")
		output     = fs.String("out", "", "override: report directory")
		watch      = fs.Bool("watch", false, "keep running, analyzing files dropped into the input directory")
		logLevel   = fs.String("log-level", "", "override: debug, info, warn, or error")
		logFormat  = fs.String("log-format", "", "override: text or json")
	)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	applyFlags(cfg, *input, *output, *watch, *logLevel, *logFormat)
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	if err := os.MkdirAll(cfg.Output, 0o750); err != nil {
		fmt.Fprintln(stderr, "create output dir:", err)
		return exitUsage
	}
	logFile, err := os.Create(filepath.Join(cfg.Output, "run.log"))
	if err != nil {
		fmt.Fprintln(stderr, "create run log:", err)
		return exitUsage
	}
	defer func() { _ = logFile.Close() }()

	log := newLogger(cfg.Log.Level, cfg.Log.Format, io.MultiWriter(stderr, logFile))
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store unavailable", "err", err)
		return exitUsage
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn("store close", "err", err)
		}
	}()

	if cfg.Metrics.Listen != "" {
		if _, err := metrics.Serve(ctx, cfg.Metrics.Listen, log); err != nil {
			log.Warn("metrics endpoint unavailable", "err", err)
		}
	}

	drv := driver.New(cfg, store, log)
	var stats driver.Stats
	if cfg.Watch {
		stats, err = drv.Watch(ctx)
	} else {
		stats, err = drv.Run(ctx)
	}
	if err != nil {
		log.Error("batch aborted", "err", err)
		if errors.Is(err, context.Canceled) {
			return exitPartial
		}
		return exitUsage
	}

	log.Info("batch done", "analyzed", stats.Analyzed, "failed", stats.Failed)
	if stats.Failed > 0 {
		return exitPartial
	}
	return exitOK
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// applyFlags lets command-line overrides win over the file.
func applyFlags(cfg *config.Config, input, output string, watch bool, level, format string) {
	if input != "" {
		cfg.Input = input
	}
	if output != "" {
		cfg.Output = output
	}
	if watch {
		cfg.Watch = true
	}
	if level != "" {
		cfg.Log.Level = level
	}
	if format != "" {
		cfg.Log.Format = format
	}
}

func openStore(ctx context.Context, cfg *config.Config) (results.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendMemory:
		return results.NewMemory(), nil
	case config.BackendPostgres:
		return postgres.NewStore(ctx, cfg.Store.DSN)
	default:
		return sqlite.NewStore(cfg.Store.Path)
	}
}

// newLogger builds an isolated slog.Logger; it never touches the global
// default itself.
func newLogger(levelStr, formatStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if formatStr == config.FormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
