package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vuongmanhnghia/sailfmt/internal/app"
	"github.com/vuongmanhnghia/sailfmt/internal/config"
	"github.com/vuongmanhnghia/sailfmt/internal/errors"
	"github.com/vuongmanhnghia/sailfmt/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	formatter := app.New(cfg, log)
	opts := formatter.DefaultOptions()

	var (
		field      string
		durationMs int64
	)
	flag.StringVar(&opts.Format, "format", opts.Format, "input format: json or yaml")
	flag.IntVar(&opts.ImageSize, "size", opts.ImageSize, "preferred cover size in pixels")
	flag.IntVar(&opts.PageSize, "per-page", opts.PageSize, "tracks per page with -list")
	flag.IntVar(&opts.Page, "page", opts.Page, "page to show with -list (1-based)")
	flag.BoolVar(&opts.List, "list", false, "input is an array or page of tracks")
	flag.BoolVar(&opts.Rows, "rows", false, "input is a JSON array of objects with name/url fields")
	flag.StringVar(&opts.Filter, "filter", "", "with -rows: keep rows where role=value, or drop them with role!=value")
	flag.StringVar(&opts.Sort, "sort", "", "with -rows: sort by role, prefix with - for descending")
	flag.StringVar(&field, "field", "", "print a single value: title, artists, duration, cover, query or isrc")
	flag.Int64Var(&opts.PositionMs, "position", -1, "render the track as now playing at this position (ms)")
	flag.Int64Var(&durationMs, "duration", -1, "format a millisecond duration and exit")
	flag.Parse()

	opts.Field = app.Field(field)

	if err := run(formatter, opts, durationMs, flag.Arg(0)); err != nil {
		fail(log, err)
	}
}

// run keeps every deferred cleanup inside, so fail can exit afterwards
func run(formatter *app.Formatter, opts app.Options, durationMs int64, arg string) error {
	if durationMs >= 0 {
		return formatter.FormatDuration(os.Stdout, durationMs)
	}
	if app.IsLink(arg) {
		return formatter.Identify(os.Stdout, arg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if arg != "" && arg != "-" {
		return formatter.RunFile(ctx, arg, os.Stdout, opts)
	}
	return formatter.Run(ctx, os.Stdin, os.Stdout, opts)
}

func fail(log *logger.Logger, err error) {
	log.WithError(err).Debug("Formatting failed")
	fmt.Fprintln(os.Stderr, errors.GetUserMessage(err))
	os.Exit(1)
}
