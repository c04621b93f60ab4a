package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/tetris/internal/config"
	"github.com/tomz197/tetris/internal/loop"
)

func main() {
	settings := config.LoadSettings()

	flag.DurationVar(&settings.TickDelay, "delay", settings.TickDelay, "delay between ticks")
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "piece sequence seed (0 seeds from the clock)")
	flag.StringVar(&settings.LogFile, "log", settings.LogFile, "write logs to this file")
	flag.StringVar(&settings.LogLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [delay-ms]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := applyDelayArg(&settings, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log: %v\n", err)
		os.Exit(1)
	}

	err = run(settings, logger)
	if err != nil {
		logger.Error("game error", "err", err)
	}
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		if errors.Is(err, loop.ErrTerminalTooSmall) {
			os.Exit(3)
		}
		os.Exit(1)
	}
}

// applyDelayArg overrides the tick delay with a bare positional argument.
// Only the format is checked; any parsed value is used as given.
func applyDelayArg(settings *config.Settings, arg string) error {
	if arg == "" {
		return nil
	}
	d, err := config.ParseDelay(arg)
	if err != nil {
		return fmt.Errorf("invalid delay %q: %w", arg, err)
	}
	settings.TickDelay = d
	return nil
}

func run(settings config.Settings, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	return loop.Run(reader, os.Stdout, loop.Options{
		Settings: settings,
		Logger:   logger,
	})
}

// newLogger writes to the configured log file. The terminal belongs to the
// game, so without a file logs are discarded.
func newLogger(settings config.Settings) (*log.Logger, func(), error) {
	var (
		w       io.Writer = io.Discard
		closeFn           = func() {}
	)
	if settings.LogFile != "" {
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	level, err := log.ParseLevel(settings.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "tetris",
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}
