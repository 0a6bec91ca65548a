package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codeberg.org/mutker/faultctl/internal/condition"
	"codeberg.org/mutker/faultctl/internal/config"
	"codeberg.org/mutker/faultctl/internal/errors"
	"codeberg.org/mutker/faultctl/internal/journal"
	"codeberg.org/mutker/faultctl/internal/logger"
	"codeberg.org/mutker/faultctl/internal/pid"
)

var (
	cfg        *config.Config
	targetErrc condition.Errc
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Debug, cfg.Verbose, logger.IsService())

	level, err := logger.LevelFromString(cfg.LogLevel)
	if err != nil {
		logFatal(err, "invalid log level")
	}
	if !cfg.Debug && !cfg.Verbose {
		logger.SetLogLevel(level)
	}

	logger.Debug().Msg("Config loaded")

	targetErrc, err = condition.ParseErrc(cfg.Condition)
	if err != nil {
		logFatal(err, "unknown condition name")
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if cfg.Journal {
		if err := pid.Write(); err != nil {
			if errors.HasCode(err, errors.ErrAlreadyRunning) {
				logFatal(err, "another instance holds the fault journal")
			}
			logFatal(err, "failed to write PID file")
		}
		defer func() {
			if err := pid.Remove(); err != nil {
				logger.Error().Err(err).Msg("failed to remove PID file")
			}
		}()
	}

	recorder, err := journal.NewService(journal.Config{
		DBPath:  cfg.Database,
		Enabled: cfg.Journal,
	}, logger.New())
	if err != nil {
		logFatal(err, "failed to initialize fault journal")
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			logError(err, "failed to close fault journal")
		}
	}()

	err = fail(targetErrc)

	cond, ok := condition.FromError(err)
	if !ok {
		logger.Fatal().Err(err).Msg("operation failed without a classified condition")
	}

	report(cond)

	if err := recorder.Record(ctx, journal.NewEntry(cond, "fail")); err != nil {
		logError(err, "failed to record fault")
	}
}

// fail is the deliberately failing operation: it raises the configured
// condition and returns it to the caller inside the carrier.
func fail(c condition.Errc) error {
	return condition.NewError(condition.Make(c))
}

// report writes the caught condition to stderr: the integer value on
// the first line, the category name on the second. This output is the
// command's contract and is kept apart from the logger.
func report(cond condition.Condition) {
	fmt.Fprintln(os.Stderr, cond.Value())
	fmt.Fprintln(os.Stderr, cond.Category().Name())
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

// logFatal routes classified errors through the code-aware helper
func logFatal(err error, msg string) {
	var appErr errors.Error
	if errors.As(err, &appErr) {
		logger.FatalWithCode(appErr).Msg(msg)
		return
	}
	logger.Fatal().Err(err).Msg(msg)
}

func logError(err error, msg string) {
	var appErr errors.Error
	if errors.As(err, &appErr) {
		logger.ErrorWithCode(appErr).Msg(msg)
		return
	}
	logger.Error().Err(err).Msg(msg)
}
