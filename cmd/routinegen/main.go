package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/myrjola/routinegen/internal/collector"
	"github.com/myrjola/routinegen/internal/envstruct"
	"github.com/myrjola/routinegen/internal/errors"
	"github.com/myrjola/routinegen/internal/i18n"
	"github.com/myrjola/routinegen/internal/logging"
	"github.com/myrjola/routinegen/internal/random"
	"github.com/myrjola/routinegen/internal/render"
	"github.com/myrjola/routinegen/internal/workout"
)

type config struct {
	// Seed makes the generated routine reproducible. Zero picks a fresh seed that is logged at info level.
	Seed uint64 `env:"ROUTINEGEN_SEED" envDefault:"0"`
	// Format is the routine output format: text, markdown or html.
	Format string `env:"ROUTINEGEN_FORMAT" envDefault:"text"`
	// Language of the prompts, en or fi.
	Language string `env:"ROUTINEGEN_LANGUAGE" envDefault:"en"`
	// MaxAttempts limits invalid answers per question. Zero asks forever.
	MaxAttempts int `env:"ROUTINEGEN_MAX_ATTEMPTS" envDefault:"0"`
	// LogLevel of the diagnostics written to stderr.
	LogLevel string `env:"ROUTINEGEN_LOG_LEVEL" envDefault:"warn"`
}

func run(
	ctx context.Context,
	logger *slog.Logger,
	logLevel *slog.LevelVar,
	stdin io.Reader,
	stdout io.Writer,
	lookupEnv func(string) (string, bool),
) error {
	var (
		cfg config
		err error
	)
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	var level slog.Level
	if level, err = logging.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "parse log level")
	}
	logLevel.Set(level)

	var lang i18n.Language
	if lang, err = i18n.ParseLanguage(cfg.Language); err != nil {
		return errors.Wrap(err, "parse language")
	}

	var renderWeek render.Func
	if renderWeek, err = render.ByName(cfg.Format); err != nil {
		return errors.Wrap(err, "parse format")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = random.NewSeed()
	}
	ctx = logging.WithAttrs(ctx, slog.String("run_id", uuid.NewString()))
	logger.LogAttrs(ctx, slog.LevelInfo, "starting routine generator",
		slog.Uint64("seed", seed), slog.String("format", cfg.Format), slog.String("language", string(lang)))

	c := collector.New(stdin, stdout, collector.Config{
		Language:    lang,
		MaxAttempts: cfg.MaxAttempts,
		Logger:      logger,
	})
	var prefs workout.Preferences
	if prefs, err = c.Collect(ctx); err != nil {
		return errors.Wrap(err, "collect preferences")
	}

	var gen *workout.Generator
	if gen, err = workout.NewGeneratorFromPreferences(prefs, random.New(seed), logger); err != nil {
		return errors.Wrap(err, "new generator")
	}
	week := gen.GenerateWeek(ctx)

	if err = renderWeek(stdout, week); err != nil {
		return errors.Wrap(err, "render routine", slog.String("format", cfg.Format))
	}
	return nil
}

// recoverPanic calls fn and returns a recovered panic as an error carrying the stack trace.
func recoverPanic(fn func() error) (err error) {
	defer func() {
		if excp := recover(); excp != nil {
			err = errors.DecoratePanic(excp)
		}
	}()
	return fn()
}

func main() {
	ctx := context.Background()
	var logLevel slog.LevelVar
	logLevel.Set(slog.LevelWarn)
	logger := logging.NewLogger(os.Stderr, &logLevel)
	err := recoverPanic(func() error {
		return run(ctx, logger, &logLevel, os.Stdin, os.Stdout, os.LookupEnv)
	})
	if err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure generating routine", errors.SlogError(err))
		os.Exit(1)
	}
}
