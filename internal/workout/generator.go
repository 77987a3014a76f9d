// Package workout generates randomized weekly exercise routines sized to the user's available time.
package workout

import (
	"context"
	"log/slog"

	"github.com/myrjola/routinegen/internal/errors"
	"github.com/myrjola/routinegen/internal/logging"
	"github.com/myrjola/routinegen/internal/random"
)

const (
	// MaxDays is the number of weekdays a routine can span.
	MaxDays = 7
	// MaxExerciseDraws caps the number of exercise draws per day.
	MaxExerciseDraws = 20
)

var (
	ErrInvalidLevel   = errors.NewSentinel("invalid level")
	ErrInvalidMinutes = errors.NewSentinel("minutes per session must be positive")
	ErrInvalidDays    = errors.NewSentinel("days must be between 1 and 7")
)

// Generator builds day routines whose durations add up to the minutes per session.
type Generator struct {
	level             Level
	minutesPerSession int
	days              int
	catalog           []string
	src               random.Source
	logger            *slog.Logger
}

// NewGenerator constructs a routine generator for the given preferences.
func NewGenerator(level Level, minutesPerSession, days int, src random.Source, logger *slog.Logger) (*Generator, error) {
	if !level.Valid() {
		return nil, errors.Wrap(ErrInvalidLevel, "new generator", slog.Int("level", int(level)))
	}
	if minutesPerSession <= 0 {
		return nil, errors.Wrap(ErrInvalidMinutes, "new generator", slog.Int("minutes", minutesPerSession))
	}
	if days < 1 || days > MaxDays {
		return nil, errors.Wrap(ErrInvalidDays, "new generator", slog.Int("days", days))
	}
	if src == nil {
		return nil, errors.New("random source is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		level:             level,
		minutesPerSession: minutesPerSession,
		days:              days,
		catalog:           Catalog(level),
		src:               src,
		logger:            logger,
	}, nil
}

// NewGeneratorFromPreferences constructs a generator from the level, time and days the user chose.
func NewGeneratorFromPreferences(prefs Preferences, src random.Source, logger *slog.Logger) (*Generator, error) {
	return NewGenerator(prefs.Level, prefs.MinutesPerSession, prefs.Days, src, logger)
}

// GenerateWeek generates one independent routine per requested day, labelled Monday onwards.
func (g *Generator) GenerateWeek(ctx context.Context) Week {
	week := Week{
		Level:             g.level,
		MinutesPerSession: g.minutesPerSession,
		Days:              make([]Day, 0, g.days),
	}
	for _, weekday := range Weekdays(g.days) {
		dayCtx := logging.WithAttrs(ctx, slog.String("weekday", weekday.String()))
		week.Days = append(week.Days, Day{
			Weekday: weekday,
			Routine: g.GenerateDay(dayCtx),
		})
	}
	return week
}

// GenerateDay draws a random set of exercises and adjusts their minutes until the total matches the target.
//
// Repeated draws of the same exercise overwrite its minutes, so a day can contain fewer exercises than draws.
// Trimming takes one minute at a time and stops at the target, so a positive target never empties the day.
func (g *Generator) GenerateDay(ctx context.Context) DayRoutine {
	var routine DayRoutine

	draws := g.src.IntRange(1, min(MaxExerciseDraws, len(g.catalog)))
	lo, hi := DurationRange(g.minutesPerSession)
	for range draws {
		name := g.src.Choice(g.catalog)
		routine.Set(name, g.src.IntRange(lo, hi))
	}

	drawnTotal := routine.Total()
	switch {
	case drawnTotal > g.minutesPerSession:
		g.reduce(&routine)
	case drawnTotal < g.minutesPerSession:
		g.increase(&routine)
	}

	g.logger.LogAttrs(ctx, slog.LevelDebug, "day generated",
		slog.Int("draws", draws),
		slog.Int("drawn_total", drawnTotal),
		slog.Int("exercises", routine.Len()),
		slog.Int("total", routine.Total()),
	)
	return routine
}

// reduce takes a minute from random exercises until the total fits, dropping exercises that reach zero.
func (g *Generator) reduce(routine *DayRoutine) {
	for routine.Len() > 0 && routine.Total() > g.minutesPerSession {
		name := g.src.Choice(routine.Names())
		if minutes, _ := routine.Add(name, -1); minutes <= 0 {
			routine.Remove(name)
		}
	}
}

// increase adds a minute to random exercises until the total matches. An empty routine stays empty.
func (g *Generator) increase(routine *DayRoutine) {
	for routine.Len() > 0 && routine.Total() < g.minutesPerSession {
		name := g.src.Choice(routine.Names())
		routine.Add(name, 1)
	}
}

// DurationRange returns the inclusive range of minutes drawn per exercise for a session length.
func DurationRange(minutesPerSession int) (int, int) {
	switch {
	case minutesPerSession <= 15: //nolint:mnd // short session
		return 1, 5 //nolint:mnd // minutes
	case minutesPerSession <= 30: //nolint:mnd // half an hour
		return 2, 7 //nolint:mnd // minutes
	case minutesPerSession <= 60: //nolint:mnd // an hour
		return 2, 10 //nolint:mnd // minutes
	default:
		return 2, 15 //nolint:mnd // minutes
	}
}
