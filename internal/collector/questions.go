package collector

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/myrjola/routinegen/internal/errors"
	"github.com/myrjola/routinegen/internal/i18n"
	"github.com/myrjola/routinegen/internal/workout"
)

// Unit selects the unit system the measurements were given in.
type Unit int

const (
	// UnitKgFeet means weights in kilograms and height in feet.
	UnitKgFeet Unit = 1
	// UnitPoundMeter means weights in pounds and height in meters.
	UnitPoundMeter Unit = 2
	// UnitKgMeter means metric units, no conversion needed.
	UnitKgMeter Unit = 3
)

const (
	// MetersPerFoot converts feet to meters.
	MetersPerFoot = 0.3048
	// PoundsPerKg converts pounds to kilograms.
	PoundsPerKg = 2.205
)

// Measurements are the user's body metrics in kilograms and meters.
type Measurements struct {
	WeightKg     float64
	HeightM      float64
	GoalWeightKg float64
}

// Convert returns the raw answers converted to kilograms and meters according to u.
func (u Unit) Convert(weight, height, goalWeight float64) Measurements {
	switch u {
	case UnitKgFeet:
		height *= MetersPerFoot
	case UnitPoundMeter:
		weight /= PoundsPerKg
		goalWeight /= PoundsPerKg
	case UnitKgMeter:
	}
	return Measurements{WeightKg: weight, HeightM: height, GoalWeightKg: goalWeight}
}

// CollectMeasurements asks for weight, height, goal weight and their unit.
// Any invalid answer restarts the whole group of questions.
func (c *Collector) CollectMeasurements() (Measurements, error) {
	c.println(Separator)
	return retry(c, "measurements", func() (Measurements, error) {
		var raw [3]float64
		for i, key := range []string{i18n.PromptWeight, i18n.PromptHeight, i18n.PromptGoalWeight} {
			line, err := c.ask(key)
			if err != nil {
				return Measurements{}, err
			}
			if raw[i], err = parseFloat(line); err != nil {
				return Measurements{}, err
			}
		}
		if raw[0] <= 0 || raw[1] <= 0 || raw[2] <= 0 {
			return Measurements{}, reject(i18n.ErrPositiveValues)
		}

		line, err := c.ask(i18n.PromptUnit)
		if err != nil {
			return Measurements{}, err
		}
		selector, err := ParseInt(line)
		if err != nil {
			return Measurements{}, reject(i18n.ErrNumbers)
		}
		unit := Unit(selector)
		if unit < UnitKgFeet || unit > UnitKgMeter {
			return Measurements{}, reject(i18n.ErrOneTwoThree)
		}
		return unit.Convert(raw[0], raw[1], raw[2]), nil
	})
}

// menu prints the separator and the labeled options numbered from 1.
func (c *Collector) menu(titleKey string, optionKeys ...string) {
	labels := make([]string, len(optionKeys))
	for i, key := range optionKeys {
		labels[i] = c.t(key) + "(" + strconv.Itoa(i+1) + ")"
	}
	c.println(Separator)
	c.println(c.t(titleKey) + strings.Join(labels, " | "))
}

// CollectIntensity asks for the workout intensity.
func (c *Collector) CollectIntensity() (workout.Intensity, error) {
	c.menu(i18n.MenuIntensities, i18n.IntensityCasual, i18n.IntensityAverage, i18n.IntensityHardcore)
	v, err := ReadValidated(c, i18n.PromptIntensity, ParseInt, between(1, 3, i18n.ErrOneTwoThree))
	return workout.Intensity(v), err
}

// CollectLevel asks for the fitness level.
func (c *Collector) CollectLevel() (workout.Level, error) {
	c.menu(i18n.MenuLevels, i18n.LevelBeginner, i18n.LevelIntermediate, i18n.LevelAdvanced)
	v, err := ReadValidated(c, i18n.PromptLevel, ParseInt, between(1, 3, i18n.ErrOneTwoThree))
	return workout.Level(v), err
}

// CollectDays asks for the number of training days per week.
func (c *Collector) CollectDays() (int, error) {
	c.println(Separator)
	return ReadValidated(c, i18n.PromptDays, ParseInt, between(1, workout.MaxDays, i18n.ErrDaysRange))
}

// CollectTime asks for the minutes available per session.
func (c *Collector) CollectTime() (int, error) {
	c.println(Separator)
	return ReadValidated(c, i18n.PromptTime, ParseInt, positive)
}

// CollectCalories asks for the average daily calorie intake.
func (c *Collector) CollectCalories() (int, error) {
	c.println(Separator)
	return ReadValidated(c, i18n.PromptCalories, ParseInt, positive)
}

// Collect asks every question in order and returns the completed preferences.
func (c *Collector) Collect(ctx context.Context) (workout.Preferences, error) {
	var (
		prefs workout.Preferences
		err   error
	)

	m, err := c.CollectMeasurements()
	if err != nil {
		return workout.Preferences{}, errors.Wrap(err, "collect measurements")
	}
	prefs.CurrentWeightKg, prefs.HeightM, prefs.GoalWeightKg = m.WeightKg, m.HeightM, m.GoalWeightKg

	if prefs.Intensity, err = c.CollectIntensity(); err != nil {
		return workout.Preferences{}, errors.Wrap(err, "collect intensity")
	}
	if prefs.Level, err = c.CollectLevel(); err != nil {
		return workout.Preferences{}, errors.Wrap(err, "collect level")
	}
	if prefs.Days, err = c.CollectDays(); err != nil {
		return workout.Preferences{}, errors.Wrap(err, "collect days")
	}
	if prefs.MinutesPerSession, err = c.CollectTime(); err != nil {
		return workout.Preferences{}, errors.Wrap(err, "collect time")
	}
	if prefs.DailyCalories, err = c.CollectCalories(); err != nil {
		return workout.Preferences{}, errors.Wrap(err, "collect calories")
	}

	c.logger.LogAttrs(ctx, slog.LevelInfo, "preferences collected",
		slog.String("intensity", prefs.Intensity.String()),
		slog.String("level", prefs.Level.String()),
		slog.Int("days", prefs.Days),
		slog.Int("minutes_per_session", prefs.MinutesPerSession),
	)
	return prefs, nil
}
