package workout

import (
	"fmt"
	"time"
)

// Level is the fitness skill tier that selects the exercise catalog.
type Level int

const (
	LevelBeginner     Level = 1
	LevelIntermediate Level = 2
	LevelAdvanced     Level = 3
)

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	return l >= LevelBeginner && l <= LevelAdvanced
}

func (l Level) String() string {
	switch l {
	case LevelBeginner:
		return "Beginner"
	case LevelIntermediate:
		return "Intermediate"
	case LevelAdvanced:
		return "Advanced"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Intensity is the user's subjective difficulty preference. It is collected but does not affect generation.
type Intensity int

const (
	IntensityCasual   Intensity = 1
	IntensityAverage  Intensity = 2
	IntensityHardcore Intensity = 3
)

// Valid reports whether i is one of the three known intensities.
func (i Intensity) Valid() bool {
	return i >= IntensityCasual && i <= IntensityHardcore
}

func (i Intensity) String() string {
	switch i {
	case IntensityCasual:
		return "Casual"
	case IntensityAverage:
		return "Average"
	case IntensityHardcore:
		return "Hardcore"
	default:
		return fmt.Sprintf("Intensity(%d)", int(i))
	}
}

// Preferences is everything the user answered, in metric units.
type Preferences struct {
	CurrentWeightKg   float64
	HeightM           float64
	GoalWeightKg      float64
	Intensity         Intensity
	Level             Level
	Days              int
	MinutesPerSession int
	DailyCalories     int
}

// Day is the routine scheduled for one weekday.
type Day struct {
	Weekday time.Weekday
	Routine DayRoutine
}

// Week is the generated routine, one Day per requested training day starting on Monday.
type Week struct {
	Level             Level
	MinutesPerSession int
	Days              []Day
}

// weekdays lists the labels in the order they are assigned to generated days.
var weekdays = [MaxDays]time.Weekday{ //nolint:gochecknoglobals // read-only table
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// Weekdays returns the first n training weekdays starting from Monday.
func Weekdays(n int) []time.Weekday {
	n = min(max(n, 0), MaxDays)
	out := make([]time.Weekday, n)
	copy(out, weekdays[:n])
	return out
}
