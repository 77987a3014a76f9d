// Package i18n holds the prompts and validation messages shown by the preference collector.
package i18n

import (
	"log/slog"

	"github.com/myrjola/routinegen/internal/errors"
)

// Language represents a supported language.
type Language string

const (
	// English is the English language.
	English Language = "en"
	// Finnish is the Finnish language.
	Finnish Language = "fi"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = Language(English)

// ErrUnsupportedLanguage is returned by [ParseLanguage] for codes without translations.
var ErrUnsupportedLanguage = errors.NewSentinel("unsupported language")

// Message keys.
const (
	PromptWeight       = "prompt.weight"
	PromptHeight       = "prompt.height"
	PromptGoalWeight   = "prompt.goal_weight"
	PromptUnit         = "prompt.unit"
	PromptIntensity    = "prompt.intensity"
	PromptLevel        = "prompt.level"
	PromptDays         = "prompt.days"
	PromptTime         = "prompt.time"
	PromptCalories     = "prompt.calories"
	MenuIntensities    = "menu.intensities"
	MenuLevels         = "menu.levels"
	IntensityCasual    = "intensity.casual"
	IntensityAverage   = "intensity.average"
	IntensityHardcore  = "intensity.hardcore"
	LevelBeginner      = "level.beginner"
	LevelIntermediate  = "level.intermediate"
	LevelAdvanced      = "level.advanced"
	ErrNumber          = "error.number"
	ErrNumbers         = "error.numbers"
	ErrPositiveValues  = "error.positive_values"
	ErrPositiveNumber  = "error.positive_number"
	ErrOneTwoThree     = "error.one_two_three"
	ErrDaysRange       = "error.days_range"
	ErrTooManyAttempts = "error.too_many_attempts"
)

// translations maps language codes to translation keys and their values.
var translations = map[Language]map[string]string{ //nolint:gochecknoglobals // read-only table
	English: {
		PromptWeight:       "Enter your weight: ",
		PromptHeight:       "Enter your height: ",
		PromptGoalWeight:   "Enter your goal weight: ",
		PromptUnit:         "Enter your measure unit, kg/feet(1), pound/m(2), kg/m(3): ",
		PromptIntensity:    "Enter the level of intensity you want (1, 2, 3): ",
		PromptLevel:        "Enter the level you are (1, 2, 3): ",
		PromptDays:         "Enter the number of days you want to workout in a week (1-7): ",
		PromptTime:         "Enter the time you can allocate to workouts (minutes): ",
		PromptCalories:     "Enter the amount of calories you consume on average: ",
		MenuIntensities:    "Intensities: ",
		MenuLevels:         "Levels: ",
		IntensityCasual:    "Casual",
		IntensityAverage:   "Average",
		IntensityHardcore:  "Hardcore",
		LevelBeginner:      "Beginner",
		LevelIntermediate:  "Intermediate",
		LevelAdvanced:      "Advanced",
		ErrNumber:          "Please enter a valid number!",
		ErrNumbers:         "Please enter valid numbers!",
		ErrPositiveValues:  "Please enter positive values!",
		ErrPositiveNumber:  "Please enter a positive number!",
		ErrOneTwoThree:     "Please enter 1, 2, or 3!",
		ErrDaysRange:       "Please enter a number between 1 and 7!",
		ErrTooManyAttempts: "Too many invalid answers, giving up.",
	},
	Finnish: {
		PromptWeight:       "Anna painosi: ",
		PromptHeight:       "Anna pituutesi: ",
		PromptGoalWeight:   "Anna tavoitepainosi: ",
		PromptUnit:         "Anna mittayksikkö, kg/jalat(1), paunat/m(2), kg/m(3): ",
		PromptIntensity:    "Valitse haluamasi intensiteetti (1, 2, 3): ",
		PromptLevel:        "Valitse tasosi (1, 2, 3): ",
		PromptDays:         "Montako päivää viikossa haluat treenata (1-7): ",
		PromptTime:         "Paljonko aikaa voit käyttää treeniin (minuuttia): ",
		PromptCalories:     "Montako kaloria syöt keskimäärin päivässä: ",
		MenuIntensities:    "Intensiteetit: ",
		MenuLevels:         "Tasot: ",
		IntensityCasual:    "Rento",
		IntensityAverage:   "Keskitaso",
		IntensityHardcore:  "Kova",
		LevelBeginner:      "Aloittelija",
		LevelIntermediate:  "Keskitaso",
		LevelAdvanced:      "Edistynyt",
		ErrNumber:          "Anna kelvollinen luku!",
		ErrNumbers:         "Anna kelvolliset luvut!",
		ErrPositiveValues:  "Anna positiiviset arvot!",
		ErrPositiveNumber:  "Anna positiivinen luku!",
		ErrOneTwoThree:     "Anna 1, 2 tai 3!",
		ErrDaysRange:       "Anna luku väliltä 1-7!",
		ErrTooManyAttempts: "Liian monta virheellistä vastausta, lopetetaan.",
	},
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{English, Finnish}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// ParseLanguage validates a language code such as "en" or "fi".
func ParseLanguage(code string) (Language, error) {
	lang := Language(code)
	if !IsSupported(lang) {
		return DefaultLanguage, errors.Wrap(ErrUnsupportedLanguage, "parse language", slog.String("code", code))
	}
	return lang, nil
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	// Try the requested language.
	if langTranslations, ok := translations[lang]; ok {
		if translation, ok := langTranslations[key]; ok {
			return translation
		}
	}

	// Fallback to default language.
	if lang != DefaultLanguage {
		if langTranslations, ok := translations[DefaultLanguage]; ok {
			if translation, ok := langTranslations[key]; ok {
				return translation
			}
		}
	}

	// Return the key itself if no translation found.
	return key
}
