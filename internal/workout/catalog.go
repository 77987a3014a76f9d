package workout

import "slices"

// CatalogSize is the number of exercises listed for every level.
const CatalogSize = 20

//nolint:gochecknoglobals // read-only catalogs
var (
	beginnerExercises = [CatalogSize]string{
		"Bodyweight Squats", "Push Ups", "Dumbbell Shoulder Press", "Seated Chest Press Machine",
		"Treadmill Walking", "Seated Row Machine", "Lat Pulldown Machine", "Stationary Bike",
		"Dumbbell Bicep Curls", "Dumbbell Tricep Extensions", "Leg Press Machine",
		"Seated Leg Curl Machine", "Standing Calf Raises", "Cable Rope Face Pulls",
		"Plank Hold", "Dead Bug Core Exercise", "Glute Bridges", "Dumbbell Lateral Raises",
		"Assisted Pull-Ups", "Stretching Routine",
	}
	intermediateExercises = [CatalogSize]string{
		"Barbell Back Squats", "Bench Press", "Romanian Deadlifts", "Bent-Over Barbell Rows",
		"Pull Ups", "Overhead Barbell Press", "Incline Dumbbell Chest Press", "Kettlebell Swings",
		"Jump Squats", "Bulgarian Split Squats", "Farmer's Carries", "Dumbbell Chest Fly",
		"Mountain Climbers", "Hanging Leg Raises", "Landmine Twists", "Cable Chest Flys",
		"Barbell Bicep Curls", "Skull Crushers", "Battle Ropes", "Plank to Push-up",
	}
	advancedExercises = [CatalogSize]string{
		"Barbell Deadlifts", "Clean and Press", "Snatch Grip Deadlifts", "Weighted Pull Ups",
		"Weighted Dips", "Box Jumps", "Barbell Hip Thrusts", "Front Squats", "Turkish Get Ups",
		"Handstand Push Ups", "Barbell Overhead Squats", "One Arm Dumbbell Snatch",
		"Sled Pushes or Pulls", "Kettlebell Clean & Press", "Barbell Rollouts", "Ring Dips",
		"Wall Balls", "Renegade Rows", "Pistol Squats", "CrossFit WODs",
	}
)

// Catalog returns a copy of the exercise names for the level. Unknown levels get the advanced catalog.
func Catalog(level Level) []string {
	switch level {
	case LevelBeginner:
		return slices.Clone(beginnerExercises[:])
	case LevelIntermediate:
		return slices.Clone(intermediateExercises[:])
	case LevelAdvanced:
		return slices.Clone(advancedExercises[:])
	default:
		return slices.Clone(advancedExercises[:])
	}
}

// InCatalog reports whether name is listed for the level.
func InCatalog(level Level, name string) bool {
	return slices.Contains(Catalog(level), name)
}
