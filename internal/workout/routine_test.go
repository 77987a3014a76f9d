package workout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/routinegen/internal/workout"
)

func TestDayRoutine(t *testing.T) {
	var r workout.DayRoutine
	if r.Len() != 0 || r.Total() != 0 {
		t.Fatalf("zero value not empty: len %d total %d", r.Len(), r.Total())
	}

	r.Set("Push Ups", 3)
	r.Set("Plank Hold", 4)
	r.Set("Glute Bridges", 2)
	r.Set("Push Ups", 6)

	want := []workout.Entry{
		{Name: "Push Ups", Minutes: 6},
		{Name: "Plank Hold", Minutes: 4},
		{Name: "Glute Bridges", Minutes: 2},
	}
	if diff := cmp.Diff(want, r.Entries()); diff != "" {
		t.Errorf("overwrite mismatch (-want +got):\n%s", diff)
	}
	if got := r.Total(); got != 12 {
		t.Errorf("Total() = %d, want 12", got)
	}

	if got, ok := r.Add("Plank Hold", -1); !ok || got != 3 {
		t.Errorf("Add(-1) = %d, %v, want 3, true", got, ok)
	}
	if _, ok := r.Add("Box Jumps", 1); ok {
		t.Error("Add on missing exercise reported ok")
	}

	r.Remove("Push Ups")
	r.Remove("Box Jumps")
	if diff := cmp.Diff([]string{"Plank Hold", "Glute Bridges"}, r.Names()); diff != "" {
		t.Errorf("Remove mismatch (-want +got):\n%s", diff)
	}
	if m, ok := r.Minutes("Glute Bridges"); !ok || m != 2 {
		t.Errorf("Minutes after remove = %d, %v, want 2, true", m, ok)
	}
	if _, ok := r.Minutes("Push Ups"); ok {
		t.Error("removed exercise still present")
	}

	r.Set("Push Ups", 1)
	if diff := cmp.Diff([]string{"Plank Hold", "Glute Bridges", "Push Ups"}, r.Names()); diff != "" {
		t.Errorf("re-add mismatch (-want +got):\n%s", diff)
	}
}

func TestWeekdays(t *testing.T) {
	if got := workout.Weekdays(0); len(got) != 0 {
		t.Errorf("Weekdays(0) = %v, want empty", got)
	}
	if got := workout.Weekdays(10); len(got) != workout.MaxDays {
		t.Errorf("Weekdays(10) has %d days, want %d", len(got), workout.MaxDays)
	}
}

func TestLevelAndIntensityStrings(t *testing.T) {
	if got := workout.LevelIntermediate.String(); got != "Intermediate" {
		t.Errorf("LevelIntermediate.String() = %q", got)
	}
	if got := workout.Level(9).String(); got != "Level(9)" {
		t.Errorf("Level(9).String() = %q", got)
	}
	if got := workout.IntensityHardcore.String(); got != "Hardcore" {
		t.Errorf("IntensityHardcore.String() = %q", got)
	}
	if workout.Intensity(0).Valid() || !workout.IntensityCasual.Valid() {
		t.Error("Intensity.Valid() wrong")
	}
}
