package workout

import (
	"slices"
)

// Entry is one exercise of a day with its assigned minutes.
type Entry struct {
	Name    string
	Minutes int
}

// DayRoutine maps exercise names to minutes. Names are unique and keep the order they were first set in.
// The zero value is an empty routine ready to use.
type DayRoutine struct {
	entries []Entry
	index   map[string]int
}

// Set assigns minutes to name. An existing entry is overwritten in place.
func (r *DayRoutine) Set(name string, minutes int) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.entries[i].Minutes = minutes
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Minutes: minutes})
}

// Add changes the minutes of an existing entry by delta and returns the new value.
// It returns false if name is not in the routine.
func (r *DayRoutine) Add(name string, delta int) (int, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	r.entries[i].Minutes += delta
	return r.entries[i].Minutes, true
}

// Remove deletes name from the routine keeping the order of the remaining entries.
func (r *DayRoutine) Remove(name string) {
	i, ok := r.index[name]
	if !ok {
		return
	}
	r.entries = slices.Delete(r.entries, i, i+1)
	delete(r.index, name)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].Name] = j
	}
}

// Minutes returns the minutes assigned to name.
func (r *DayRoutine) Minutes(name string) (int, bool) {
	i, ok := r.index[name]
	if !ok {
		return 0, false
	}
	return r.entries[i].Minutes, true
}

// Len returns the number of distinct exercises.
func (r *DayRoutine) Len() int {
	return len(r.entries)
}

// Total returns the sum of all minutes.
func (r *DayRoutine) Total() int {
	total := 0
	for _, e := range r.entries {
		total += e.Minutes
	}
	return total
}

// Names returns the exercise names in order.
func (r *DayRoutine) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the entries in order.
func (r *DayRoutine) Entries() []Entry {
	return slices.Clone(r.entries)
}
