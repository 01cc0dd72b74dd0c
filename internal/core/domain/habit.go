package domain

import "sort"

const DefaultHabitCategory = "Health"

// StreakEntry records one day's outcome for a habit. Dates use the
// fixed-width YYYY-MM-DD form, so lexical order is chronological order.
type StreakEntry struct {
	Date      string
	Completed bool
}

type Habit struct {
	ID         string
	OwnerEmail string
	Name       string
	Category   string
	Streak     []StreakEntry
}

type CreateHabitInput struct {
	OwnerEmail string
	Name       string
	Category   string
}

// DoneOn reports whether the streak marks the given day completed.
func (h Habit) DoneOn(date string) bool {
	for _, entry := range h.Streak {
		if entry.Date == date && entry.Completed {
			return true
		}
	}
	return false
}

// UpsertStreakEntry sets the outcome for one day in a streak: the
// existing entry for that date is overwritten, otherwise a new entry is
// inserted. The result is sorted ascending by date and holds at most
// one entry per date.
func UpsertStreakEntry(streak []StreakEntry, date string, completed bool) []StreakEntry {
	for i, entry := range streak {
		if entry.Date == date {
			streak[i].Completed = completed
			return streak
		}
	}

	streak = append(streak, StreakEntry{Date: date, Completed: completed})
	sort.Slice(streak, func(i, j int) bool {
		return streak[i].Date < streak[j].Date
	})
	return streak
}
