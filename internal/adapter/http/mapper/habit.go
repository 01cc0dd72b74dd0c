package mapper

import (
	"focusos/internal/adapter/http/dto"
	"focusos/internal/core/domain"
)

func ToHabitItems(habits []domain.Habit) []dto.HabitItem {
	items := make([]dto.HabitItem, 0, len(habits))
	for _, habit := range habits {
		items = append(items, ToHabitItem(habit))
	}
	return items
}

func ToHabitItem(habit domain.Habit) dto.HabitItem {
	streak := make([]dto.StreakEntryItem, 0, len(habit.Streak))
	for _, entry := range habit.Streak {
		streak = append(streak, dto.StreakEntryItem{Date: entry.Date, Completed: entry.Completed})
	}

	return dto.HabitItem{
		ID:        habit.ID,
		UserEmail: habit.OwnerEmail,
		Name:      habit.Name,
		Category:  habit.Category,
		Streak:    streak,
	}
}
