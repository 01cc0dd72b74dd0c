package ports

import (
	"context"

	"focusos/internal/core/domain"
)

type HabitRepository interface {
	ListByOwner(ctx context.Context, owner string) ([]domain.Habit, error)
	GetByID(ctx context.Context, id string) (domain.Habit, error)
	Insert(ctx context.Context, habit domain.Habit) (domain.Habit, error)
	ReplaceStreak(ctx context.Context, id string, streak []domain.StreakEntry) error
	Delete(ctx context.Context, id string) error
}

type HabitService interface {
	List(ctx context.Context, owner string) ([]domain.Habit, error)
	Create(ctx context.Context, input domain.CreateHabitInput) (domain.Habit, error)
	SetStreakEntry(ctx context.Context, habitID, date string, completed bool) (domain.Habit, error)
	Delete(ctx context.Context, habitID string) error
}
