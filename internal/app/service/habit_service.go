package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"focusos/internal/core/domain"
	"focusos/internal/core/ports"
)

type HabitService struct {
	habitRepository ports.HabitRepository
	taskRepository  ports.TaskRepository
	syncService     ports.SyncService
}

func NewHabitService(habitRepository ports.HabitRepository, taskRepository ports.TaskRepository, syncService ports.SyncService) *HabitService {
	return &HabitService{
		habitRepository: habitRepository,
		taskRepository:  taskRepository,
		syncService:     syncService,
	}
}

func (s *HabitService) List(ctx context.Context, owner string) ([]domain.Habit, error) {
	return s.habitRepository.ListByOwner(ctx, owner)
}

// Create stores the habit and immediately materializes its day-0
// linked task. A habit never exists without a task for the day it was
// created on.
func (s *HabitService) Create(ctx context.Context, input domain.CreateHabitInput) (domain.Habit, error) {
	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = domain.DefaultHabitCategory
	}

	habit, err := s.habitRepository.Insert(ctx, domain.Habit{
		OwnerEmail: input.OwnerEmail,
		Name:       input.Name,
		Category:   category,
		Streak:     []domain.StreakEntry{},
	})
	if err != nil {
		return domain.Habit{}, err
	}

	if _, err := s.syncService.MaterializeHabit(ctx, habit); err != nil {
		return domain.Habit{}, err
	}

	return habit, nil
}

func (s *HabitService) SetStreakEntry(ctx context.Context, habitID, date string, completed bool) (domain.Habit, error) {
	return s.syncService.Reconcile(ctx, habitID, date, completed)
}

// Delete cascades: linked tasks go first so no task is left pointing at
// a missing habit.
func (s *HabitService) Delete(ctx context.Context, habitID string) error {
	removed, err := s.taskRepository.DeleteByHabit(ctx, habitID)
	if err != nil {
		return err
	}
	if removed > 0 {
		zap.L().Info("deleted linked tasks", zap.String("habit_id", habitID), zap.Int64("count", removed))
	}

	return s.habitRepository.Delete(ctx, habitID)
}

var _ ports.HabitService = (*HabitService)(nil)
