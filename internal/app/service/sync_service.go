package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"focusos/internal/core/domain"
	"focusos/internal/core/ports"
)

const dateLayout = "2006-01-02"

// SyncService reconciles habit streaks with their generated daily
// tasks. There is no transaction spanning the two documents; every step
// is idempotent so a repeated call converges instead of duplicating.
type SyncService struct {
	habitRepository ports.HabitRepository
	taskRepository  ports.TaskRepository
	now             func() time.Time
}

func NewSyncService(habitRepository ports.HabitRepository, taskRepository ports.TaskRepository, now func() time.Time) *SyncService {
	if now == nil {
		now = time.Now
	}
	return &SyncService{
		habitRepository: habitRepository,
		taskRepository:  taskRepository,
		now:             now,
	}
}

func (s *SyncService) today() string {
	return s.now().UTC().Format(dateLayout)
}

// Reconcile is the single write path for the habit/task relationship.
// It upserts the (date, completed) streak entry, keeping the streak
// sorted with one entry per date, then pushes the same flag onto the
// task linked to the habit for that day. A missing linked task is a
// silent no-op.
func (s *SyncService) Reconcile(ctx context.Context, habitID, date string, completed bool) (domain.Habit, error) {
	habit, err := s.habitRepository.GetByID(ctx, habitID)
	if err != nil {
		return domain.Habit{}, err
	}

	habit.Streak = domain.UpsertStreakEntry(habit.Streak, date, completed)
	if err := s.habitRepository.ReplaceStreak(ctx, habit.ID, habit.Streak); err != nil {
		return domain.Habit{}, err
	}

	if err := s.taskRepository.SetLinkedCompleted(ctx, habit.ID, date, completed); err != nil {
		return domain.Habit{}, err
	}

	return habit, nil
}

// MaterializeHabit ensures today's linked task exists for one habit.
// The check is existence only: a task that is already there is left
// untouched whatever its completion state.
func (s *SyncService) MaterializeHabit(ctx context.Context, habit domain.Habit) (bool, error) {
	today := s.today()

	_, err := s.taskRepository.FindLinked(ctx, habit.OwnerEmail, habit.ID, today)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrTaskNotFound) {
		return false, err
	}

	habitID := habit.ID
	_, err = s.taskRepository.Insert(ctx, domain.Task{
		OwnerEmail:    habit.OwnerEmail,
		Text:          "Habit: " + habit.Name,
		Completed:     habit.DoneOn(today),
		Priority:      domain.TaskPriorityHigh,
		Category:      domain.DefaultTaskCategory,
		Date:          today,
		Time:          domain.NoReminderTime,
		IsHabit:       true,
		LinkedHabitID: &habitID,
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// MaterializeToday runs the daily catch-up pass for one owner. The
// client calls it on every page load, so the second and later calls of
// a day must create nothing.
func (s *SyncService) MaterializeToday(ctx context.Context, owner string) (int, error) {
	habits, err := s.habitRepository.ListByOwner(ctx, owner)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, habit := range habits {
		added, err := s.MaterializeHabit(ctx, habit)
		if err != nil {
			return created, err
		}
		if added {
			created++
		}
	}

	if created > 0 {
		zap.L().Info("materialized habit tasks", zap.String("owner", owner), zap.Int("created", created))
	}
	return created, nil
}

var _ ports.SyncService = (*SyncService)(nil)
