package service_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"focusos/internal/core/domain"
)

// In-memory repositories backing the service tests. They mirror the
// mongo adapter's contract, including the sentinel errors and the
// best-effort semantics of SetLinkedCompleted.

type memHabitRepo struct {
	mu     sync.Mutex
	seq    int
	habits map[string]domain.Habit
}

func newMemHabitRepo() *memHabitRepo {
	return &memHabitRepo{habits: map[string]domain.Habit{}}
}

func (r *memHabitRepo) ListByOwner(_ context.Context, owner string) ([]domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var habits []domain.Habit
	for _, habit := range r.habits {
		if habit.OwnerEmail == owner {
			habits = append(habits, cloneHabit(habit))
		}
	}
	return habits, nil
}

func (r *memHabitRepo) GetByID(_ context.Context, id string) (domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	habit, ok := r.habits[id]
	if !ok {
		return domain.Habit{}, domain.ErrHabitNotFound
	}
	return cloneHabit(habit), nil
}

func (r *memHabitRepo) Insert(_ context.Context, habit domain.Habit) (domain.Habit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	habit.ID = fmt.Sprintf("habit-%d", r.seq)
	r.habits[habit.ID] = cloneHabit(habit)
	return habit, nil
}

func (r *memHabitRepo) ReplaceStreak(_ context.Context, id string, streak []domain.StreakEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	habit, ok := r.habits[id]
	if !ok {
		return domain.ErrHabitNotFound
	}
	habit.Streak = append([]domain.StreakEntry(nil), streak...)
	r.habits[id] = habit
	return nil
}

func (r *memHabitRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.habits[id]; !ok {
		return domain.ErrHabitNotFound
	}
	delete(r.habits, id)
	return nil
}

func cloneHabit(habit domain.Habit) domain.Habit {
	habit.Streak = append([]domain.StreakEntry(nil), habit.Streak...)
	return habit
}

type memTaskRepo struct {
	mu    sync.Mutex
	seq   int
	tasks map[string]domain.Task
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{tasks: map[string]domain.Task{}}
}

func (r *memTaskRepo) ListByOwner(_ context.Context, owner string, date *string) ([]domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var tasks []domain.Task
	for _, task := range r.tasks {
		if task.OwnerEmail != owner {
			continue
		}
		if date != nil && task.Date != *date {
			continue
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

func (r *memTaskRepo) Insert(_ context.Context, task domain.Task) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	task.ID = fmt.Sprintf("task-%d", r.seq)
	r.tasks[task.ID] = task
	return task, nil
}

func (r *memTaskRepo) SetCompleted(_ context.Context, id string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	task, ok := r.tasks[id]
	if !ok {
		return domain.ErrTaskNotFound
	}
	task.Completed = completed
	r.tasks[id] = task
	return nil
}

func (r *memTaskRepo) FindLinked(_ context.Context, owner, habitID, date string) (domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, task := range r.tasks {
		if task.OwnerEmail == owner && task.Date == date &&
			task.LinkedHabitID != nil && *task.LinkedHabitID == habitID {
			return task, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

func (r *memTaskRepo) SetLinkedCompleted(_ context.Context, habitID, date string, completed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, task := range r.tasks {
		if task.Date == date && task.LinkedHabitID != nil && *task.LinkedHabitID == habitID {
			task.Completed = completed
			r.tasks[id] = task
			return nil
		}
	}
	return nil
}

func (r *memTaskRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) DeleteByHabit(_ context.Context, habitID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var removed int64
	for id, task := range r.tasks {
		if task.LinkedHabitID != nil && *task.LinkedHabitID == habitID {
			delete(r.tasks, id)
			removed++
		}
	}
	return removed, nil
}

func (r *memTaskRepo) BackfillCategory(_ context.Context, category string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var modified int64
	for id, task := range r.tasks {
		if task.Category == "" {
			task.Category = category
			r.tasks[id] = task
			modified++
		}
	}
	return modified, nil
}

func fixedClock(date string) func() time.Time {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return parsed.Add(12 * time.Hour) }
}
