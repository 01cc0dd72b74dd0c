package service

import (
	"context"
	"time"

	"focusos/internal/core/domain"
	"focusos/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	syncService    ports.SyncService
	now            func() time.Time
}

func NewTaskService(taskRepository ports.TaskRepository, syncService ports.SyncService, now func() time.Time) *TaskService {
	if now == nil {
		now = time.Now
	}
	return &TaskService{
		taskRepository: taskRepository,
		syncService:    syncService,
		now:            now,
	}
}

func (s *TaskService) List(ctx context.Context, owner string, date *string) ([]domain.Task, error) {
	return s.taskRepository.ListByOwner(ctx, owner, date)
}

func (s *TaskService) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	task := domain.Task{
		OwnerEmail:    input.OwnerEmail,
		Text:          input.Text,
		Priority:      input.Priority,
		Category:      input.Category,
		Date:          input.Date,
		Time:          input.Time,
		Details:       input.Details,
		IsHabit:       input.IsHabit,
		LinkedHabitID: input.LinkedHabitID,
	}

	if task.Priority == "" {
		task.Priority = domain.TaskPriorityMedium
	}
	if task.Category == "" {
		task.Category = domain.DefaultTaskCategory
	}
	if task.Date == "" {
		task.Date = s.now().UTC().Format(dateLayout)
	}
	if task.Time == "" {
		task.Time = domain.NoReminderTime
	}

	return s.taskRepository.Insert(ctx, task)
}

// Toggle flips the completion state unconditionally, then propagates it
// into the owning habit's streak when the task is habit-generated.
// Tasks without a link never touch any habit.
func (s *TaskService) Toggle(ctx context.Context, id string, completed bool) (domain.Task, error) {
	task, err := s.taskRepository.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if err := s.taskRepository.SetCompleted(ctx, id, completed); err != nil {
		return domain.Task{}, err
	}
	task.Completed = completed

	if task.LinkedHabitID != nil {
		if _, err := s.syncService.Reconcile(ctx, *task.LinkedHabitID, task.Date, completed); err != nil {
			return domain.Task{}, err
		}
	}

	return task, nil
}

// Delete removes one task. Deleting a habit-generated task does not
// alter the habit or its streak.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.taskRepository.Delete(ctx, id)
}

// BackfillCategory is a one-time migration filling the category field
// on documents written before the field existed.
func (s *TaskService) BackfillCategory(ctx context.Context) (int64, error) {
	return s.taskRepository.BackfillCategory(ctx, domain.DefaultTaskCategory)
}

var _ ports.TaskService = (*TaskService)(nil)
