package ports

import (
	"context"

	"focusos/internal/core/domain"
)

type TaskRepository interface {
	ListByOwner(ctx context.Context, owner string, date *string) ([]domain.Task, error)
	GetByID(ctx context.Context, id string) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) (domain.Task, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	// FindLinked returns the task generated for a habit on one day, or
	// domain.ErrTaskNotFound when none exists.
	FindLinked(ctx context.Context, owner, habitID, date string) (domain.Task, error)
	// SetLinkedCompleted updates the completion flag of the task linked
	// to a habit for one day. A missing task is a no-op, not an error.
	SetLinkedCompleted(ctx context.Context, habitID, date string, completed bool) error
	Delete(ctx context.Context, id string) error
	DeleteByHabit(ctx context.Context, habitID string) (int64, error)
	BackfillCategory(ctx context.Context, category string) (int64, error)
}

type TaskService interface {
	List(ctx context.Context, owner string, date *string) ([]domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Toggle(ctx context.Context, id string, completed bool) (domain.Task, error)
	Delete(ctx context.Context, id string) error
	BackfillCategory(ctx context.Context) (int64, error)
}
