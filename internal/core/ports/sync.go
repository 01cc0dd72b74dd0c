package ports

import (
	"context"

	"focusos/internal/core/domain"
)

// SyncService keeps a habit's streak and its generated daily task in
// agreement. Reconcile is the only mutator of the relationship; both
// toggle directions go through it.
type SyncService interface {
	// Reconcile sets the outcome for (habit, date) on the habit streak
	// and propagates it to the linked task when one exists. Repeated
	// calls with the same arguments converge to the same state.
	Reconcile(ctx context.Context, habitID, date string, completed bool) (domain.Habit, error)
	// MaterializeHabit ensures today's linked task exists for one
	// habit. Reports whether a task was created.
	MaterializeHabit(ctx context.Context, habit domain.Habit) (bool, error)
	// MaterializeToday ensures today's linked task exists for every
	// habit of the owner and returns the number of tasks created.
	// Calling it again the same day creates nothing.
	MaterializeToday(ctx context.Context, owner string) (int, error)
}
