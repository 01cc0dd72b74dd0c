package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"focusos/internal/core/domain"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) List(ctx context.Context, owner string, date *string) ([]domain.Task, error) {
	args := m.Called(ctx, owner, date)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Toggle(ctx context.Context, id string, completed bool) (domain.Task, error) {
	args := m.Called(ctx, id, completed)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskServiceMock) BackfillCategory(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type habitServiceMock struct {
	mock.Mock
}

func (m *habitServiceMock) List(ctx context.Context, owner string) ([]domain.Habit, error) {
	args := m.Called(ctx, owner)

	var habits []domain.Habit
	if value := args.Get(0); value != nil {
		habits = value.([]domain.Habit)
	}
	return habits, args.Error(1)
}

func (m *habitServiceMock) Create(ctx context.Context, input domain.CreateHabitInput) (domain.Habit, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Habit), args.Error(1)
}

func (m *habitServiceMock) SetStreakEntry(ctx context.Context, habitID, date string, completed bool) (domain.Habit, error) {
	args := m.Called(ctx, habitID, date, completed)
	return args.Get(0).(domain.Habit), args.Error(1)
}

func (m *habitServiceMock) Delete(ctx context.Context, habitID string) error {
	args := m.Called(ctx, habitID)
	return args.Error(0)
}

type syncServiceMock struct {
	mock.Mock
}

func (m *syncServiceMock) Reconcile(ctx context.Context, habitID, date string, completed bool) (domain.Habit, error) {
	args := m.Called(ctx, habitID, date, completed)
	return args.Get(0).(domain.Habit), args.Error(1)
}

func (m *syncServiceMock) MaterializeHabit(ctx context.Context, habit domain.Habit) (bool, error) {
	args := m.Called(ctx, habit)
	return args.Bool(0), args.Error(1)
}

func (m *syncServiceMock) MaterializeToday(ctx context.Context, owner string) (int, error) {
	args := m.Called(ctx, owner)
	return args.Int(0), args.Error(1)
}
