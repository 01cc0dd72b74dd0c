package domain

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

const (
	DefaultTaskCategory = "Work"
	// NoReminderTime is the sentinel value for a task without a
	// reminder marker.
	NoReminderTime = "00:00"
)

type Task struct {
	ID            string
	OwnerEmail    string
	Text          string
	Completed     bool
	Priority      TaskPriority
	Category      string
	Date          string
	Time          string
	Details       string
	IsHabit       bool
	LinkedHabitID *string
}

type CreateTaskInput struct {
	OwnerEmail    string
	Text          string
	Priority      TaskPriority
	Category      string
	Date          string
	Time          string
	Details       string
	IsHabit       bool
	LinkedHabitID *string
}
