package mapper

import (
	"focusos/internal/adapter/http/dto"
	"focusos/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		UserEmail: task.OwnerEmail,
		Text:      task.Text,
		Completed: task.Completed,
		Priority:  string(task.Priority),
		Category:  task.Category,
		Date:      task.Date,
		Time:      task.Time,
		Details:   task.Details,
		IsHabit:   task.IsHabit,
	}

	if task.LinkedHabitID != nil {
		value := *task.LinkedHabitID
		item.LinkedHabitID = &value
	}

	return item
}
