package validation

import (
	"errors"
	"strings"

	"focusos/internal/adapter/http/dto"
	"focusos/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

// BuildCreateTaskInput normalises a create-task payload. Habit-generated
// tasks must carry a habit link and plain tasks must not: the two
// fields are accepted only together.
func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	owner := strings.TrimSpace(req.UserEmail)
	if owner == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	isHabit := req.IsHabit != nil && *req.IsHabit

	var linkedHabitID *string
	if req.LinkedHabitID != nil {
		value := strings.TrimSpace(*req.LinkedHabitID)
		if value != "" {
			linkedHabitID = &value
		}
	}

	if isHabit != (linkedHabitID != nil) {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		OwnerEmail:    owner,
		Text:          text,
		IsHabit:       isHabit,
		LinkedHabitID: linkedHabitID,
	}

	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Category != nil {
		input.Category = strings.TrimSpace(*req.Category)
	}
	if req.Date != nil {
		input.Date = *req.Date
	}
	if req.Time != nil {
		input.Time = *req.Time
	}
	if req.Details != nil {
		input.Details = *req.Details
	}

	return input, nil
}
