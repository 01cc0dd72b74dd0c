package validation

import (
	"errors"
	"strings"

	"focusos/internal/adapter/http/dto"
	"focusos/internal/core/domain"
)

var ErrInvalidHabitPayload = errors.New("invalid habit payload")

func BuildCreateHabitInput(req dto.CreateHabitRequest) (domain.CreateHabitInput, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.CreateHabitInput{}, ErrInvalidHabitPayload
	}

	owner := strings.TrimSpace(req.UserEmail)
	if owner == "" {
		return domain.CreateHabitInput{}, ErrInvalidHabitPayload
	}

	input := domain.CreateHabitInput{
		OwnerEmail: owner,
		Name:       name,
	}
	if req.Category != nil {
		input.Category = strings.TrimSpace(*req.Category)
	}

	return input, nil
}
