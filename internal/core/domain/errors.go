package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrHabitNotFound      = errors.New("habit not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
