package domain

import "errors"

// Domain errors.
var (
	ErrEmptyText           = errors.New("task text cannot be blank")
	ErrTaskNotFound        = errors.New("task not found")
	ErrEmptyFile           = errors.New("file is empty")
	ErrNoTasksInFile       = errors.New("no tasks found in file")
	ErrInvalidReminder     = errors.New("invalid reminder time")
	ErrNotifierUnavailable = errors.New("no notification command available")
)
