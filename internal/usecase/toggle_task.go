package usecase

import (
	"context"
	"fmt"

	"github.com/mkondo/remindo/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling completion.
type ToggleTaskInput struct {
	TaskID int // Task ID to toggle
}

// ToggleTaskOutput contains the result of toggling a task.
type ToggleTaskOutput struct {
	Task domain.Task // The task after the toggle
}

// ToggleTask is the use case for flipping a task's completion state.
type ToggleTask struct {
	store     domain.TaskStore
	scheduler domain.Scheduler
	logger    domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(store domain.TaskStore, scheduler domain.Scheduler, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		store:     store,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Execute flips the completion state of a task. Completing a task
// cancels its pending reminder timer before the flip; un-completing
// never re-arms one (cancellation is one-way).
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	tasks, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	idx := domain.FindTask(tasks, in.TaskID)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}

	if !tasks[idx].Completed {
		uc.scheduler.Cancel(in.TaskID)
	}
	tasks[idx].Completed = !tasks[idx].Completed

	if err := uc.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		state := "active"
		if tasks[idx].Completed {
			state = "completed"
		}
		uc.logger.Info("task", fmt.Sprintf("toggled #%d to %s", in.TaskID, state))
	}

	return &ToggleTaskOutput{Task: tasks[idx]}, nil
}
