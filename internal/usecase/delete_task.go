package usecase

import (
	"context"
	"fmt"

	"github.com/mkondo/remindo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task domain.Task // The deleted task
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	store     domain.TaskStore
	scheduler domain.Scheduler
	logger    domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.TaskStore, scheduler domain.Scheduler, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		store:     store,
		scheduler: scheduler,
		logger:    logger,
	}
}

// Execute deletes a task, cancelling its pending reminder timer first.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	tasks, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	idx := domain.FindTask(tasks, in.TaskID)
	if idx < 0 {
		return nil, domain.ErrTaskNotFound
	}

	uc.scheduler.Cancel(in.TaskID)

	deleted := tasks[idx]
	tasks = append(tasks[:idx], tasks[idx+1:]...)

	if err := uc.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("deleted #%d", in.TaskID))
	}

	return &DeleteTaskOutput{Task: deleted}, nil
}
