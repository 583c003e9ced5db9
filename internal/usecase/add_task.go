// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/mkondo/remindo/internal/domain"
)

// AddTaskInput contains the parameters for creating a new task.
type AddTaskInput struct {
	Reminder *time.Time // Reminder time (optional)
	Text     string     // Task text (required, blank is rejected)
}

// AddTaskOutput contains the result of creating a new task.
type AddTaskOutput struct {
	Task domain.Task // The created task
}

// AddTask is the use case for creating a new task.
type AddTask struct {
	store     domain.TaskStore
	scheduler domain.Scheduler
	notifier  domain.Notifier
	clock     domain.Clock
	logger    domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.TaskStore, scheduler domain.Scheduler, notifier domain.Notifier, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		store:     store,
		scheduler: scheduler,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

// Execute creates a new task and appends it to the end of the list.
// A reminder in the future arms exactly one timer; a past-due or
// missing reminder arms nothing and never fires immediately.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	text := domain.NormalizeText(in.Text)
	if text == "" {
		return nil, domain.ErrEmptyText
	}

	tasks, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	id, err := uc.store.NextID()
	if err != nil {
		return nil, fmt.Errorf("generate task ID: %w", err)
	}

	now := uc.clock.Now()
	task := domain.Task{
		ID:       id,
		Text:     text,
		Created:  now,
		Reminder: in.Reminder,
	}

	tasks = append(tasks, task)
	if err := uc.store.Save(tasks); err != nil {
		return nil, fmt.Errorf("save tasks: %w", err)
	}

	if delay, ok := task.ReminderDue(now); ok {
		armReminder(uc.scheduler, uc.notifier, uc.logger, task, delay)
	}

	if uc.logger != nil {
		uc.logger.Info("task", fmt.Sprintf("created #%d: %q", id, text))
	}

	return &AddTaskOutput{Task: task}, nil
}
