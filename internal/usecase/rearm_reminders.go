package usecase

import (
	"context"
	"fmt"

	"github.com/mkondo/remindo/internal/domain"
)

// RearmRemindersInput contains the parameters for re-arming reminders.
type RearmRemindersInput struct{}

// RearmRemindersOutput contains the result of the re-arm pass.
type RearmRemindersOutput struct {
	Armed int // Number of timers armed
}

// RearmReminders is the startup use case that re-arms timers for
// persisted reminders. Timer handles do not survive a process
// restart, so every incomplete task whose reminder is still in the
// future gets a fresh timer; elapsed reminders are skipped silently.
type RearmReminders struct {
	store     domain.TaskStore
	scheduler domain.Scheduler
	notifier  domain.Notifier
	clock     domain.Clock
	logger    domain.Logger
}

// NewRearmReminders creates a new RearmReminders use case.
func NewRearmReminders(store domain.TaskStore, scheduler domain.Scheduler, notifier domain.Notifier, clock domain.Clock, logger domain.Logger) *RearmReminders {
	return &RearmReminders{
		store:     store,
		scheduler: scheduler,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

// Execute arms a timer for every incomplete task with a future
// reminder.
func (uc *RearmReminders) Execute(_ context.Context, _ RearmRemindersInput) (*RearmRemindersOutput, error) {
	tasks, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	now := uc.clock.Now()
	armed := 0
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		delay, ok := task.ReminderDue(now)
		if !ok {
			continue
		}
		armReminder(uc.scheduler, uc.notifier, uc.logger, task, delay)
		armed++
	}

	if uc.logger != nil && armed > 0 {
		uc.logger.Info("reminder", fmt.Sprintf("re-armed %d timer(s)", armed))
	}

	return &RearmRemindersOutput{Armed: armed}, nil
}
