package usecase

import (
	"fmt"
	"time"

	"github.com/mkondo/remindo/internal/domain"
)

// reminderTitle is the notification title for fired reminders.
const reminderTitle = "Task Reminder"

// armReminder arms the single reminder timer for a task. The fired
// callback checks permission at fire time, not at arm time, so a
// grant or denial that happens while the timer is pending is honored.
func armReminder(scheduler domain.Scheduler, notifier domain.Notifier, logger domain.Logger, task domain.Task, delay time.Duration) {
	text := task.Text
	id := task.ID
	scheduler.Arm(id, delay, func() {
		if notifier.Permission() != domain.PermissionGranted {
			if logger != nil {
				logger.Debug("reminder", fmt.Sprintf("#%d fired without permission, skipped", id))
			}
			return
		}
		if err := notifier.Notify(reminderTitle, text); err != nil && logger != nil {
			logger.Warn("reminder", fmt.Sprintf("#%d notify failed: %v", id, err))
		}
	})
}
