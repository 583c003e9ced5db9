// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// Task represents a single to-do item with an optional reminder.
// Timer handles are session-local and live in the Scheduler, not here.
// Fields are ordered to minimize memory padding.
type Task struct {
	Created   time.Time  `json:"created"`            // Creation time
	Reminder  *time.Time `json:"reminder,omitempty"` // Reminder time (nil = no reminder)
	Text      string     `json:"text"`               // Task text (required, non-blank)
	ID        int        `json:"id"`                 // Task ID (store-assigned, monotonic)
	Completed bool       `json:"completed"`          // Completion flag
}

// HasReminder returns true if the task has a reminder set.
func (t *Task) HasReminder() bool {
	return t.Reminder != nil
}

// ReminderDue returns the remaining delay until the reminder fires.
// The second return value is false when the task has no reminder or
// the reminder time has already elapsed.
func (t *Task) ReminderDue(now time.Time) (time.Duration, bool) {
	if t.Reminder == nil {
		return 0, false
	}
	delay := t.Reminder.Sub(now)
	if delay <= 0 {
		return 0, false
	}
	return delay, true
}

// NormalizeText trims surrounding whitespace from raw task text.
// Returns the empty string for blank input.
func NormalizeText(raw string) string {
	return strings.TrimSpace(raw)
}

// Partition splits tasks into active and completed subsets, preserving
// the relative insertion order within each subset.
func Partition(tasks []Task) (active, completed []Task) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			active = append(active, t)
		}
	}
	return active, completed
}

// FindTask returns the index of the task with the given ID, or -1 if
// no task matches.
func FindTask(tasks []Task, id int) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
