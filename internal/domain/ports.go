package domain

import (
	"context"
	"time"
)

// TaskStore persists the full task list as a single snapshot.
// Load returns the empty list when the store has never been written.
type TaskStore interface {
	// Load reads the current task list in insertion order.
	Load() ([]Task, error)

	// Save overwrites the stored task list wholesale.
	Save(tasks []Task) error

	// NextID returns the next available task ID.
	NextID() (int, error)
}

// StoreInitializer initializes the data store.
type StoreInitializer interface {
	// Initialize creates the store if it doesn't exist.
	Initialize() error
}

// Scheduler arms and cancels per-task reminder timers.
// At most one timer is armed per task ID; arming an already-armed
// task replaces its timer.
type Scheduler interface {
	// Arm schedules fn to run once after delay, keyed by task ID.
	Arm(taskID int, delay time.Duration, fn func())

	// Cancel prevents a pending timer from firing. No-op if the
	// timer already fired or was never armed.
	Cancel(taskID int)

	// CancelAll cancels every pending timer. Used at teardown.
	CancelAll()

	// Armed reports whether a timer is pending for the task.
	Armed(taskID int) bool
}

// Permission is the notification permission state.
type Permission string

// Permission states. Denied is terminal: the platform offers no way
// to re-prompt once the user has refused.
const (
	PermissionDefault Permission = "default"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Notifier emits best-effort desktop notifications.
type Notifier interface {
	// Permission returns the current permission state. Returns
	// PermissionDefault when the capability is unavailable.
	Permission() Permission

	// RequestPermission prompts for permission. It may block until
	// the user responds and resolves to granted or denied.
	RequestPermission(ctx context.Context) (Permission, error)

	// Notify emits a notification. No-op (not an error) when
	// permission is not granted or the capability is unavailable.
	Notify(title, body string) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration with defaults applied.
	Load() (*Config, error)
}

// Logger writes leveled log entries with a category tag.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
