package tui

import "github.com/mkondo/remindo/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when tasks are loaded from the store.
type MsgTasksLoaded struct {
	Active    []domain.Task
	Completed []domain.Task
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskAdded is sent when a new task is created.
type MsgTaskAdded struct {
	TaskID int
}

func (MsgTaskAdded) sealed() {}

// MsgTaskToggled is sent when a task's completion state is flipped.
type MsgTaskToggled struct {
	TaskID    int
	Completed bool
}

func (MsgTaskToggled) sealed() {}

// MsgTaskDeleted is sent when a task is deleted.
type MsgTaskDeleted struct {
	TaskID int
}

func (MsgTaskDeleted) sealed() {}

// MsgPermissionChanged is sent when the notification permission changes.
type MsgPermissionChanged struct {
	Permission domain.Permission
}

func (MsgPermissionChanged) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
