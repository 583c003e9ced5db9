// Package cli provides the command-line interface for remindo.
package cli

import (
	"github.com/mkondo/remindo/internal/app"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupTask   = "task"
	groupNotify = "notify"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for remindo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "remindo",
		Short: "To-do list with desktop reminders",
		Long: `remindo is a to-do list CLI with desktop reminder notifications.

Tasks live in a local JSON store. A task may carry a reminder time;
while remindo runs (the TUI, or any long-lived invocation), a timer
fires a desktop notification when the reminder comes due. Completing
or deleting a task cancels its pending reminder.

Run without arguments to open the interactive TUI.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			// Default: launch TUI
			return launchTUIFunc(c)
		},
	}

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupNotify, Title: "Notifications:"},
	)

	// Task management commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	// Notification commands
	notifyCmd := newNotifyCommand(c)
	notifyCmd.GroupID = groupNotify

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	root.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		rmCmd,
		notifyCmd,
		tuiCmd,
	)

	return root
}
