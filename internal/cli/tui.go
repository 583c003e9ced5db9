package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkondo/remindo/internal/app"
	"github.com/mkondo/remindo/internal/tui"
	"github.com/mkondo/remindo/internal/usecase"
	"github.com/spf13/cobra"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `remindo` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		RunE: func(*cobra.Command, []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUI re-arms persisted reminders, then runs the TUI until quit.
// Reminder timers only fire while the program stays in the foreground,
// so the TUI is where reminders actually live.
func launchTUI(c *app.Container) error {
	if _, err := c.RearmRemindersUseCase().Execute(context.Background(), usecase.RearmRemindersInput{}); err != nil {
		return err
	}

	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
