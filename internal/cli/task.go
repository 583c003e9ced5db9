package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/mkondo/remindo/internal/app"
	"github.com/mkondo/remindo/internal/domain"
	"github.com/mkondo/remindo/internal/usecase"
	"github.com/spf13/cobra"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		At   string
		From string
	}

	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a task",
		Long: `Add a task, optionally with a reminder time.

Accepted reminder formats:
  2025-03-01T09:00:00+09:00   RFC 3339
  2025-03-01 09:00:05
  2025-03-01 09:00
  09:00                       today at 09:00

A reminder in the past is stored but never fires.

Examples:
  # Add a plain task
  remindo add "Buy milk"

  # Add a task with a reminder
  remindo add "Water the plants" --at "2025-03-01 09:00"
  remindo add "Standup" --at 09:55

  # Add tasks from a file (multiple tasks supported)
  remindo add --from tasks.md

File format for --from:
  ---
  text: Water the plants
  reminder: 2025-03-01 09:00
  ---

  ---
  text: Renew passport
  ---`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.From != "" {
				return addTasksFromFile(cmd, c, opts.From)
			}

			var text string
			if len(args) > 0 {
				text = args[0]
			}

			input := usecase.AddTaskInput{Text: text}
			if opts.At != "" {
				at, err := domain.ParseReminder(opts.At, c.Clock.Now())
				if err != nil {
					return fmt.Errorf("invalid reminder %q", opts.At)
				}
				input.Reminder = &at
			}

			out, err := c.AddTaskUseCase().Execute(cmd.Context(), input)
			if errors.Is(err, domain.ErrEmptyText) {
				// Blank input is ignored, not an error
				return nil
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.At, "at", "", "Reminder time")
	cmd.Flags().StringVar(&opts.From, "from", "", "Add tasks from a Markdown file")

	return cmd
}

// addTasksFromFile creates tasks from a Markdown file.
func addTasksFromFile(cmd *cobra.Command, c *app.Container, filePath string) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	out, err := c.AddTasksFromFileUseCase().Execute(cmd.Context(), usecase.AddTasksFromFileInput{
		Content: string(content),
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, task := range out.Tasks {
		if task.Reminder != nil {
			_, _ = fmt.Fprintf(w, "Added task #%d: %s (reminder %s)\n",
				task.ID, task.Text, task.Reminder.Format("2006-01-02 15:04"))
		} else {
			_, _ = fmt.Fprintf(w, "Added task #%d: %s\n", task.ID, task.Text)
		}
	}
	_, _ = fmt.Fprintf(w, "\nAdded %d task(s)\n", len(out.Tasks))
	return nil
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		All  bool
		JSON bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `Display the task list in insertion order.

By default only active tasks are shown. Use --all to include
completed tasks, which are listed after the active ones.

Examples:
  # List active tasks
  remindo list

  # Include completed tasks
  remindo list --all
  remindo list -a

  # Machine-readable output
  remindo list --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}

			if opts.JSON {
				tasks := out.Active
				if opts.All {
					tasks = out.Tasks
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tasks)
			}

			if len(out.Tasks) == 0 || (!opts.All && len(out.Active) == 0) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks yet. Add one above!")
				return nil
			}

			printTaskList(cmd.OutOrStdout(), out, opts.All, c.Clock)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show completed tasks as well")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// printTaskList prints tasks in TSV format, active first.
func printTaskList(w io.Writer, out *usecase.ListTasksOutput, all bool, clock domain.Clock) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tREMINDER\tTEXT")

	now := clock.Now()
	printRow := func(task domain.Task) {
		status := "active"
		if task.Completed {
			status = "done"
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", task.ID, status, formatReminder(task, now), task.Text)
	}

	for _, task := range out.Active {
		printRow(task)
	}
	if all {
		for _, task := range out.Completed {
			printRow(task)
		}
	}
}

// formatReminder renders the reminder column for one task.
func formatReminder(task domain.Task, now time.Time) string {
	if task.Reminder == nil {
		return "-"
	}
	s := task.Reminder.Format("2006-01-02 15:04")
	if !task.Completed && task.Reminder.Before(now) {
		s += " (past)"
	}
	return s
}

// newDoneCommand creates the done command for toggling completion.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion state",
		Long: `Toggle a task between active and completed.

Completing a task cancels its pending reminder. Marking it active
again does not restore the reminder.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.ToggleTaskUseCase().Execute(cmd.Context(), usecase.ToggleTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			state := "active"
			if out.Task.Completed {
				state = "done"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task #%d is now %s\n", out.Task.ID, state)
			return nil
		},
	}
	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long:  `Delete a task. A pending reminder for the task is cancelled.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			out, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n", out.Task.ID, out.Task.Text)
			return nil
		},
	}
	return cmd
}

// parseTaskID parses a task ID argument.
func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", s)
	}
	return id, nil
}
