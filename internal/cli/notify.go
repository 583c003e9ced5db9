package cli

import (
	"fmt"

	"github.com/mkondo/remindo/internal/app"
	"github.com/mkondo/remindo/internal/domain"
	"github.com/mkondo/remindo/internal/usecase"
	"github.com/spf13/cobra"
)

// newNotifyCommand creates the notify command group.
func newNotifyCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Manage notification permission",
		Long: `Manage the desktop notification permission.

Reminders only produce notifications after permission is granted
with 'remindo notify enable'. A denial is permanent; to notify
again the stored state file has to be removed by hand.`,
	}

	cmd.AddCommand(
		newNotifyEnableCommand(c),
		newNotifyStatusCommand(c),
	)

	return cmd
}

// newNotifyEnableCommand creates the notify enable command.
func newNotifyEnableCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "enable",
		Short: "Request notification permission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.EnableNotificationsUseCase().Execute(cmd.Context(), usecase.EnableNotificationsInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch out.Permission {
			case domain.PermissionGranted:
				_, _ = fmt.Fprintln(w, "Notifications enabled")
			case domain.PermissionDenied:
				_, _ = fmt.Fprintln(w, "Notifications denied (no notifier command found)")
			default:
				_, _ = fmt.Fprintln(w, "Notification permission unchanged")
			}
			return nil
		},
	}
}

// newNotifyStatusCommand creates the notify status command.
func newNotifyStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show notification permission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Permission: %s\n", c.Notifier.Permission())
			return nil
		},
	}
}
