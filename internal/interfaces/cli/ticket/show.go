package ticket

import (
	"context"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
)

func newShowCommand(flags *bootstrap.Flags) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "show <ticket-id>",
		Short: "Show a ticket and the conversation a role can see",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, func(ctx context.Context, app *bootstrap.App, p *output.Printer) error {
				t, err := app.Service.GetTicketByID(ctx, args[0])
				if err != nil {
					return err
				}
				messages, err := app.Service.GetConversation(ctx, t.ID, role)
				if err != nil {
					return err
				}
				return p.Conversation(t, messages)
			})
		},
	}

	cmd.Flags().StringVar(&role, "as", "admin", "Viewer role: client hides internal notes (client, admin)")

	return cmd
}
