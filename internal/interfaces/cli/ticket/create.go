package ticket

import (
	"context"

	"github.com/spf13/cobra"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
)

func newCreateCommand(flags *bootstrap.Flags) *cobra.Command {
	var req dto.CreateTicketRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new ticket on behalf of a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dto.Validate(req); err != nil {
				return err
			}
			return run(cmd, flags, func(ctx context.Context, app *bootstrap.App, p *output.Printer) error {
				t, err := app.Service.CreateTicket(ctx, req)
				if err != nil {
					return err
				}
				app.Logger.Infow("ticket created", "id", t.ID, "number", t.TicketNumber)
				return p.Ticket(t)
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Subject, "subject", "", "Ticket subject")
	f.StringVar(&req.Description, "description", "", "Problem description (markdown)")
	f.StringVar(&req.Category, "category", "general", "technical, billing, general, feature_request or bug_report")
	f.StringVar(&req.Priority, "priority", "normal", "low, normal, high or urgent")
	f.StringVar(&req.CompanyID, "company-id", "", "Client company id")
	f.StringVar(&req.CompanyName, "company-name", "", "Client company name")
	f.StringVar(&req.ClientID, "client-id", "", "Requesting client id")
	f.StringVar(&req.ClientName, "client-name", "", "Requesting client name")
	f.StringVar(&req.ClientEmail, "client-email", "", "Requesting client email")

	for _, name := range []string{"subject", "description", "company-id", "company-name", "client-id", "client-name", "client-email"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
