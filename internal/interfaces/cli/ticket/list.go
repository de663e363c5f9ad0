package ticket

import (
	"context"

	"github.com/spf13/cobra"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
)

func newListCommand(flags *bootstrap.Flags) *cobra.Command {
	var req dto.FilterRequest

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tickets in stored order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := dto.Validate(req); err != nil {
				return err
			}
			return run(cmd, flags, func(ctx context.Context, app *bootstrap.App, p *output.Printer) error {
				var (
					tickets []dto.TicketDTO
					err     error
				)
				switch {
				case req == (dto.FilterRequest{}):
					tickets, err = app.Service.ListAllTickets(ctx)
				case req == (dto.FilterRequest{CompanyID: req.CompanyID}):
					tickets, err = app.Service.ListTicketsByCompany(ctx, req.CompanyID)
				default:
					tickets, err = app.Service.FilterTickets(ctx, req)
				}
				if err != nil {
					return err
				}
				return p.Tickets(tickets)
			})
		},
	}

	cmd.Flags().StringVar(&req.CompanyID, "company", "", "Only tickets of this company id")
	cmd.Flags().StringVar(&req.Status, "status", "", "Only tickets with this status")
	cmd.Flags().StringVar(&req.Priority, "priority", "", "Only tickets with this priority")
	cmd.Flags().StringVar(&req.Category, "category", "", "Only tickets in this category")
	cmd.Flags().StringVarP(&req.Search, "search", "s", "", "Case-insensitive match on number, subject or company name")

	return cmd
}
