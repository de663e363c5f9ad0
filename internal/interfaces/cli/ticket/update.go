package ticket

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
)

type updateOptions struct {
	status    string
	priority  string
	assign    string
	unassign  bool
	tags      []string
	clearTags bool
}

func newUpdateCommand(flags *bootstrap.Flags) *cobra.Command {
	var opts updateOptions

	cmd := &cobra.Command{
		Use:   "update <ticket-id>",
		Short: "Change status, priority, assignee or tags of a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := opts.request(cmd)
			if err != nil {
				return err
			}
			if err := dto.Validate(req); err != nil {
				return err
			}

			return run(cmd, flags, func(ctx context.Context, app *bootstrap.App, p *output.Printer) error {
				if opts.assign != "" {
					admin, err := app.Service.GetAdminByID(ctx, opts.assign)
					if err != nil {
						return err
					}
					req.AssignedAdminID = &admin.ID
					req.AssignedAdminName = &admin.Name
				}

				t, err := app.Service.UpdateTicket(ctx, args[0], req)
				if err != nil {
					return err
				}
				return p.Ticket(t)
			})
		},
	}

	opts.bind(cmd)

	return cmd
}

func (o *updateOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.status, "status", "", "New status")
	f.StringVar(&o.priority, "priority", "", "New priority")
	f.StringVar(&o.assign, "assign", "", "Assign to the admin with this id")
	f.BoolVar(&o.unassign, "unassign", false, "Remove the current assignee")
	f.StringSliceVar(&o.tags, "tags", nil, "Replace the tags (comma separated)")
	f.BoolVar(&o.clearTags, "clear-tags", false, "Remove every tag")
	cmd.MarkFlagsMutuallyExclusive("assign", "unassign")
	cmd.MarkFlagsMutuallyExclusive("tags", "clear-tags")
}

// request translates the flags that were actually set into a partial update.
// The assignee name is resolved later, once the service is available.
func (o *updateOptions) request(cmd *cobra.Command) (dto.UpdateTicketRequest, error) {
	var req dto.UpdateTicketRequest
	f := cmd.Flags()

	if f.Changed("status") {
		req.Status = &o.status
	}
	if f.Changed("priority") {
		req.Priority = &o.priority
	}
	if o.unassign {
		empty := ""
		req.AssignedAdminID = &empty
		req.AssignedAdminName = &empty
	}
	switch {
	case o.clearTags:
		req.Tags = []string{}
	case f.Changed("tags"):
		req.Tags = append([]string{}, o.tags...)
	}

	if req.Status == nil && req.Priority == nil && req.Tags == nil && !o.unassign && o.assign == "" {
		return req, errors.New("nothing to update: set at least one of --status, --priority, --assign, --unassign, --tags, --clear-tags")
	}
	return req, nil
}
