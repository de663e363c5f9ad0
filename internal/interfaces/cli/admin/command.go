package admin

import (
	"context"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
)

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "admin",
		Aliases: []string{"admins"},
		Short:   "Look up support admins",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List every admin",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return bootstrap.Run(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
					return output.NewPrinter(cmd.OutOrStdout(), flags.JSON, nil).Admins(app.Service.GetAdmins(ctx))
				})
			},
		},
		&cobra.Command{
			Use:   "show <admin-id>",
			Short: "Show one admin",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return bootstrap.Run(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
					a, err := app.Service.GetAdminByID(ctx, args[0])
					if err != nil {
						return err
					}
					return output.NewPrinter(cmd.OutOrStdout(), flags.JSON, nil).Admin(a)
				})
			},
		},
	)

	return cmd
}
