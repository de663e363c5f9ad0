package stats

import (
	"context"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
	"helpdesk/internal/shared/biztime"
)

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show ticket counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Run(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				s, err := app.Service.GetStats(ctx)
				if err != nil {
					return err
				}
				return output.NewPrinter(cmd.OutOrStdout(), flags.JSON, biztime.Location()).Stats(s)
			})
		},
	}
}

func NewDashboardCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show counters, tickets needing attention and recent activity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Run(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				d, err := app.Service.Dashboard(ctx)
				if err != nil {
					return err
				}
				return output.NewPrinter(cmd.OutOrStdout(), flags.JSON, biztime.Location()).Dashboard(d)
			})
		},
	}
}
