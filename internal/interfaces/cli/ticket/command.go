package ticket

import (
	"context"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
	"helpdesk/internal/shared/biztime"
)

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ticket",
		Aliases: []string{"tickets", "t"},
		Short:   "Browse and work on support tickets",
	}

	cmd.AddCommand(
		newListCommand(flags),
		newShowCommand(flags),
		newCreateCommand(flags),
		newUpdateCommand(flags),
		newReplyCommand(flags),
		newExportCommand(flags),
	)

	return cmd
}

func run(cmd *cobra.Command, flags *bootstrap.Flags, fn func(context.Context, *bootstrap.App, *output.Printer) error) error {
	return bootstrap.Run(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
		return fn(ctx, app, output.NewPrinter(cmd.OutOrStdout(), flags.JSON, biztime.Location()))
	})
}
