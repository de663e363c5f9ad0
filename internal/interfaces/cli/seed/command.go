package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
)

func NewCommand(flags *bootstrap.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the sample tickets and messages to storage",
		Long: `Persist the sample dataset under any storage key that has never been written.
Keys that already hold data, even an empty collection, are left untouched, so
running seed again is harmless.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bootstrap.Run(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				result, err := app.Service.InitMockData(ctx)
				if err != nil {
					return err
				}

				if flags.JSON {
					return output.NewPrinter(cmd.OutOrStdout(), true, nil).JSON(result)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "tickets:  %s\n", seededLabel(result.TicketsSeeded))
				fmt.Fprintf(out, "messages: %s\n", seededLabel(result.MessagesSeeded))
				return nil
			})
		},
	}
}

func seededLabel(seeded bool) string {
	if seeded {
		return "seeded"
	}
	return "already present"
}
