package ticket

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/output"
)

func newExportCommand(flags *bootstrap.Flags) *cobra.Command {
	var (
		role string
		out  string
	)

	cmd := &cobra.Command{
		Use:   "export <ticket-id>",
		Short: "Render a ticket conversation as an HTML transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, flags, func(ctx context.Context, app *bootstrap.App, _ *output.Printer) error {
				html, err := app.Service.ExportTranscript(ctx, args[0], role)
				if err != nil {
					return err
				}

				if out == "" || out == "-" {
					_, err = fmt.Fprint(cmd.OutOrStdout(), html)
					return err
				}
				if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
					return fmt.Errorf("failed to write transcript: %w", err)
				}
				app.Logger.Infow("transcript written", "ticket_id", args[0], "path", out, "role", role)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&role, "as", "client", "Viewer role for the transcript (client, admin)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to this file instead of stdout")

	return cmd
}
