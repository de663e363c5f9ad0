// Package cli assembles the helpdesk command tree.
package cli

import (
	"github.com/spf13/cobra"

	"helpdesk/internal/interfaces/cli/admin"
	"helpdesk/internal/interfaces/cli/bootstrap"
	"helpdesk/internal/interfaces/cli/migrate"
	"helpdesk/internal/interfaces/cli/seed"
	"helpdesk/internal/interfaces/cli/stats"
	"helpdesk/internal/interfaces/cli/ticket"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/version"
)

// Exit statuses reported by the helpdesk binary.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitRejected = 2
	ExitStorage  = 3
)

// ExitCode maps a command error to the process exit status. Requests the
// caller can correct (validation, unknown ids) exit with ExitRejected and
// storage failures with ExitStorage.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.IsValidationError(err), errors.IsNotFoundError(err):
		return ExitRejected
	case errors.IsInternalError(err):
		return ExitStorage
	default:
		return ExitFailure
	}
}

func NewRootCommand() *cobra.Command {
	flags := &bootstrap.Flags{}

	rootCmd := &cobra.Command{
		Use:   "helpdesk",
		Short: "Helpdesk - support ticket store",
		Long: `Helpdesk keeps support tickets, their conversations and the admin directory
in a key-value store (file, sqlite, mysql, redis or memory) and offers the
operations a support team needs from the command line.

Exit status is 2 when a request is rejected (invalid input, unknown ticket or
admin) and 3 when the storage backend fails.`,
		Version:      version.String(),
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.Env, "env", "e", "", "Environment (development, test, production)")
	pf.StringVarP(&flags.ConfigPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	pf.BoolVar(&flags.JSON, "json", false, "Print results as JSON")

	rootCmd.AddCommand(
		seed.NewCommand(flags),
		ticket.NewCommand(flags),
		stats.NewCommand(flags),
		stats.NewDashboardCommand(flags),
		admin.NewCommand(flags),
		migrate.NewCommand(flags),
	)

	return rootCmd
}
