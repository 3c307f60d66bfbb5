// Package commands implements the cactictl subcommands. Use this CLI to
// run small, self-contained demonstrations of the actor runtime: a single
// round trip, a chain of spawns, a fan-out across a worker pool, and a
// graceful drain triggered by an interrupt.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/actorcore/cacti"
	"github.com/actorcore/cacti/internal/obslog"
)

var (
	workerCount int
	logFile     string

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "cactictl",
	Short: "Drive small demonstrations of the cacti actor runtime",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := obslog.New(logFile)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().IntVar(
		&workerCount, "workers", cacti.DefaultWorkerCount,
		"Number of worker goroutines servicing the ready queue",
	)
	rootCmd.PersistentFlags().StringVar(
		&logFile, "log-file", "",
		"Optional path to also append structured logs to",
	)
}
