package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actorcore/cacti"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Run the simplest possible actor: one HELLO, one STOP",
	RunE: func(cmd *cobra.Command, args []string) error {
		role := &cacti.Role{
			Handlers: []cacti.Handler{
				func(ctx *cacti.Context, msg cacti.Message) {
					ctx.Stop()
				},
			},
		}

		sys, root, err := cacti.Create(role,
			cacti.WithWorkerCount(workerCount),
			cacti.WithLogger(logger),
		)
		if err != nil {
			return err
		}

		if err := sys.Join(); err != nil {
			return err
		}

		fmt.Printf("root actor %s said hello and stopped\n", root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
