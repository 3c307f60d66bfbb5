package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/actorcore/cacti"
)

var spawnDepth int

var spawnChainCmd = &cobra.Command{
	Use:   "spawn-chain",
	Short: "Spawn a linear chain of actors, each a child of the last",
	RunE: func(cmd *cobra.Command, args []string) error {
		depth := spawnDepth

		var role *cacti.Role
		role = &cacti.Role{
			Handlers: []cacti.Handler{
				func(ctx *cacti.Context, msg cacti.Message) {
					fmt.Printf("actor %s: hello from parent %v\n", ctx.Self(), msg.Payload)

					if int(ctx.Self()) < depth {
						if _, err := ctx.Spawn(role); err != nil {
							fmt.Printf("actor %s: spawn refused: %v\n", ctx.Self(), err)
						}
					}
					ctx.Stop()
				},
			},
		}

		sys, _, err := cacti.Create(role,
			cacti.WithWorkerCount(workerCount),
			cacti.WithLogger(logger),
			cacti.WithMaxActors(depth+2),
		)
		if err != nil {
			return err
		}

		if err := sys.Join(); err != nil {
			return err
		}

		fmt.Printf("chain of depth %d complete\n", depth)
		return nil
	},
}

func init() {
	spawnChainCmd.Flags().IntVar(&spawnDepth, "depth", 5, "Number of additional actors to spawn after the root")
	rootCmd.AddCommand(spawnChainCmd)
}
